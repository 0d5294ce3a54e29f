/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package logger provides centralized logging functionality for the AML link components.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger provides leveled logging for the AML link components.
var logger = log.New(os.Stderr, "[AmlLink] ", log.LstdFlags|log.Lshortfile)

// SetOutput redirects log output, e.g. to silence or capture logs in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// LogError logs an error with context information.
//
// Parameters:
//   - context: A description of where/when the error occurred
//   - err: The error that occurred
func LogError(context string, err error) {
	if err != nil {
		_ = logger.Output(2, "ERROR: "+context+": "+err.Error())
	}
}

// LogInfo logs an informational message.
func LogInfo(message string) {
	_ = logger.Output(2, "INFO: "+message)
}

// LogWarning logs a warning message.
func LogWarning(message string) {
	_ = logger.Output(2, "WARN: "+message)
}

// LogDebug logs a debug message.
func LogDebug(message string) {
	_ = logger.Output(2, "DEBUG: "+message)
}
