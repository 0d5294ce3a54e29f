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

// Package loader opens AutomationML documents from bare CAEX files or AMLX
// container packages.
package loader

import (
	"bytes"
	"fmt"
	"io"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
	"github.com/spf13/afero"
)

// Format tells which of the two supported encodings a document came from.
type Format string

const (
	// FormatCAEX is a bare CAEX XML file (.aml).
	FormatCAEX Format = "aml"
	// FormatAMLX is an OPC container package (.amlx).
	FormatAMLX Format = "amlx"
)

// Load parses data as bare CAEX and, failing that, as an AMLX container.
// Both attempts read the same immutable byte slice. Only the failure of both
// attempts is reported, as ErrUnsupportedFormat.
func Load(data []byte) (*caex.Document, error) {
	doc, _, err := LoadWithFormat(data)
	return doc, err
}

// LoadWithFormat is Load that also reports which attempt succeeded.
func LoadWithFormat(data []byte) (*caex.Document, Format, error) {
	doc, bareErr := caex.Decode(data)
	if bareErr == nil {
		return doc, FormatCAEX, nil
	}
	logger.LogDebug("not a bare CAEX document, trying AMLX container: " + bareErr.Error())

	doc, containerErr := readContainer(bytes.NewReader(data), int64(len(data)))
	if containerErr == nil {
		return doc, FormatAMLX, nil
	}
	return nil, "", fmt.Errorf("%w: %v; %v", amlerrors.ErrUnsupportedFormat, bareErr, containerErr)
}

// LoadReader reads r to the end and loads the result.
func LoadReader(r io.Reader) (*caex.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", amlerrors.ErrUnsupportedFormat, err)
	}
	return Load(data)
}

// LoadFile loads the document stored at path in fs.
func LoadFile(fs afero.Fs, path string) (*caex.Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", amlerrors.ErrFileNotFound, path, err)
	}
	return Load(data)
}
