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

package common

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrorHandler is the JSON body written for every failed request.
type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// NewErrorHandler builds an error body. An empty correlationId is replaced by a fresh uuid.
func NewErrorHandler(messageType string, text error, code string, correlationId string, timestamp string) *ErrorHandler {
	if correlationId == "" {
		correlationId = uuid.NewString()
	}
	if timestamp == "" {
		timestamp = GetCurrentTimestamp()
	}
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          text.Error(),
		Code:          code,
		CorrelationId: correlationId,
		Timestamp:     timestamp,
	}
}

const (
	prefixBadRequest          = "400 Bad Request: "
	prefixNotFound            = "404 Not Found: "
	prefixConflict            = "409 Conflict: "
	prefixUnprocessableEntity = "422 Unprocessable Entity: "
	prefixInternalServerError = "500 Internal Server Error: "
)

func NewErrNotFound(elementId string) error {
	return errors.New(prefixNotFound + elementId)
}

func NewErrBadRequest(message string) error {
	return errors.New(prefixBadRequest + message)
}

func NewErrConflict(message string) error {
	return errors.New(prefixConflict + message)
}

func NewErrUnprocessableEntity(message string) error {
	return errors.New(prefixUnprocessableEntity + message)
}

func NewInternalServerError(message string) error {
	return errors.New(prefixInternalServerError + message)
}

func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixNotFound)
}

func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixBadRequest)
}

func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixConflict)
}

func IsErrUnprocessableEntity(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixUnprocessableEntity)
}

// StatusCodeOf maps a status-prefixed error to its HTTP status. Unprefixed
// errors are internal server errors.
func StatusCodeOf(err error) int {
	switch {
	case IsErrBadRequest(err):
		return http.StatusBadRequest
	case IsErrNotFound(err):
		return http.StatusNotFound
	case IsErrConflict(err):
		return http.StatusConflict
	case IsErrUnprocessableEntity(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// MessageTypeOf returns "Error" for server side failures and "Exception" for client errors.
func MessageTypeOf(status int) string {
	if status >= http.StatusInternalServerError {
		return "Error"
	}
	return "Exception"
}

// NewErrorResponse wraps err into an ErrorHandler body together with its status code.
func NewErrorResponse(err error, code string) (int, *ErrorHandler) {
	status := StatusCodeOf(err)
	return status, NewErrorHandler(MessageTypeOf(status), err, code, "", time.Now().UTC().Format(time.RFC3339))
}
