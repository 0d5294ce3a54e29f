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
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"BadRequest", NewErrBadRequest("x"), http.StatusBadRequest},
		{"NotFound", NewErrNotFound("x"), http.StatusNotFound},
		{"Conflict", NewErrConflict("x"), http.StatusConflict},
		{"Unprocessable", NewErrUnprocessableEntity("x"), http.StatusUnprocessableEntity},
		{"Internal", NewInternalServerError("x"), http.StatusInternalServerError},
		{"Plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCodeOf(tt.err))
		})
	}
}

func TestPredicatesSurviveWrapping(t *testing.T) {
	sentinel := NewErrNotFound("Node not found")
	wrapped := fmt.Errorf("%w: 'Motor2'", sentinel)

	assert.True(t, IsErrNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, IsErrBadRequest(wrapped))
}

func TestNewErrorResponse(t *testing.T) {
	status, body := NewErrorResponse(NewErrUnprocessableEntity("no AML file"), "AMLLINK-PUBATTR-NOSOURCE")

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Exception", body.MessageType)
	assert.Equal(t, "AMLLINK-PUBATTR-NOSOURCE", body.Code)
	assert.NotEmpty(t, body.CorrelationId)
	assert.NotEmpty(t, body.Timestamp)
}
