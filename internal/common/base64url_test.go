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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		encoded string
	}{
		{name: "SubmodelIdentifier", input: "https://www.example.com/ids/sm/1234_5678", encoded: "aHR0cHM6Ly93d3cuZXhhbXBsZS5jb20vaWRzL3NtLzEyMzRfNTY3OA"},
		{name: "Empty", input: "", encoded: ""},
		{name: "SpecialChars", input: "hello+world/test", encoded: "aGVsbG8rd29ybGQvdGVzdA"},
		{name: "NeedsPadding", input: "a", encoded: "YQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, EncodeString(tt.input))
			decoded, err := DecodeString(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestDecodeAcceptsPaddingAndRejectsGarbage(t *testing.T) {
	decoded, err := DecodeString("YWI=")
	require.NoError(t, err)
	assert.Equal(t, "ab", decoded)

	_, err = Decode("!@#$%^")
	assert.Error(t, err)

	raw, err := Decode("AAECA__-")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 255, 254}, raw)
}
