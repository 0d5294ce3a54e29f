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

//nolint:all
package model

import (
	"fmt"
)

// ReferenceTypes Reference type of Reference
type ReferenceTypes string

// List of ReferenceTypes
//
//nolint:all
const (
	REFERENCETYPES_EXTERNAL_REFERENCE ReferenceTypes = "ExternalReference"
	REFERENCETYPES_MODEL_REFERENCE    ReferenceTypes = "ModelReference"
)

// IsValid return true if the value is valid for the enum, false otherwise
func (v ReferenceTypes) IsValid() bool {
	return v == REFERENCETYPES_EXTERNAL_REFERENCE || v == REFERENCETYPES_MODEL_REFERENCE
}

// NewReferenceTypesFromValue returns a valid ReferenceTypes
// for the value passed as argument, or an error if the value passed is not allowed by the enum
func NewReferenceTypesFromValue(v string) (ReferenceTypes, error) {
	ev := ReferenceTypes(v)
	if ev.IsValid() {
		return ev, nil
	}

	return "", fmt.Errorf("invalid value '%v' for ReferenceTypes: valid values are [%s %s]", v, REFERENCETYPES_EXTERNAL_REFERENCE, REFERENCETYPES_MODEL_REFERENCE)
}
