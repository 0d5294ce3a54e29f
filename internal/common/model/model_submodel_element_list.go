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
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

type SubmodelElementList struct {
	Referable

	OrderRelevant *bool `json:"orderRelevant,omitempty"`

	//nolint:all
	SemanticIdListElement *Reference `json:"semanticIdListElement,omitempty"`

	TypeValueListElement AasSubmodelElements `json:"typeValueListElement"`

	ValueTypeListElement DataTypeDefXsd `json:"valueTypeListElement,omitempty"`

	Value []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementList creates a new SubmodelElementList holding elements of the given type
func NewSubmodelElementList(idShort string, typeValueListElement AasSubmodelElements) *SubmodelElementList {
	return &SubmodelElementList{
		Referable:            Referable{ModelType: "SubmodelElementList", IdShort: idShort},
		TypeValueListElement: typeValueListElement,
	}
}

func (*SubmodelElementList) isSubmodelElement() {}

// UnmarshalJSON implements custom JSON unmarshaling for SubmodelElementList
func (a *SubmodelElementList) UnmarshalJSON(data []byte) error {
	// Create a temporary struct with the same fields but Value as []json.RawMessage
	type Alias SubmodelElementList
	aux := &struct {
		Value []json.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(a),
	}

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	value, err := unmarshalSubmodelElements(aux.Value)
	if err != nil {
		return err
	}
	a.Value = value
	return nil
}
