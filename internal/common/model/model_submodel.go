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

// Submodel struct representing a Submodel.
type Submodel struct {
	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	ID string `json:"id"`

	Kind ModellingKind `json:"kind,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// NewSubmodel creates a new, empty Submodel instance
func NewSubmodel(id string, idShort string) *Submodel {
	return &Submodel{
		ModelType: "Submodel",
		ID:        id,
		IdShort:   idShort,
		Kind:      MODELLINGKIND_INSTANCE,
	}
}

// Reference returns the ModelReference addressing the submodel itself.
func (s *Submodel) Reference() *Reference {
	return NewModelReference(Key{Type: KEYTYPES_SUBMODEL, Value: s.ID})
}

// UnmarshalJSON implements custom JSON unmarshaling for Submodel
func (s *Submodel) UnmarshalJSON(data []byte) error {
	type Alias Submodel
	aux := &struct {
		SubmodelElements []json.RawMessage `json:"submodelElements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	elements, err := unmarshalSubmodelElements(aux.SubmodelElements)
	if err != nil {
		return err
	}
	s.SubmodelElements = elements
	return nil
}

// MarshalSubmodel encodes the submodel as JSON.
func MarshalSubmodel(s *Submodel) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s)
}

// UnmarshalSubmodel decodes a submodel from JSON.
func UnmarshalSubmodel(data []byte) (*Submodel, error) {
	s := &Submodel{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
