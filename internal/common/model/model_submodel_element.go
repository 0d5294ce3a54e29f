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
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElement interface representing a SubmodelElement.
//
// The set of implementations is closed: Property, File, ReferenceElement,
// RelationshipElement, Entity, SubmodelElementCollection and SubmodelElementList.
type SubmodelElement interface {
	GetModelType() string
	GetIdShort() string
	GetCategory() string
	GetDescription() []LangStringTextType
	GetSemanticID() *Reference

	SetIdShort(string)
	SetSemanticID(*Reference)

	isSubmodelElement()
}

// Referable holds the attributes shared by every submodel element.
type Referable struct {
	Category string `json:"category,omitempty"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	ModelType string `json:"modelType"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	SupplementalSemanticIds []Reference `json:"supplementalSemanticIds,omitempty"`
}

//nolint:all
func (r *Referable) GetModelType() string {
	return r.ModelType
}

//nolint:all
func (r *Referable) GetIdShort() string {
	return r.IdShort
}

//nolint:all
func (r *Referable) GetCategory() string {
	return r.Category
}

//nolint:all
func (r *Referable) GetDescription() []LangStringTextType {
	return r.Description
}

//nolint:all
func (r *Referable) GetSemanticID() *Reference {
	return r.SemanticID
}

//nolint:all
func (r *Referable) SetIdShort(idShort string) {
	r.IdShort = idShort
}

//nolint:all
func (r *Referable) SetSemanticID(semanticID *Reference) {
	r.SemanticID = semanticID
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement type from JSON
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	// First, determine the modelType
	var raw struct {
		ModelType string `json:"modelType"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}

	var element SubmodelElement
	switch raw.ModelType {
	case "Property":
		element = &Property{}
	case "File":
		element = &File{}
	case "ReferenceElement":
		element = &ReferenceElement{}
	case "RelationshipElement":
		element = &RelationshipElement{}
	case "Entity":
		element = &Entity{}
	case "SubmodelElementCollection":
		element = &SubmodelElementCollection{}
	case "SubmodelElementList":
		element = &SubmodelElementList{}
	default:
		return nil, fmt.Errorf("unsupported modelType: %s (supported types: Property, File, ReferenceElement, RelationshipElement, Entity, SubmodelElementCollection, SubmodelElementList)", raw.ModelType)
	}

	if err := json.Unmarshal(data, element); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", raw.ModelType, err)
	}
	return element, nil
}

// unmarshalSubmodelElements decodes a raw JSON array of polymorphic elements.
func unmarshalSubmodelElements(raw []json.RawMessage) ([]SubmodelElement, error) {
	if raw == nil {
		return nil, nil
	}
	elements := make([]SubmodelElement, len(raw))
	for i, rawElement := range raw {
		element, err := UnmarshalSubmodelElement(rawElement)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal element at index %d: %w", i, err)
		}
		elements[i] = element
	}
	return elements, nil
}
