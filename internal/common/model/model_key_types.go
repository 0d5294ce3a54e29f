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

// KeyTypes type of KeyTypes
type KeyTypes string

// List of KeyTypes used when addressing submodels, their elements and AML fragments.
//
//nolint:all
const (
	KEYTYPES_ENTITY                      KeyTypes = "Entity"
	KEYTYPES_FILE                        KeyTypes = "File"
	KEYTYPES_FRAGMENT_REFERENCE          KeyTypes = "FragmentReference"
	KEYTYPES_GLOBAL_REFERENCE            KeyTypes = "GlobalReference"
	KEYTYPES_CONCEPT_DESCRIPTION         KeyTypes = "ConceptDescription"
	KEYTYPES_PROPERTY                    KeyTypes = "Property"
	KEYTYPES_REFERENCE_ELEMENT           KeyTypes = "ReferenceElement"
	KEYTYPES_RELATIONSHIP_ELEMENT        KeyTypes = "RelationshipElement"
	KEYTYPES_SUBMODEL                    KeyTypes = "Submodel"
	KEYTYPES_SUBMODEL_ELEMENT_COLLECTION KeyTypes = "SubmodelElementCollection"
	KEYTYPES_SUBMODEL_ELEMENT_LIST       KeyTypes = "SubmodelElementList"
)

// AllowedKeyTypesEnumValues is all the allowed values of KeyTypes enum
var AllowedKeyTypesEnumValues = []KeyTypes{
	KEYTYPES_ENTITY,
	KEYTYPES_FILE,
	KEYTYPES_FRAGMENT_REFERENCE,
	KEYTYPES_GLOBAL_REFERENCE,
	KEYTYPES_CONCEPT_DESCRIPTION,
	KEYTYPES_PROPERTY,
	KEYTYPES_REFERENCE_ELEMENT,
	KEYTYPES_RELATIONSHIP_ELEMENT,
	KEYTYPES_SUBMODEL,
	KEYTYPES_SUBMODEL_ELEMENT_COLLECTION,
	KEYTYPES_SUBMODEL_ELEMENT_LIST,
}

// IsValid return true if the value is valid for the enum, false otherwise
func (v KeyTypes) IsValid() bool {
	for _, allowed := range AllowedKeyTypesEnumValues {
		if v == allowed {
			return true
		}
	}
	return false
}

// NewKeyTypesFromValue returns a valid KeyTypes for the value passed as argument,
// or an error if the value passed is not allowed by the enum
func NewKeyTypesFromValue(v string) (KeyTypes, error) {
	ev := KeyTypes(v)
	if ev.IsValid() {
		return ev, nil
	}

	return "", fmt.Errorf("invalid value '%v' for KeyTypes: valid values are %v", v, AllowedKeyTypesEnumValues)
}

// KeyTypeOf returns the key type that addresses the given element inside a model reference.
func KeyTypeOf(element SubmodelElement) KeyTypes {
	switch element.(type) {
	case *Property:
		return KEYTYPES_PROPERTY
	case *File:
		return KEYTYPES_FILE
	case *ReferenceElement:
		return KEYTYPES_REFERENCE_ELEMENT
	case *RelationshipElement:
		return KEYTYPES_RELATIONSHIP_ELEMENT
	case *Entity:
		return KEYTYPES_ENTITY
	case *SubmodelElementCollection:
		return KEYTYPES_SUBMODEL_ELEMENT_COLLECTION
	case *SubmodelElementList:
		return KEYTYPES_SUBMODEL_ELEMENT_LIST
	}
	return ""
}
