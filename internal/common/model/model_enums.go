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

// DataTypeDefXsd is the XSD value type of a Property.
type DataTypeDefXsd string

//nolint:all
const (
	DATATYPEDEFXSD_STRING  DataTypeDefXsd = "xs:string"
	DATATYPEDEFXSD_BOOLEAN DataTypeDefXsd = "xs:boolean"
	DATATYPEDEFXSD_INT     DataTypeDefXsd = "xs:int"
	DATATYPEDEFXSD_DOUBLE  DataTypeDefXsd = "xs:double"
)

// EntityType distinguishes self-managed from co-managed entities.
type EntityType string

//nolint:all
const (
	ENTITYTYPE_CO_MANAGED_ENTITY   EntityType = "CoManagedEntity"
	ENTITYTYPE_SELF_MANAGED_ENTITY EntityType = "SelfManagedEntity"
)

// AasSubmodelElements names the element type held by a SubmodelElementList.
type AasSubmodelElements string

//nolint:all
const (
	AASSUBMODELELEMENTS_ENTITY                      AasSubmodelElements = "Entity"
	AASSUBMODELELEMENTS_PROPERTY                    AasSubmodelElements = "Property"
	AASSUBMODELELEMENTS_REFERENCE_ELEMENT           AasSubmodelElements = "ReferenceElement"
	AASSUBMODELELEMENTS_RELATIONSHIP_ELEMENT        AasSubmodelElements = "RelationshipElement"
	AASSUBMODELELEMENTS_SUBMODEL_ELEMENT_COLLECTION AasSubmodelElements = "SubmodelElementCollection"
)

// ModellingKind of a submodel.
type ModellingKind string

//nolint:all
const (
	MODELLINGKIND_INSTANCE ModellingKind = "Instance"
	MODELLINGKIND_TEMPLATE ModellingKind = "Template"
)

// LangStringTextType is a language tagged text.
type LangStringTextType struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}
