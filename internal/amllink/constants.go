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

// Package amllink links AAS submodels with AutomationML documents.
//
// A submodel becomes an AutomationML submodel by importing an AML file
// (ImportAmlFile). Afterwards single CAEX nodes of that file can be published
// into the submodel. Every published artifact points back into the AML file
// with a FragmentReference key holding "AML/" plus the CAEX path of the node.
package amllink

// Reserved idShorts shared with other consumers of AutomationML submodels.
const (
	IDShortAmlFile       = "AutomationMLFile"
	IDShortAmlVersion    = "AutomationMLVersion"
	IDShortAmlAttributes = "AutomationMLAttributes"
	IDShortAmlElements   = "AutomationMLElements"
	IDShortAmlStructure  = "AutomationMLStructure"
	IDShortEntryNode     = "EntryNode"
)

// Semantic ids
const (
	SemIDAmlFile   = "https://automationml.org/aas/1/0/AmlFile"
	SemIDEntryNode = "https://admin-shell.io/idta/HierarchicalStructures/EntryNode/1/0"
	SemIDNode      = "https://admin-shell.io/idta/HierarchicalStructures/Node/1/0"
)

const (
	// AmlContentType is the content type of the File marker.
	AmlContentType = "text/xml"

	// DefaultFileDirectory is the store directory imported files are put in.
	DefaultFileDirectory = "/aasx/files"

	// SameAsPrefix starts the idShort of every link relationship.
	SameAsPrefix = "SameAs_"
)
