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

// Package errors provides centralized error definitions for the AML link engine.
//
// Every error carries its HTTP status as message prefix (see common.NewErrNotFound
// and friends) followed by a stable code. Callers add detail with
// fmt.Errorf("%w: ...", ErrX) so that errors.Is and the common.IsErrX
// predicates keep working.
package errors

import (
	"errors"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
)

// Stable error codes.
const (
	CodeUnsupportedFormat      = "AMLLINK-LOAD-UNSUPPORTEDFORMAT"
	CodeNotFound               = "AMLLINK-PATH-NOTFOUND"
	CodeMissingAmlSource       = "AMLLINK-PUBLISH-MISSINGAMLSOURCE"
	CodeInvalidTarget          = "AMLLINK-PUBLISH-INVALIDTARGET"
	CodeUnsupportedParent      = "AMLLINK-PUBLISH-UNSUPPORTEDPARENT"
	CodeUnsupportedNode        = "AMLLINK-PUBLISH-UNSUPPORTEDNODE"
	CodeIndexOccupied          = "AMLLINK-INDEX-OCCUPIED"
	CodeRoleNotFound           = "AMLLINK-GEN-ROLENOTFOUND"
	CodeTemplateElementMissing = "AMLLINK-GEN-TEMPLATEELEMENTMISSING"
	CodeNoConnectors           = "AMLLINK-GEN-NOCONNECTORS"
	CodeSubmodelNotFound       = "AMLLINK-STORE-SUBMODELNOTFOUND"
	CodeSubmodelAlreadyExists  = "AMLLINK-STORE-SUBMODELEXISTS"
	CodeFileNotFound           = "AMLLINK-FILES-NOTFOUND"
)

// Document errors
var (
	// ErrUnsupportedFormat is returned when input is neither bare CAEX nor an AMLX container.
	ErrUnsupportedFormat = common.NewErrBadRequest(CodeUnsupportedFormat + " document is neither a CAEX file nor an AMLX container")

	// ErrNotFound is returned when a path or fragment does not resolve to a node.
	ErrNotFound = common.NewErrNotFound(CodeNotFound + " CAEX node not found")
)

// Publish errors
var (
	// ErrMissingAmlSource is returned when the submodel has no AutomationMLFile marker.
	ErrMissingAmlSource = common.NewErrUnprocessableEntity(CodeMissingAmlSource + " submodel has no AutomationML file")

	// ErrInvalidTarget is returned when the given keys do not resolve to an entity.
	ErrInvalidTarget = common.NewErrBadRequest(CodeInvalidTarget + " target does not resolve to an entity")

	// ErrUnsupportedParent is returned when a new entity can be created neither below an entity nor the submodel.
	ErrUnsupportedParent = common.NewErrBadRequest(CodeUnsupportedParent + " parent must be an entity or the submodel")

	// ErrUnsupportedNode is returned when a node of the wrong kind is published.
	ErrUnsupportedNode = common.NewErrBadRequest(CodeUnsupportedNode + " node kind cannot be published this way")

	// ErrIndexOccupied is returned when a reserved index idShort is taken by an element of another type.
	ErrIndexOccupied = common.NewErrConflict(CodeIndexOccupied + " reserved index idShort is used by another element")
)

// Generation errors
var (
	// ErrRoleNotFound is returned when a connector role class is absent from the template.
	ErrRoleNotFound = common.NewErrNotFound(CodeRoleNotFound + " role class not found in template")

	// ErrTemplateElementMissing is returned when a required library, class or interface is absent from the template.
	ErrTemplateElementMissing = common.NewErrUnprocessableEntity(CodeTemplateElementMissing + " template element missing")

	// ErrNoConnectors is returned when a connectors submodel has no Connectors collection or it is empty.
	ErrNoConnectors = common.NewErrUnprocessableEntity(CodeNoConnectors + " no connectors found")
)

// Store errors
var (
	// ErrSubmodelNotFound is returned when the requested submodel does not exist.
	ErrSubmodelNotFound = common.NewErrNotFound(CodeSubmodelNotFound + " Submodel not found")

	// ErrSubmodelAlreadyExists is returned when trying to create a submodel that already exists.
	ErrSubmodelAlreadyExists = common.NewErrConflict(CodeSubmodelAlreadyExists + " Submodel already exists")

	// ErrFileNotFound is returned when a stored AML file is missing.
	ErrFileNotFound = common.NewErrNotFound(CodeFileNotFound + " file not found")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrUnsupportedFormat, CodeUnsupportedFormat},
	{ErrNotFound, CodeNotFound},
	{ErrMissingAmlSource, CodeMissingAmlSource},
	{ErrInvalidTarget, CodeInvalidTarget},
	{ErrUnsupportedParent, CodeUnsupportedParent},
	{ErrUnsupportedNode, CodeUnsupportedNode},
	{ErrIndexOccupied, CodeIndexOccupied},
	{ErrRoleNotFound, CodeRoleNotFound},
	{ErrTemplateElementMissing, CodeTemplateElementMissing},
	{ErrNoConnectors, CodeNoConnectors},
	{ErrSubmodelNotFound, CodeSubmodelNotFound},
	{ErrSubmodelAlreadyExists, CodeSubmodelAlreadyExists},
	{ErrFileNotFound, CodeFileNotFound},
}

// CodeOf returns the stable code of the sentinel wrapped by err, "" if none.
func CodeOf(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
