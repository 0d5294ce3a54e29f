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

package generator

import (
	_ "embed"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/loader"
	"github.com/spf13/afero"
)

//go:embed resources/template-caex-30.aml
var embeddedTemplate []byte

// Paths into the template document.
const (
	TemplateLibraryName       = "Festo"
	TemplateClassName         = "AutomationComponent"
	GlobalAssetIDAttribute    = "globalAssetID"
	ConnectorCollectionName   = "ConnectorCollection"
	ConnectorRoleClassLibPath = "AutomationML_Component_RoleClassLib_ConnectorExtension"
	InternalConnectorPath     = "DIAMONDInterfaceClassLib/AASXInternalConnector"
	BackReferenceAttribute    = "AAS_Ref"
)

// EmbeddedTemplate returns the raw bytes of the built-in template.
func EmbeddedTemplate() []byte {
	return append([]byte(nil), embeddedTemplate...)
}

// LoadTemplate parses a fresh template document, from path on fs if path is
// set, from the built-in template otherwise. Every call returns a new tree.
func LoadTemplate(fs afero.Fs, path string) (*caex.Document, error) {
	if path != "" {
		return loader.LoadFile(fs, path)
	}
	return caex.Decode(embeddedTemplate)
}
