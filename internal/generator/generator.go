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

// Package generator synthesizes AutomationML component descriptions from the
// connectors of an Interface_Connectors submodel.
package generator

import (
	"fmt"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caexpath"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
	"github.com/google/uuid"
)

// ConnectorKind is the ConnectorType of a connector. Its role class is
// "<Kind>Connector".
type ConnectorKind string

const (
	KindPneumatic ConnectorKind = "Pneumatic"
	KindElectric  ConnectorKind = "Electric"
	KindMechanic  ConnectorKind = "Mechanic"
)

// Connector describes one connector to generate.
type Connector struct {
	Name string        `json:"name"`
	Kind ConnectorKind `json:"kind"`
	// Reference is written to the AAS_Ref attribute of the generated interface.
	Reference string `json:"reference"`
}

// Config parameterizes Generate.
type Config struct {
	LibraryName   string      `json:"libraryName"`
	ClassName     string      `json:"className"`
	GlobalAssetID string      `json:"globalAssetId"`
	Connectors    []Connector `json:"connectors"`
}

// RoleClassPath returns the template path of the role class for kind.
func RoleClassPath(kind ConnectorKind) string {
	return ConnectorRoleClassLibPath + "/" + string(kind) + "Connector"
}

// Generate rewrites template in place into the component described by cfg
// and returns it.
//
// A connector whose role class is missing is still generated, without role;
// the failure is logged. A missing library, class, asset id attribute,
// connector collection or internal connector interface fails the whole call
// with ErrTemplateElementMissing before anything is changed.
func Generate(template *caex.Document, cfg Config) (*caex.Document, error) {
	lib := template.Root(caex.KindSystemUnitClassLib, TemplateLibraryName)
	if lib == nil {
		return nil, missing("system unit class library", TemplateLibraryName)
	}
	class := lib.Child(caex.KindSystemUnitClass, TemplateClassName)
	if class == nil {
		return nil, missing("system unit class", TemplateLibraryName+"/"+TemplateClassName)
	}
	assetID := class.Attribute(GlobalAssetIDAttribute)
	if assetID == nil {
		return nil, missing("attribute", GlobalAssetIDAttribute)
	}
	collection := class.InternalElement(ConnectorCollectionName)
	if collection == nil {
		return nil, missing("internal element", ConnectorCollectionName)
	}
	connectorInterface, err := caexpath.Resolve(template, InternalConnectorPath)
	if err != nil || connectorInterface.Kind != caex.KindInterfaceClass {
		return nil, missing("interface class", InternalConnectorPath)
	}

	if cfg.LibraryName != "" {
		lib.Name = cfg.LibraryName
	}
	if cfg.ClassName != "" {
		class.Name = cfg.ClassName
	}
	assetID.Value = cfg.GlobalAssetID

	for _, connector := range cfg.Connectors {
		element, err := collection.Append(newElement(connector.Name))
		if err != nil {
			return nil, err
		}
		if err := addRole(template, element, RoleClassPath(connector.Kind)); err != nil {
			logger.LogError("connector "+connector.Name, err)
		}
		ei, err := addInterface(element, connectorInterface, InternalConnectorPath)
		if err != nil {
			return nil, err
		}
		backRef := ei.Attribute(BackReferenceAttribute)
		if backRef == nil {
			backRef, err = ei.Append(caex.NewAttribute(BackReferenceAttribute, ""))
			if err != nil {
				return nil, err
			}
		}
		backRef.Value = connector.Reference
	}
	return template, nil
}

func missing(what string, path string) error {
	return fmt.Errorf("%w: %s '%s'", amlerrors.ErrTemplateElementMissing, what, path)
}

func newElement(name string) *caex.Node {
	n := caex.NewNode(caex.KindInternalElement, name)
	n.ID = uuid.NewString()
	return n
}

// addRole records the role class as supported role and copies its attributes
// and external interfaces onto element.
func addRole(doc *caex.Document, element *caex.Node, rolePath string) error {
	role, err := caexpath.Resolve(doc, rolePath)
	if err != nil || role.Kind != caex.KindRoleClass {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrRoleNotFound, rolePath)
	}
	element.SupportedRoleClasses = append(element.SupportedRoleClasses, rolePath)
	for _, child := range role.Children() {
		if child.Kind != caex.KindAttribute && child.Kind != caex.KindExternalInterface {
			continue
		}
		if _, err := element.Append(freshIDs(child.Clone())); err != nil {
			return err
		}
	}
	return nil
}

// addInterface appends an external interface based on class, named after the
// last path segment and carrying copies of the class attributes.
func addInterface(element *caex.Node, class *caex.Node, classPath string) (*caex.Node, error) {
	ei := caex.NewNode(caex.KindExternalInterface, class.Name)
	ei.ID = uuid.NewString()
	ei.RefBaseClassPath = classPath
	for _, attr := range class.ChildrenOfKind(caex.KindAttribute) {
		if _, err := ei.Append(attr.Clone()); err != nil {
			return nil, err
		}
	}
	return element.Append(ei)
}

// freshIDs gives every identified node of a copied subtree a new ID.
func freshIDs(n *caex.Node) *caex.Node {
	n.Walk(func(c *caex.Node) bool {
		if c.ID != "" {
			c.ID = uuid.NewString()
		}
		return true
	})
	return n
}
