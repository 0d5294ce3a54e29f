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

package caex

import "fmt"

// SourceDocumentInformation records the tool that wrote a CAEX 3.0 document.
type SourceDocumentInformation struct {
	OriginName          string
	OriginID            string
	OriginVendor        string
	OriginVersion       string
	OriginRelease       string
	LastWritingDateTime string
}

// ExternalReference is an alias for a library defined in another document.
type ExternalReference struct {
	Path  string
	Alias string
}

// Document is a CAEX file: header information plus five root forests.
type Document struct {
	FileName      string
	SchemaVersion string

	SuperiorStandardVersions  []string
	SourceDocumentInformation []SourceDocumentInformation
	ExternalReferences        []ExternalReference

	// AutomationMLVersion attribute of the CAEX 2.15 AdditionalInformation header.
	AdditionalInformationAMLVersion string

	InstanceHierarchies []*Node
	InterfaceClassLibs  []*Node
	RoleClassLibs       []*Node
	SystemUnitClassLibs []*Node
	AttributeTypeLibs   []*Node
}

// NewDocument creates an empty CAEX 3.0 document.
func NewDocument(fileName string) *Document {
	return &Document{FileName: fileName, SchemaVersion: "3.0"}
}

// Roots returns the root nodes: instance hierarchies first, then the
// interface, role, system unit class and attribute type libraries.
func (d *Document) Roots() []*Node {
	roots := make([]*Node, 0, len(d.InstanceHierarchies)+len(d.InterfaceClassLibs)+len(d.RoleClassLibs)+len(d.SystemUnitClassLibs)+len(d.AttributeTypeLibs))
	roots = append(roots, d.InstanceHierarchies...)
	roots = append(roots, d.InterfaceClassLibs...)
	roots = append(roots, d.RoleClassLibs...)
	roots = append(roots, d.SystemUnitClassLibs...)
	roots = append(roots, d.AttributeTypeLibs...)
	return roots
}

// AddRoot appends a root node to the forest of its kind.
func (d *Document) AddRoot(n *Node) (*Node, error) {
	if n.parent != nil {
		return nil, fmt.Errorf("%w: %s '%s' already has a parent", ErrInvalidChild, n.Kind, n.Name)
	}
	switch n.Kind {
	case KindInstanceHierarchy:
		d.InstanceHierarchies = append(d.InstanceHierarchies, n)
	case KindInterfaceClassLib:
		d.InterfaceClassLibs = append(d.InterfaceClassLibs, n)
	case KindRoleClassLib:
		d.RoleClassLibs = append(d.RoleClassLibs, n)
	case KindSystemUnitClassLib:
		d.SystemUnitClassLibs = append(d.SystemUnitClassLibs, n)
	case KindAttributeTypeLib:
		d.AttributeTypeLibs = append(d.AttributeTypeLibs, n)
	default:
		return nil, fmt.Errorf("%w: %s '%s' is not a document root", ErrInvalidChild, n.Kind, n.Name)
	}
	n.doc = d
	return n, nil
}

// SharesRootName reports whether a root of another kind carries the name of root.
func (d *Document) SharesRootName(root *Node) bool {
	for _, r := range d.Roots() {
		if r.Kind != root.Kind && r.Name == root.Name {
			return true
		}
	}
	return false
}

// Root returns the root of the given kind and name, or nil.
func (d *Document) Root(kind Kind, name string) *Node {
	for _, r := range d.Roots() {
		if r.Kind == kind && r.Name == name {
			return r
		}
	}
	return nil
}

// Walk visits every node of every root in pre-order.
func (d *Document) Walk(visit func(*Node) bool) {
	for _, r := range d.Roots() {
		r.Walk(visit)
	}
}

// Contains reports whether n is reachable from one of the document roots.
func (d *Document) Contains(n *Node) bool {
	root := n.Root()
	for _, r := range d.Roots() {
		if r == root {
			return true
		}
	}
	return false
}

// AutomationMLVersion returns the AutomationML version the document declares:
// the first SuperiorStandardVersion entry (CAEX 3.0) or the AutomationMLVersion
// additional information (CAEX 2.15), "" if neither is present.
func (d *Document) AutomationMLVersion() string {
	if len(d.SuperiorStandardVersions) > 0 {
		return d.SuperiorStandardVersions[0]
	}
	return d.AdditionalInformationAMLVersion
}
