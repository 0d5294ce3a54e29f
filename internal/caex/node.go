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

// Package caex holds the in-memory CAEX object model of an AutomationML
// document and its XML encoding.
package caex

import (
	"errors"
	"fmt"
)

// Kind identifies the CAEX construct a Node represents.
type Kind int

// Node kinds. Library kinds and InstanceHierarchy are document roots.
const (
	KindInstanceHierarchy Kind = iota + 1
	KindInternalElement
	KindSystemUnitClassLib
	KindSystemUnitClass
	KindRoleClassLib
	KindRoleClass
	KindInterfaceClassLib
	KindInterfaceClass
	KindAttributeTypeLib
	KindAttributeType
	KindAttribute
	KindExternalInterface
)

var kindNames = map[Kind]string{
	KindInstanceHierarchy:  "InstanceHierarchy",
	KindInternalElement:    "InternalElement",
	KindSystemUnitClassLib: "SystemUnitClassLib",
	KindSystemUnitClass:    "SystemUnitClass",
	KindRoleClassLib:       "RoleClassLib",
	KindRoleClass:          "RoleClass",
	KindInterfaceClassLib:  "InterfaceClassLib",
	KindInterfaceClass:     "InterfaceClass",
	KindAttributeTypeLib:   "AttributeTypeLib",
	KindAttributeType:      "AttributeType",
	KindAttribute:          "Attribute",
	KindExternalInterface:  "ExternalInterface",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsRoot reports whether nodes of this kind sit directly below the document.
func (k Kind) IsRoot() bool {
	switch k {
	case KindInstanceHierarchy, KindSystemUnitClassLib, KindRoleClassLib, KindInterfaceClassLib, KindAttributeTypeLib:
		return true
	}
	return false
}

// allowedChildren lists, per kind, the kinds a node may contain.
var allowedChildren = map[Kind][]Kind{
	KindInstanceHierarchy:  {KindInternalElement},
	KindInternalElement:    {KindAttribute, KindExternalInterface, KindInternalElement},
	KindSystemUnitClassLib: {KindSystemUnitClass},
	KindSystemUnitClass:    {KindAttribute, KindExternalInterface, KindInternalElement, KindSystemUnitClass},
	KindRoleClassLib:       {KindRoleClass},
	KindRoleClass:          {KindAttribute, KindExternalInterface, KindRoleClass},
	KindInterfaceClassLib:  {KindInterfaceClass},
	KindInterfaceClass:     {KindAttribute, KindExternalInterface, KindInterfaceClass},
	KindAttributeTypeLib:   {KindAttributeType},
	KindAttributeType:      {KindAttribute, KindAttributeType},
	KindAttribute:          {KindAttribute},
	KindExternalInterface:  {KindAttribute, KindExternalInterface},
}

// CanContain reports whether a node of kind k may hold a child of kind child.
func (k Kind) CanContain(child Kind) bool {
	for _, allowed := range allowedChildren[k] {
		if allowed == child {
			return true
		}
	}
	return false
}

// ErrInvalidChild is returned when a child kind does not fit its parent.
var ErrInvalidChild = errors.New("caex: child kind not allowed here")

// InternalLink connects two interfaces inside an element.
type InternalLink struct {
	Name            string
	RefPartnerSideA string
	RefPartnerSideB string
}

// Node is one CAEX object. Which fields are meaningful depends on Kind:
// Value, DefaultValue, AttributeDataType, Unit and RefAttributeType belong to
// attributes, RefBaseSystemUnitPath to internal elements, RefBaseClassPath to
// classes and external interfaces.
type Node struct {
	Kind        Kind
	Name        string
	ID          string
	Description string
	Version     string

	Value             string
	DefaultValue      string
	AttributeDataType string
	Unit              string
	RefAttributeType  string

	RefBaseClassPath      string
	RefBaseSystemUnitPath string
	SupportedRoleClasses  []string
	RoleRequirements      []string
	InternalLinks         []InternalLink

	parent   *Node
	children []*Node
	// doc is set on roots added to a document.
	doc *Document
}

// NewNode creates a detached node.
func NewNode(kind Kind, name string) *Node {
	return &Node{Kind: kind, Name: name}
}

// NewAttribute creates a detached attribute with a value.
func NewAttribute(name string, value string) *Node {
	return &Node{Kind: KindAttribute, Name: name, Value: value}
}

// Parent returns the containing node, nil for document roots and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered child nodes of every kind.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildrenOfKind returns the children of one kind, in order.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first child of kind with the given name, or nil.
func (n *Node) Child(kind Kind, name string) *Node {
	for _, c := range n.children {
		if c.Kind == kind && c.Name == name {
			return c
		}
	}
	return nil
}

// Attribute returns the direct attribute with the given name, or nil.
func (n *Node) Attribute(name string) *Node { return n.Child(KindAttribute, name) }

// InternalElement returns the direct internal element with the given name, or nil.
func (n *Node) InternalElement(name string) *Node { return n.Child(KindInternalElement, name) }

// ExternalInterface returns the direct external interface with the given name, or nil.
func (n *Node) ExternalInterface(name string) *Node { return n.Child(KindExternalInterface, name) }

// Append adds child as the last child of n. A child still attached elsewhere
// is rejected; Clone it first.
func (n *Node) Append(child *Node) (*Node, error) {
	if !n.Kind.CanContain(child.Kind) {
		return nil, fmt.Errorf("%w: %s cannot contain %s '%s'", ErrInvalidChild, n.Kind, child.Kind, child.Name)
	}
	if child.parent != nil {
		return nil, fmt.Errorf("%w: %s '%s' already has a parent", ErrInvalidChild, child.Kind, child.Name)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child, nil
}

// Walk visits n and its descendants in pre-order. Returning false from visit
// skips the subtree below that node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// Root returns the top-most ancestor of n (n itself for roots).
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Document returns the document n belongs to, nil for detached trees.
func (n *Node) Document() *Document {
	return n.Root().doc
}

// Clone returns a detached deep copy of n. IDs are copied unchanged.
func (n *Node) Clone() *Node {
	c := *n
	c.parent = nil
	c.doc = nil
	c.children = nil
	c.SupportedRoleClasses = append([]string(nil), n.SupportedRoleClasses...)
	c.RoleRequirements = append([]string(nil), n.RoleRequirements...)
	c.InternalLinks = append([]InternalLink(nil), n.InternalLinks...)
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = &c
		c.children = append(c.children, cc)
	}
	return &c
}
