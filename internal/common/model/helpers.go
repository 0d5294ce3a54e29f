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

// Package model provides the subset of the Asset Administration Shell metamodel
// used to link submodels with AutomationML documents, following the DotAAS Part 1
// Metamodel Schemas of the IDTA.
//
//nolint:all
package model

import (
	"fmt"
	"strconv"
)

// ChildrenOf returns the ordered direct children of a container element.
// Leaf elements have no children.
func ChildrenOf(element SubmodelElement) []SubmodelElement {
	switch e := element.(type) {
	case *SubmodelElementCollection:
		return e.Value
	case *SubmodelElementList:
		return e.Value
	case *Entity:
		return e.Statements
	}
	return nil
}

// IsContainer reports whether the element can hold child elements.
func IsContainer(element SubmodelElement) bool {
	switch element.(type) {
	case *SubmodelElementCollection, *SubmodelElementList, *Entity:
		return true
	}
	return false
}

// AddChild appends child to a container element.
func AddChild(container SubmodelElement, child SubmodelElement) error {
	switch c := container.(type) {
	case *SubmodelElementCollection:
		c.Value = append(c.Value, child)
	case *SubmodelElementList:
		c.Value = append(c.Value, child)
	case *Entity:
		c.Statements = append(c.Statements, child)
	default:
		return fmt.Errorf("%w: %s '%s'", ErrNotAContainer, container.GetModelType(), container.GetIdShort())
	}
	return nil
}

// AddSubmodelElement appends a top-level element to the submodel.
func (s *Submodel) AddSubmodelElement(element SubmodelElement) {
	s.SubmodelElements = append(s.SubmodelElements, element)
}

// FindByIdShort returns the first element with the given idShort, or nil.
func FindByIdShort(elements []SubmodelElement, idShort string) SubmodelElement {
	for _, e := range elements {
		if e.GetIdShort() == idShort {
			return e
		}
	}
	return nil
}

// Walk visits elements and their descendants in pre-order.
// Returning false from visit skips the children of that element.
func Walk(elements []SubmodelElement, visit func(SubmodelElement) bool) {
	for _, e := range elements {
		if visit(e) {
			Walk(ChildrenOf(e), visit)
		}
	}
}

// HasSemanticID reports whether the element's semantic id carries value in any key.
func HasSemanticID(element SubmodelElement, value string) bool {
	semanticID := element.GetSemanticID()
	if semanticID == nil {
		return false
	}
	for _, k := range semanticID.Keys {
		if k.Value == value {
			return true
		}
	}
	return false
}

// ValueAsText returns the scalar value of a Property or File, "" otherwise.
func ValueAsText(element SubmodelElement) string {
	switch e := element.(type) {
	case *Property:
		return e.Value
	case *File:
		return e.Value
	}
	return ""
}

// ReferenceTo builds the ModelReference addressing target inside the submodel.
// Children of a SubmodelElementList are addressed by their index.
func ReferenceTo(sm *Submodel, target SubmodelElement) (*Reference, error) {
	keys := []Key{{Type: KEYTYPES_SUBMODEL, Value: sm.ID}}
	if path, ok := findPath(sm.SubmodelElements, nil, target); ok {
		return NewModelReference(append(keys, path...)...), nil
	}
	return nil, fmt.Errorf("%w: element '%s' is not part of submodel '%s'", ErrReferenceNotResolvable, target.GetIdShort(), sm.ID)
}

func findPath(elements []SubmodelElement, parent SubmodelElement, target SubmodelElement) ([]Key, bool) {
	_, inList := parent.(*SubmodelElementList)
	for i, e := range elements {
		value := e.GetIdShort()
		if inList {
			value = strconv.Itoa(i)
		}
		key := Key{Type: KeyTypeOf(e), Value: value}
		if e == target {
			return []Key{key}, true
		}
		if rest, ok := findPath(ChildrenOf(e), e, target); ok {
			return append([]Key{key}, rest...), true
		}
	}
	return nil, false
}

// AddressesSubmodel reports whether keys consist of the submodel key alone.
func AddressesSubmodel(sm *Submodel, keys []Key) bool {
	return len(keys) == 1 && keys[0].Type == KEYTYPES_SUBMODEL && keys[0].Value == sm.ID
}

// Resolve follows keys from the submodel down to the addressed element.
// The first key must be the submodel key; each further key must match the
// element type it addresses.
func Resolve(sm *Submodel, keys []Key) (SubmodelElement, error) {
	if len(keys) < 2 || keys[0].Type != KEYTYPES_SUBMODEL || keys[0].Value != sm.ID {
		return nil, fmt.Errorf("%w: keys do not address an element of submodel '%s'", ErrReferenceNotResolvable, sm.ID)
	}

	var current SubmodelElement
	elements := sm.SubmodelElements
	for _, key := range keys[1:] {
		if current != nil && !IsContainer(current) {
			return nil, fmt.Errorf("%w: %s '%s' has no children", ErrReferenceNotResolvable, KeyTypeOf(current), current.GetIdShort())
		}
		next, err := step(current, elements, key)
		if err != nil {
			return nil, err
		}
		current = next
		elements = ChildrenOf(current)
	}
	return current, nil
}

func step(parent SubmodelElement, elements []SubmodelElement, key Key) (SubmodelElement, error) {
	var found SubmodelElement
	if _, isList := parent.(*SubmodelElementList); isList {
		index, err := strconv.Atoi(key.Value)
		if err != nil || index < 0 || index >= len(elements) {
			return nil, fmt.Errorf("%w: no list item at index '%s'", ErrReferenceNotResolvable, key.Value)
		}
		found = elements[index]
	} else {
		found = FindByIdShort(elements, key.Value)
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no element '%s'", ErrReferenceNotResolvable, key.Value)
	}
	if KeyTypeOf(found) != key.Type {
		return nil, fmt.Errorf("%w: '%s' is a %s, not a %s", ErrReferenceNotResolvable, key.Value, KeyTypeOf(found), key.Type)
	}
	return found, nil
}
