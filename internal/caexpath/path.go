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

// Package caexpath computes reconstructible paths for CAEX nodes and resolves
// them back to nodes.
//
// A path joins the escaped names from the document root down to the node. The
// separator in front of a name depends on the kind of that node:
//
//	/  class inside a library or nested class
//	>  internal element
//	.  attribute
//	:  external interface
//
// Names containing a separator or a bracket are written as [name] with ']'
// doubled, so "Motor/Geared" becomes "[Motor/Geared]".
//
// A root whose name is also used by a root of another kind is prefixed with
// its kind, e.g. "RoleClassLib::Lib/C". Unqualified root segments resolve to
// the first matching root.
package caexpath

import (
	"fmt"
	"strings"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
)

// FragmentPrefix marks an AAS fragment key value as a CAEX path.
const FragmentPrefix = "AML/"

const (
	sepClass     = '/'
	sepElement   = '>'
	sepAttribute = '.'
	sepInterface = ':'
)

const reserved = "/>.:[]"

// rootQualifierSep separates the kind qualifier from the root name.
const rootQualifierSep = "::"

var rootKinds = []caex.Kind{
	caex.KindInstanceHierarchy,
	caex.KindInterfaceClassLib,
	caex.KindRoleClassLib,
	caex.KindSystemUnitClassLib,
	caex.KindAttributeTypeLib,
}

func separatorOf(kind caex.Kind) byte {
	switch kind {
	case caex.KindAttribute:
		return sepAttribute
	case caex.KindExternalInterface:
		return sepInterface
	case caex.KindInternalElement:
		return sepElement
	}
	return sepClass
}

// Escape returns name as a path segment.
func Escape(name string) string {
	if name != "" && !strings.ContainsAny(name, reserved) {
		return name
	}
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// PathOf returns the path of n from its document root.
func PathOf(n *caex.Node) string {
	var b strings.Builder
	writePath(&b, n, true)
	return b.String()
}

// FullNodePath returns the path of n below its root, e.g. "Motor1.Voltage"
// for attribute Voltage of element Motor1 in any instance hierarchy. Roots
// yield their own escaped name.
func FullNodePath(n *caex.Node) string {
	if n.Parent() == nil {
		return Escape(n.Name)
	}
	var b strings.Builder
	writePath(&b, n, false)
	return b.String()
}

func writePath(b *strings.Builder, n *caex.Node, withRoot bool) {
	parent := n.Parent()
	if parent == nil {
		if withRoot {
			b.WriteString(rootSegment(n))
		} else {
			b.WriteString(Escape(n.Name))
		}
		return
	}
	if parent.Parent() != nil || withRoot {
		writePath(b, parent, withRoot)
		b.WriteByte(separatorOf(n.Kind))
	}
	b.WriteString(Escape(n.Name))
}

func rootSegment(root *caex.Node) string {
	if doc := root.Document(); doc != nil && doc.SharesRootName(root) {
		return root.Kind.String() + rootQualifierSep + Escape(root.Name)
	}
	return Escape(root.Name)
}

// cutRootQualifier splits a leading "<Kind>::" from path. Kind 0 means the
// path is unqualified.
func cutRootQualifier(path string) (caex.Kind, string) {
	for _, kind := range rootKinds {
		if rest, ok := strings.CutPrefix(path, kind.String()+rootQualifierSep); ok {
			return kind, rest
		}
	}
	return 0, path
}

// FragmentOf returns the AAS fragment value addressing n.
func FragmentOf(n *caex.Node) string {
	return FragmentPrefix + PathOf(n)
}

// ParseFragment strips the fragment prefix and returns the CAEX path.
func ParseFragment(fragment string) (string, error) {
	path, ok := strings.CutPrefix(fragment, FragmentPrefix)
	if !ok {
		return "", fmt.Errorf("%w: fragment '%s' does not start with '%s'", amlerrors.ErrNotFound, fragment, FragmentPrefix)
	}
	return path, nil
}

// ResolveFragment resolves an AAS fragment value inside doc.
func ResolveFragment(doc *caex.Document, fragment string) (*caex.Node, error) {
	path, err := ParseFragment(fragment)
	if err != nil {
		return nil, err
	}
	return Resolve(doc, path)
}

type step struct {
	sep  byte
	name string
}

// split parses a path into its segments. The first segment has separator 0.
func split(path string) ([]step, error) {
	var steps []step
	var sep byte
	i := 0
	for {
		name, next, err := readSegment(path, i)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{sep: sep, name: name})
		if next == len(path) {
			return steps, nil
		}
		sep = path[next]
		i = next + 1
	}
}

func readSegment(path string, i int) (string, int, error) {
	if i < len(path) && path[i] == '[' {
		var b strings.Builder
		for j := i + 1; j < len(path); j++ {
			if path[j] != ']' {
				b.WriteByte(path[j])
				continue
			}
			if j+1 < len(path) && path[j+1] == ']' {
				b.WriteByte(']')
				j++
				continue
			}
			end := j + 1
			if end < len(path) && !isSeparator(path[end]) {
				return "", 0, fmt.Errorf("%w: unexpected '%c' after ']' in '%s'", amlerrors.ErrNotFound, path[end], path)
			}
			return b.String(), end, nil
		}
		return "", 0, fmt.Errorf("%w: unterminated '[' in '%s'", amlerrors.ErrNotFound, path)
	}

	j := i
	for j < len(path) && !isSeparator(path[j]) {
		if path[j] == '[' || path[j] == ']' {
			return "", 0, fmt.Errorf("%w: unexpected '%c' in '%s'", amlerrors.ErrNotFound, path[j], path)
		}
		j++
	}
	if j == i {
		return "", 0, fmt.Errorf("%w: empty segment in '%s'", amlerrors.ErrNotFound, path)
	}
	return path[i:j], j, nil
}

func isSeparator(c byte) bool {
	return c == sepClass || c == sepElement || c == sepAttribute || c == sepInterface
}

// childKind returns the kind a separator selects below parent.
func childKind(parent caex.Kind, sep byte) (caex.Kind, bool) {
	var kind caex.Kind
	switch sep {
	case sepAttribute:
		kind = caex.KindAttribute
	case sepInterface:
		kind = caex.KindExternalInterface
	case sepElement:
		kind = caex.KindInternalElement
	case sepClass:
		switch parent {
		case caex.KindSystemUnitClassLib, caex.KindSystemUnitClass:
			kind = caex.KindSystemUnitClass
		case caex.KindRoleClassLib, caex.KindRoleClass:
			kind = caex.KindRoleClass
		case caex.KindInterfaceClassLib, caex.KindInterfaceClass:
			kind = caex.KindInterfaceClass
		case caex.KindAttributeTypeLib, caex.KindAttributeType:
			kind = caex.KindAttributeType
		}
	}
	return kind, kind != 0 && parent.CanContain(kind)
}

// Resolve returns the node addressed by path. Without a kind qualifier, roots
// sharing a name are tried in document order.
func Resolve(doc *caex.Document, path string) (*caex.Node, error) {
	kind, rest := cutRootQualifier(path)
	steps, err := split(rest)
	if err != nil {
		return nil, err
	}
	for _, root := range doc.Roots() {
		if root.Name != steps[0].name || (kind != 0 && root.Kind != kind) {
			continue
		}
		if n := descend(root, steps[1:]); n != nil {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", amlerrors.ErrNotFound, path)
}

func descend(n *caex.Node, steps []step) *caex.Node {
	for _, s := range steps {
		kind, ok := childKind(n.Kind, s.sep)
		if !ok {
			return nil
		}
		n = n.Child(kind, s.name)
		if n == nil {
			return nil
		}
	}
	return n
}

// AllPaths lists the path of every node of doc in pre-order.
func AllPaths(doc *caex.Document) []string {
	var paths []string
	doc.Walk(func(n *caex.Node) bool {
		paths = append(paths, PathOf(n))
		return true
	})
	return paths
}
