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

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Namespace is the XML namespace of CAEX 3.0 documents.
const Namespace = "http://www.dke.de/CAEX"

// ErrNotCAEX is returned when the input is well-formed XML but not a CAEXFile.
var ErrNotCAEX = errors.New("caex: not a CAEX document")

type xmlFile struct {
	XMLName       xml.Name `xml:"CAEXFile"`
	FileName      string   `xml:"FileName,attr"`
	SchemaVersion string   `xml:"SchemaVersion,attr"`

	SuperiorStandardVersion   []string                   `xml:"SuperiorStandardVersion"`
	SourceDocumentInformation []xmlSourceDocumentInfo    `xml:"SourceDocumentInformation"`
	AdditionalInformation     []xmlAdditionalInformation `xml:"AdditionalInformation"`
	ExternalReference         []xmlExternalReference     `xml:"ExternalReference"`

	InstanceHierarchy  []xmlElement `xml:"InstanceHierarchy"`
	InterfaceClassLib  []xmlElement `xml:"InterfaceClassLib"`
	RoleClassLib       []xmlElement `xml:"RoleClassLib"`
	SystemUnitClassLib []xmlElement `xml:"SystemUnitClassLib"`
	AttributeTypeLib   []xmlElement `xml:"AttributeTypeLib"`
}

type xmlSourceDocumentInfo struct {
	OriginName          string `xml:"OriginName,attr"`
	OriginID            string `xml:"OriginID,attr"`
	OriginVendor        string `xml:"OriginVendor,attr,omitempty"`
	OriginVersion       string `xml:"OriginVersion,attr"`
	OriginRelease       string `xml:"OriginRelease,attr,omitempty"`
	LastWritingDateTime string `xml:"LastWritingDateTime,attr"`
}

type xmlAdditionalInformation struct {
	AutomationMLVersion string `xml:"AutomationMLVersion,attr,omitempty"`
}

type xmlExternalReference struct {
	Path  string `xml:"Path,attr"`
	Alias string `xml:"Alias,attr"`
}

type xmlRoleClassRef struct {
	RefRoleClassPath string `xml:"RefRoleClassPath,attr"`
}

type xmlRoleRequirement struct {
	RefBaseRoleClassPath string `xml:"RefBaseRoleClassPath,attr"`
}

type xmlInternalLink struct {
	Name            string `xml:"Name,attr"`
	RefPartnerSideA string `xml:"RefPartnerSideA,attr"`
	RefPartnerSideB string `xml:"RefPartnerSideB,attr"`
}

// xmlElement covers every named CAEX object. Field order follows the CAEX
// sequence so that encoded documents keep the schema order.
type xmlElement struct {
	Name                  string `xml:"Name,attr"`
	ID                    string `xml:"ID,attr,omitempty"`
	AttributeDataType     string `xml:"AttributeDataType,attr,omitempty"`
	Unit                  string `xml:"Unit,attr,omitempty"`
	RefAttributeType      string `xml:"RefAttributeType,attr,omitempty"`
	RefBaseClassPath      string `xml:"RefBaseClassPath,attr,omitempty"`
	RefBaseSystemUnitPath string `xml:"RefBaseSystemUnitPath,attr,omitempty"`

	Description  string `xml:"Description,omitempty"`
	Version      string `xml:"Version,omitempty"`
	DefaultValue string `xml:"DefaultValue,omitempty"`
	Value        string `xml:"Value,omitempty"`

	Attribute          []xmlElement         `xml:"Attribute"`
	ExternalInterface  []xmlElement         `xml:"ExternalInterface"`
	InternalElement    []xmlElement         `xml:"InternalElement"`
	SupportedRoleClass []xmlRoleClassRef    `xml:"SupportedRoleClass"`
	InternalLink       []xmlInternalLink    `xml:"InternalLink"`
	RoleRequirements   []xmlRoleRequirement `xml:"RoleRequirements"`
	SystemUnitClass    []xmlElement         `xml:"SystemUnitClass"`
	RoleClass          []xmlElement         `xml:"RoleClass"`
	InterfaceClass     []xmlElement         `xml:"InterfaceClass"`
	AttributeType      []xmlElement         `xml:"AttributeType"`

	// children holds the decoded child objects in document order.
	children []xmlChild
}

type xmlChild struct {
	kind Kind
	elem xmlElement
}

var childKinds = map[string]Kind{
	"Attribute":         KindAttribute,
	"ExternalInterface": KindExternalInterface,
	"InternalElement":   KindInternalElement,
	"SystemUnitClass":   KindSystemUnitClass,
	"RoleClass":         KindRoleClass,
	"InterfaceClass":    KindInterfaceClass,
	"AttributeType":     KindAttributeType,
}

// UnmarshalXML decodes a CAEX object keeping the order of its child objects
// even when kinds are interleaved. Unknown elements are skipped.
func (e *xmlElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "Name":
			e.Name = a.Value
		case "ID":
			e.ID = a.Value
		case "AttributeDataType":
			e.AttributeDataType = a.Value
		case "Unit":
			e.Unit = a.Value
		case "RefAttributeType":
			e.RefAttributeType = a.Value
		case "RefBaseClassPath":
			e.RefBaseClassPath = a.Value
		case "RefBaseSystemUnitPath":
			e.RefBaseSystemUnitPath = a.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			if err := e.decodeChild(d, t); err != nil {
				return err
			}
		}
	}
}

func (e *xmlElement) decodeChild(d *xml.Decoder, t xml.StartElement) error {
	if kind, ok := childKinds[t.Name.Local]; ok {
		var child xmlElement
		if err := d.DecodeElement(&child, &t); err != nil {
			return err
		}
		e.children = append(e.children, xmlChild{kind: kind, elem: child})
		return nil
	}
	switch t.Name.Local {
	case "Description":
		return d.DecodeElement(&e.Description, &t)
	case "Version":
		return d.DecodeElement(&e.Version, &t)
	case "DefaultValue":
		return d.DecodeElement(&e.DefaultValue, &t)
	case "Value":
		return d.DecodeElement(&e.Value, &t)
	case "SupportedRoleClass":
		var r xmlRoleClassRef
		if err := d.DecodeElement(&r, &t); err != nil {
			return err
		}
		e.SupportedRoleClass = append(e.SupportedRoleClass, r)
	case "InternalLink":
		var l xmlInternalLink
		if err := d.DecodeElement(&l, &t); err != nil {
			return err
		}
		e.InternalLink = append(e.InternalLink, l)
	case "RoleRequirements":
		var r xmlRoleRequirement
		if err := d.DecodeElement(&r, &t); err != nil {
			return err
		}
		e.RoleRequirements = append(e.RoleRequirements, r)
	default:
		return d.Skip()
	}
	return nil
}

// Decode parses a CAEX document. The whole input must be a CAEXFile.
func Decode(data []byte) (*Document, error) {
	var f xmlFile
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCAEX, err)
	}
	if f.XMLName.Local != "CAEXFile" {
		return nil, fmt.Errorf("%w: root element is <%s>", ErrNotCAEX, f.XMLName.Local)
	}

	doc := &Document{
		FileName:                 f.FileName,
		SchemaVersion:            f.SchemaVersion,
		SuperiorStandardVersions: f.SuperiorStandardVersion,
	}
	for _, s := range f.SourceDocumentInformation {
		doc.SourceDocumentInformation = append(doc.SourceDocumentInformation, SourceDocumentInformation(s))
	}
	for _, a := range f.AdditionalInformation {
		if a.AutomationMLVersion != "" && doc.AdditionalInformationAMLVersion == "" {
			doc.AdditionalInformationAMLVersion = a.AutomationMLVersion
		}
	}
	for _, r := range f.ExternalReference {
		doc.ExternalReferences = append(doc.ExternalReferences, ExternalReference(r))
	}

	forests := []struct {
		kind  Kind
		items []xmlElement
	}{
		{KindInstanceHierarchy, f.InstanceHierarchy},
		{KindInterfaceClassLib, f.InterfaceClassLib},
		{KindRoleClassLib, f.RoleClassLib},
		{KindSystemUnitClassLib, f.SystemUnitClassLib},
		{KindAttributeTypeLib, f.AttributeTypeLib},
	}
	for _, forest := range forests {
		for _, item := range forest.items {
			root, err := fromXML(forest.kind, item)
			if err != nil {
				return nil, err
			}
			if _, err := doc.AddRoot(root); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// Read parses a CAEX document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func fromXML(kind Kind, e xmlElement) (*Node, error) {
	n := &Node{
		Kind:                  kind,
		Name:                  e.Name,
		ID:                    e.ID,
		Description:           e.Description,
		Version:               e.Version,
		Value:                 e.Value,
		DefaultValue:          e.DefaultValue,
		AttributeDataType:     e.AttributeDataType,
		Unit:                  e.Unit,
		RefAttributeType:      e.RefAttributeType,
		RefBaseClassPath:      e.RefBaseClassPath,
		RefBaseSystemUnitPath: e.RefBaseSystemUnitPath,
	}
	for _, s := range e.SupportedRoleClass {
		n.SupportedRoleClasses = append(n.SupportedRoleClasses, s.RefRoleClassPath)
	}
	for _, r := range e.RoleRequirements {
		n.RoleRequirements = append(n.RoleRequirements, r.RefBaseRoleClassPath)
	}
	for _, l := range e.InternalLink {
		n.InternalLinks = append(n.InternalLinks, InternalLink(l))
	}

	for _, c := range e.children {
		child, err := fromXML(c.kind, c.elem)
		if err != nil {
			return nil, err
		}
		if _, err := n.Append(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Encode serializes the document as indented CAEX XML with an XML header.
// CAEX 3.0 documents are written in the CAEX namespace. Child objects are
// written grouped by kind in schema sequence; within a kind they keep their order.
func Encode(doc *Document) ([]byte, error) {
	f := xmlFile{
		FileName:                doc.FileName,
		SchemaVersion:           doc.SchemaVersion,
		SuperiorStandardVersion: doc.SuperiorStandardVersions,
	}
	start := xml.StartElement{Name: xml.Name{Local: "CAEXFile"}}
	if doc.SchemaVersion == "" || doc.SchemaVersion >= "3" {
		start.Name.Space = Namespace
	}
	for _, s := range doc.SourceDocumentInformation {
		f.SourceDocumentInformation = append(f.SourceDocumentInformation, xmlSourceDocumentInfo(s))
	}
	if doc.AdditionalInformationAMLVersion != "" {
		f.AdditionalInformation = []xmlAdditionalInformation{{AutomationMLVersion: doc.AdditionalInformationAMLVersion}}
	}
	for _, r := range doc.ExternalReferences {
		f.ExternalReference = append(f.ExternalReference, xmlExternalReference(r))
	}
	for _, n := range doc.InstanceHierarchies {
		f.InstanceHierarchy = append(f.InstanceHierarchy, toXML(n))
	}
	for _, n := range doc.InterfaceClassLibs {
		f.InterfaceClassLib = append(f.InterfaceClassLib, toXML(n))
	}
	for _, n := range doc.RoleClassLibs {
		f.RoleClassLib = append(f.RoleClassLib, toXML(n))
	}
	for _, n := range doc.SystemUnitClassLibs {
		f.SystemUnitClassLib = append(f.SystemUnitClassLib, toXML(n))
	}
	for _, n := range doc.AttributeTypeLibs {
		f.AttributeTypeLib = append(f.AttributeTypeLib, toXML(n))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.EncodeElement(f, start); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write serializes the document to w.
func Write(w io.Writer, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func toXML(n *Node) xmlElement {
	e := xmlElement{
		Name:                  n.Name,
		ID:                    n.ID,
		AttributeDataType:     n.AttributeDataType,
		Unit:                  n.Unit,
		RefAttributeType:      n.RefAttributeType,
		RefBaseClassPath:      n.RefBaseClassPath,
		RefBaseSystemUnitPath: n.RefBaseSystemUnitPath,
		Description:           n.Description,
		Version:               n.Version,
		DefaultValue:          n.DefaultValue,
		Value:                 n.Value,
	}
	for _, s := range n.SupportedRoleClasses {
		e.SupportedRoleClass = append(e.SupportedRoleClass, xmlRoleClassRef{RefRoleClassPath: s})
	}
	for _, r := range n.RoleRequirements {
		e.RoleRequirements = append(e.RoleRequirements, xmlRoleRequirement{RefBaseRoleClassPath: r})
	}
	for _, l := range n.InternalLinks {
		e.InternalLink = append(e.InternalLink, xmlInternalLink(l))
	}
	for _, c := range n.children {
		x := toXML(c)
		switch c.Kind {
		case KindAttribute:
			e.Attribute = append(e.Attribute, x)
		case KindExternalInterface:
			e.ExternalInterface = append(e.ExternalInterface, x)
		case KindInternalElement:
			e.InternalElement = append(e.InternalElement, x)
		case KindSystemUnitClass:
			e.SystemUnitClass = append(e.SystemUnitClass, x)
		case KindRoleClass:
			e.RoleClass = append(e.RoleClass, x)
		case KindInterfaceClass:
			e.InterfaceClass = append(e.InterfaceClass, x)
		case KindAttributeType:
			e.AttributeType = append(e.AttributeType, x)
		}
	}
	return e
}
