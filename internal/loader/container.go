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

package loader

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
)

const (
	relsPath             = "_rels/.rels"
	contentTypesPath     = "[Content_Types].xml"
	rootDocumentRelType  = "http://schemas.automationml.org/container/relationship/RootDocument"
	rootDocumentSuffix   = "RootDocument"
	amlContentType       = "model/vnd.automationml+xml"
	relsContentType      = "application/vnd.openxmlformats-package.relationships+xml"
	relationshipsXMLNS   = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypesXMLNS    = "http://schemas.openxmlformats.org/package/2006/content-types"
	defaultRootEntryName = "root.aml"
)

var errNoRootDocument = errors.New("container has no root document")

type relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Xmlns        string         `xml:"xmlns,attr,omitempty"`
	Relationship []relationship `xml:"Relationship"`
}

type relationship struct {
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
	ID     string `xml:"Id,attr"`
}

type contentTypes struct {
	XMLName xml.Name             `xml:"Types"`
	Xmlns   string               `xml:"xmlns,attr"`
	Default []contentTypeDefault `xml:"Default"`
}

type contentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func readContainer(r io.ReaderAt, size int64) (*caex.Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	name, err := rootDocumentName(zr)
	if err != nil {
		return nil, err
	}
	data, err := readEntry(zr, name)
	if err != nil {
		return nil, err
	}
	return caex.Decode(data)
}

// rootDocumentName follows the package relationship whose type ends in
// RootDocument and falls back to the first .aml entry.
func rootDocumentName(zr *zip.Reader) (string, error) {
	if data, err := readEntry(zr, relsPath); err == nil {
		var rels relationships
		if err := xml.Unmarshal(data, &rels); err == nil {
			for _, rel := range rels.Relationship {
				if strings.HasSuffix(rel.Type, rootDocumentSuffix) {
					return rel.Target, nil
				}
			}
		}
	}
	for _, f := range zr.File {
		if strings.EqualFold(path.Ext(f.Name), ".aml") {
			return f.Name, nil
		}
	}
	return "", errNoRootDocument
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	name = strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/")
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("container entry not found: %s", name)
}

// WriteContainer packs doc as an AMLX container with the document as root
// document entry. An empty entryName uses the document's file name.
func WriteContainer(w io.Writer, doc *caex.Document, entryName string) error {
	if entryName == "" {
		entryName = doc.FileName
	}
	if entryName == "" {
		entryName = defaultRootEntryName
	}
	entryName = path.Base(strings.ReplaceAll(entryName, "\\", "/"))

	body, err := caex.Encode(doc)
	if err != nil {
		return err
	}
	types, err := xmlWithHeader(contentTypes{
		Xmlns: contentTypesXMLNS,
		Default: []contentTypeDefault{
			{Extension: "aml", ContentType: amlContentType},
			{Extension: "rels", ContentType: relsContentType},
		},
	})
	if err != nil {
		return err
	}
	rels, err := xmlWithHeader(relationships{
		Xmlns:        relationshipsXMLNS,
		Relationship: []relationship{{Type: rootDocumentRelType, Target: "/" + entryName, ID: "R1"}},
	})
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, entry := range []struct {
		name string
		data []byte
	}{
		{contentTypesPath, types},
		{relsPath, rels},
		{entryName, body},
	} {
		fw, err := zw.Create(entry.name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(entry.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

func xmlWithHeader(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
