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

package amllink

import (
	"context"
	"fmt"
	"path"
	"regexp"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/loader"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
)

// Runs of characters that are invalid in file names (including space), or
// trailing dots.
var invalidFileNameChars = regexp.MustCompile(`([\x00-\x1f"<>|:*?\\/ ]*\.+$)|([\x00-\x1f"<>|:*?\\/ ]+)`)

// MakeValidFileName replaces every run of invalid file name characters and
// spaces with a single underscore.
func MakeValidFileName(name string) string {
	return invalidFileNameChars.ReplaceAllString(name, "_")
}

// ImportAmlFile validates data as AML/AMLX, stores it below
// dir/<base64url(sm.ID)> and marks sm as AutomationML submodel. The File marker and the AutomationMLVersion
// property are appended on first import and updated on later imports.
func ImportAmlFile(ctx context.Context, sm *model.Submodel, fileName string, data []byte, store filestore.Store, dir string) (*model.File, error) {
	doc, err := loader.Load(data)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = DefaultFileDirectory
	}
	name := path.Base(filestore.Clean(fileName))
	if name == "/" || name == "." {
		name = doc.FileName
	}
	stored := path.Join(filestore.Clean(dir), common.EncodeString(sm.ID), MakeValidFileName(name))
	if err := store.Put(ctx, stored, data); err != nil {
		return nil, fmt.Errorf("failed to store AML file %s: %w", stored, err)
	}

	marker := GetAmlFile(sm)
	if marker == nil {
		marker = model.NewFile(AmlContentType)
		marker.IdShort = IDShortAmlFile
		marker.SemanticID = model.NewGlobalReference(SemIDAmlFile)
		sm.AddSubmodelElement(marker)
	}
	marker.Value = stored

	version := doc.AutomationMLVersion()
	if p, ok := model.FindByIdShort(sm.SubmodelElements, IDShortAmlVersion).(*model.Property); ok {
		p.Value = version
	} else {
		sm.AddSubmodelElement(model.NewStringProperty(IDShortAmlVersion, version))
	}

	logger.LogInfo(fmt.Sprintf("imported AML file %s into submodel %s", stored, sm.ID))
	return marker, nil
}

// IsAmlFile reports whether element is a File carrying the AML marker semantic id.
func IsAmlFile(element model.SubmodelElement) bool {
	file, ok := element.(*model.File)
	return ok && file.SemanticID.HasKey(model.KEYTYPES_GLOBAL_REFERENCE, SemIDAmlFile)
}

// GetAmlFile returns the File marker of sm, or nil.
func GetAmlFile(sm *model.Submodel) *model.File {
	for _, e := range sm.SubmodelElements {
		if IsAmlFile(e) {
			return e.(*model.File)
		}
	}
	return nil
}

// IsAmlSubmodel reports whether sm has been linked to an AML file.
func IsAmlSubmodel(sm *model.Submodel) bool {
	return sm != nil && GetAmlFile(sm) != nil
}

// OpenLinkedDocument loads the AML document the marker of sm points at.
func OpenLinkedDocument(ctx context.Context, sm *model.Submodel, store filestore.Store) (*caex.Document, error) {
	marker := GetAmlFile(sm)
	if marker == nil {
		return nil, fmt.Errorf("%w: submodel '%s'", amlerrors.ErrMissingAmlSource, sm.ID)
	}
	data, err := store.Get(ctx, marker.Value)
	if err != nil {
		return nil, err
	}
	return loader.Load(data)
}

// fileReference returns the model reference of the marker of sm.
func fileReference(sm *model.Submodel) (*model.Reference, error) {
	marker := GetAmlFile(sm)
	if marker == nil {
		return nil, fmt.Errorf("%w: submodel '%s'", amlerrors.ErrMissingAmlSource, sm.ID)
	}
	return model.ReferenceTo(sm, marker)
}
