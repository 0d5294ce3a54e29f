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
	"fmt"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
)

// IndexKind selects one of the three cross-reference lists of a submodel.
type IndexKind int

const (
	// IndexAttributes holds one collection per published attribute.
	IndexAttributes IndexKind = iota
	// IndexElements holds one reference element per published element.
	IndexElements
	// IndexStructure holds one relationship per element linked to an entity.
	IndexStructure
)

type indexLayout struct {
	idShort  string
	itemType model.AasSubmodelElements
}

var indexLayouts = map[IndexKind]indexLayout{
	IndexAttributes: {IDShortAmlAttributes, model.AASSUBMODELELEMENTS_SUBMODEL_ELEMENT_COLLECTION},
	IndexElements:   {IDShortAmlElements, model.AASSUBMODELELEMENTS_REFERENCE_ELEMENT},
	IndexStructure:  {IDShortAmlStructure, model.AASSUBMODELELEMENTS_RELATIONSHIP_ELEMENT},
}

func (k IndexKind) String() string {
	if layout, ok := indexLayouts[k]; ok {
		return layout.idShort
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

// FindIndex returns the index list of the given kind, or nil if it does not exist yet.
func FindIndex(sm *model.Submodel, kind IndexKind) (*model.SubmodelElementList, error) {
	layout, ok := indexLayouts[kind]
	if !ok {
		return nil, fmt.Errorf("unknown index kind %d", int(kind))
	}
	existing := model.FindByIdShort(sm.SubmodelElements, layout.idShort)
	if existing == nil {
		return nil, nil
	}
	list, ok := existing.(*model.SubmodelElementList)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is a %s", amlerrors.ErrIndexOccupied, layout.idShort, existing.GetModelType())
	}
	return list, nil
}

// GetOrCreateIndex returns the index list of the given kind, appending an
// empty one to sm on first use.
func GetOrCreateIndex(sm *model.Submodel, kind IndexKind) (*model.SubmodelElementList, error) {
	list, err := FindIndex(sm, kind)
	if err != nil || list != nil {
		return list, err
	}
	layout := indexLayouts[kind]
	list = model.NewSubmodelElementList(layout.idShort, layout.itemType)
	sm.AddSubmodelElement(list)
	return list, nil
}
