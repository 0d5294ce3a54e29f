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
	"strconv"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caexpath"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
)

// Published is the outcome of a publish operation: the new artifact and the
// model reference a client can navigate to.
type Published struct {
	Element   model.SubmodelElement `json:"element"`
	Reference *model.Reference      `json:"reference"`
}

func requireKind(n *caex.Node, kinds ...caex.Kind) error {
	if n == nil {
		return fmt.Errorf("%w: no node given", amlerrors.ErrUnsupportedNode)
	}
	for _, k := range kinds {
		if n.Kind == k {
			return nil
		}
	}
	return fmt.Errorf("%w: '%s' is a %s", amlerrors.ErrUnsupportedNode, n.Name, n.Kind)
}

func requireElement(n *caex.Node) error {
	return requireKind(n, caex.KindInternalElement, caex.KindSystemUnitClass)
}

// prepare runs the checks shared by all publish operations. Nothing is
// mutated until all of them passed.
func prepare(sm *model.Submodel, kind IndexKind) (*model.Reference, error) {
	fileRef, err := fileReference(sm)
	if err != nil {
		return nil, err
	}
	if _, err := FindIndex(sm, kind); err != nil {
		return nil, err
	}
	return fileRef, nil
}

func published(sm *model.Submodel, element model.SubmodelElement) (*Published, error) {
	ref, err := model.ReferenceTo(sm, element)
	if err != nil {
		return nil, err
	}
	return &Published{Element: element, Reference: ref}, nil
}

// PublishAttribute mirrors a CAEX attribute as property. The Attributes index
// gains one collection named after the attribute's full node path; it holds
// the property and a SameAs_<name> relationship from the property to the
// attribute fragment.
func PublishAttribute(attr *caex.Node, sm *model.Submodel) (*Published, error) {
	if err := requireKind(attr, caex.KindAttribute); err != nil {
		return nil, err
	}
	fileRef, err := prepare(sm, IndexAttributes)
	if err != nil {
		return nil, err
	}
	index, err := GetOrCreateIndex(sm, IndexAttributes)
	if err != nil {
		return nil, err
	}

	collection := model.NewSubmodelElementCollection(caexpath.FullNodePath(attr))
	index.Value = append(index.Value, collection)

	property := model.NewStringProperty(attr.Name, attr.Value)
	collection.Value = append(collection.Value, property)
	first, err := model.ReferenceTo(sm, property)
	if err != nil {
		return nil, err
	}
	relationship := model.NewRelationshipElement(first, fileRef.WithFragment(caexpath.FragmentOf(attr)))
	relationship.IdShort = SameAsPrefix + attr.Name
	collection.Value = append(collection.Value, relationship)

	return published(sm, collection)
}

// PublishElement appends to the Elements index a reference element named
// after the element's full node path and pointing at its fragment.
func PublishElement(element *caex.Node, sm *model.Submodel) (*Published, error) {
	if err := requireElement(element); err != nil {
		return nil, err
	}
	fileRef, err := prepare(sm, IndexElements)
	if err != nil {
		return nil, err
	}
	index, err := GetOrCreateIndex(sm, IndexElements)
	if err != nil {
		return nil, err
	}

	ref := model.NewReferenceElement(fileRef.WithFragment(caexpath.FragmentOf(element)))
	ref.IdShort = caexpath.FullNodePath(element)
	index.Value = append(index.Value, ref)

	return published(sm, ref)
}

// PublishStructureExisting links an entity of sm, addressed by entityKeys, to
// the element fragment. The relationship is appended to the Structure index.
func PublishStructureExisting(element *caex.Node, sm *model.Submodel, entityKeys []model.Key) (*Published, error) {
	if err := requireElement(element); err != nil {
		return nil, err
	}
	fileRef, err := prepare(sm, IndexStructure)
	if err != nil {
		return nil, err
	}
	if err := requireEntity(sm, entityKeys); err != nil {
		return nil, err
	}
	return linkEntity(element, sm, fileRef, model.NewModelReference(entityKeys...))
}

func requireEntity(sm *model.Submodel, keys []model.Key) error {
	target, err := model.Resolve(sm, keys)
	if err != nil {
		return fmt.Errorf("%w: %v", amlerrors.ErrInvalidTarget, err)
	}
	if _, ok := target.(*model.Entity); !ok {
		return fmt.Errorf("%w: '%s' is a %s", amlerrors.ErrInvalidTarget, target.GetIdShort(), target.GetModelType())
	}
	return nil
}

func linkEntity(element *caex.Node, sm *model.Submodel, fileRef *model.Reference, entityRef *model.Reference) (*Published, error) {
	index, err := GetOrCreateIndex(sm, IndexStructure)
	if err != nil {
		return nil, err
	}
	relationship := model.NewRelationshipElement(entityRef, fileRef.WithFragment(caexpath.FragmentOf(element)))
	relationship.IdShort = SameAsPrefix + caexpath.FullNodePath(element)
	index.Value = append(index.Value, relationship)

	return published(sm, relationship)
}

// PublishStructureNew creates an entity for element and links it like
// PublishStructureExisting. parentKeys must address either an entity of sm,
// which gets a new child entity named after the element, or sm itself, whose
// entry node entity is reused or created.
func PublishStructureNew(element *caex.Node, sm *model.Submodel, parentKeys []model.Key) (*Published, error) {
	if err := requireElement(element); err != nil {
		return nil, err
	}
	fileRef, err := prepare(sm, IndexStructure)
	if err != nil {
		return nil, err
	}

	var entity *model.Entity
	if model.AddressesSubmodel(sm, parentKeys) {
		entity, err = entryNode(sm)
		if err != nil {
			return nil, err
		}
	} else {
		parent, err := model.Resolve(sm, parentKeys)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", amlerrors.ErrInvalidTarget, err)
		}
		parentEntity, ok := parent.(*model.Entity)
		if !ok {
			return nil, fmt.Errorf("%w: '%s' is a %s", amlerrors.ErrUnsupportedParent, parent.GetIdShort(), parent.GetModelType())
		}
		entity = model.NewEntity(model.ENTITYTYPE_CO_MANAGED_ENTITY)
		entity.IdShort = uniqueIdShort(parentEntity.Statements, element.Name)
		entity.SemanticID = model.NewGlobalReference(SemIDNode)
		parentEntity.Statements = append(parentEntity.Statements, entity)
	}

	entityRef, err := model.ReferenceTo(sm, entity)
	if err != nil {
		return nil, err
	}
	return linkEntity(element, sm, fileRef, entityRef)
}

// entryNode returns the top-level EntryNode entity of sm, creating it if absent.
func entryNode(sm *model.Submodel) (*model.Entity, error) {
	existing := model.FindByIdShort(sm.SubmodelElements, IDShortEntryNode)
	if existing == nil {
		entity := model.NewEntity(model.ENTITYTYPE_SELF_MANAGED_ENTITY)
		entity.IdShort = IDShortEntryNode
		entity.SemanticID = model.NewGlobalReference(SemIDEntryNode)
		sm.AddSubmodelElement(entity)
		return entity, nil
	}
	entity, ok := existing.(*model.Entity)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is a %s", amlerrors.ErrUnsupportedParent, IDShortEntryNode, existing.GetModelType())
	}
	return entity, nil
}

// uniqueIdShort returns name, or name with the first free numeric suffix
// when a sibling already uses it.
func uniqueIdShort(siblings []model.SubmodelElement, name string) string {
	candidate := name
	for i := 2; model.FindByIdShort(siblings, candidate) != nil; i++ {
		candidate = name + "_" + strconv.Itoa(i)
	}
	return candidate
}
