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

package persistence

import (
	"context"
	"fmt"
	"sort"
	"sync"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
)

// InMemorySubmodelStore keeps submodels in a map. Contents are lost on restart.
type InMemorySubmodelStore struct {
	mu        sync.RWMutex
	submodels map[string]*model.Submodel
}

// NewInMemorySubmodelStore creates an empty store.
func NewInMemorySubmodelStore() *InMemorySubmodelStore {
	return &InMemorySubmodelStore{submodels: make(map[string]*model.Submodel)}
}

// GetSubmodels returns all submodels ordered by id.
func (s *InMemorySubmodelStore) GetSubmodels(_ context.Context) ([]*model.Submodel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.submodels))
	for id := range s.submodels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*model.Submodel, 0, len(ids))
	for _, id := range ids {
		c, err := copySubmodel(s.submodels[id])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// GetSubmodel returns a submodel by its ID
func (s *InMemorySubmodelStore) GetSubmodel(_ context.Context, id string) (*model.Submodel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sm, exists := s.submodels[id]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	return copySubmodel(sm)
}

// CreateSubmodel creates a new submodel in the store
func (s *InMemorySubmodelStore) CreateSubmodel(_ context.Context, sm *model.Submodel) error {
	c, err := copySubmodel(sm)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.submodels[sm.ID]; exists {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelAlreadyExists, sm.ID)
	}
	s.submodels[sm.ID] = c
	return nil
}

// PutSubmodel creates or replaces a submodel
func (s *InMemorySubmodelStore) PutSubmodel(_ context.Context, sm *model.Submodel) error {
	c, err := copySubmodel(sm)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submodels[sm.ID] = c
	return nil
}

// DeleteSubmodel deletes a submodel by its ID
func (s *InMemorySubmodelStore) DeleteSubmodel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.submodels[id]; !exists {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	delete(s.submodels, id)
	return nil
}

func (s *InMemorySubmodelStore) Close(_ context.Context) error {
	return nil
}
