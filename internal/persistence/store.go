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

// Package persistence stores AutomationML submodels between requests.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
)

// SubmodelStore is implemented by every backend. Returned submodels are
// copies; changes become visible to others only through PutSubmodel.
type SubmodelStore interface {
	GetSubmodels(ctx context.Context) ([]*model.Submodel, error)
	GetSubmodel(ctx context.Context, id string) (*model.Submodel, error)
	CreateSubmodel(ctx context.Context, sm *model.Submodel) error
	PutSubmodel(ctx context.Context, sm *model.Submodel) error
	DeleteSubmodel(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// NewSubmodelStore opens the backend selected by cfg.Backend.
func NewSubmodelStore(ctx context.Context, cfg common.PersistenceConfig) (SubmodelStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory", "inmemory":
		return NewInMemorySubmodelStore(), nil
	case "postgres", "postgresql":
		return NewPostgreSQLSubmodelStore(cfg.Postgres)
	case "mongodb", "mongo":
		return NewMongoSubmodelStore(ctx, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unsupported persistence backend: %s", cfg.Backend)
	}
}

// copySubmodel decouples a stored submodel from its caller.
func copySubmodel(sm *model.Submodel) (*model.Submodel, error) {
	data, err := model.MarshalSubmodel(sm)
	if err != nil {
		return nil, err
	}
	return model.UnmarshalSubmodel(data)
}
