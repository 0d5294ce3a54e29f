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
	"errors"
	"fmt"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubmodelStore keeps every submodel as one document whose _id is the submodel id.
type MongoSubmodelStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoSubmodelStore connects to cfg.URI.
func NewMongoSubmodelStore(ctx context.Context, cfg common.MongoDBConfig) (*MongoSubmodelStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	store := NewMongoSubmodelStoreWithCollection(client.Database(cfg.Database).Collection(cfg.Collection))
	store.client = client
	return store, nil
}

// NewMongoSubmodelStoreWithCollection uses an existing collection.
func NewMongoSubmodelStoreWithCollection(collection *mongo.Collection) *MongoSubmodelStore {
	return &MongoSubmodelStore{collection: collection}
}

func toDocument(sm *model.Submodel) (bson.D, error) {
	data, err := model.MarshalSubmodel(sm)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: "_id", Value: sm.ID}}, doc...), nil
}

func fromDocument(raw bson.Raw) (*model.Submodel, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, err
	}
	return model.UnmarshalSubmodel(data)
}

func (m *MongoSubmodelStore) GetSubmodels(ctx context.Context) ([]*model.Submodel, error) {
	cursor, err := m.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, internalError("AMLLINK-MONGOSTORE-GETALL-FIND", err)
	}
	defer cursor.Close(ctx)

	out := []*model.Submodel{}
	for cursor.Next(ctx) {
		sm, err := fromDocument(cursor.Current)
		if err != nil {
			return nil, internalError("AMLLINK-MONGOSTORE-GETALL-DECODE", err)
		}
		out = append(out, sm)
	}
	if err := cursor.Err(); err != nil {
		return nil, internalError("AMLLINK-MONGOSTORE-GETALL-CURSOR", err)
	}
	return out, nil
}

func (m *MongoSubmodelStore) GetSubmodel(ctx context.Context, id string) (*model.Submodel, error) {
	raw, err := m.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	if err != nil {
		return nil, internalError("AMLLINK-MONGOSTORE-GET-FIND", err)
	}
	sm, err := fromDocument(raw)
	if err != nil {
		return nil, internalError("AMLLINK-MONGOSTORE-GET-DECODE", err)
	}
	return sm, nil
}

func (m *MongoSubmodelStore) CreateSubmodel(ctx context.Context, sm *model.Submodel) error {
	doc, err := toDocument(sm)
	if err != nil {
		return err
	}
	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelAlreadyExists, sm.ID)
		}
		return internalError("AMLLINK-MONGOSTORE-CREATE-INSERT", err)
	}
	return nil
}

func (m *MongoSubmodelStore) PutSubmodel(ctx context.Context, sm *model.Submodel) error {
	doc, err := toDocument(sm)
	if err != nil {
		return err
	}
	_, err = m.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: sm.ID}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return internalError("AMLLINK-MONGOSTORE-PUT-REPLACE", err)
	}
	return nil
}

func (m *MongoSubmodelStore) DeleteSubmodel(ctx context.Context, id string) error {
	res, err := m.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return internalError("AMLLINK-MONGOSTORE-DELETE", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	return nil
}

func (m *MongoSubmodelStore) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
