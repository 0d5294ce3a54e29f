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
	"net/http"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sampleSubmodel(id string) *model.Submodel {
	sm := model.NewSubmodel(id, "AutomationML")
	marker := model.NewFile("text/xml")
	marker.IdShort = "AutomationMLFile"
	marker.Value = "/aasx/files/plant.aml"
	sm.AddSubmodelElement(marker)
	sm.AddSubmodelElement(model.NewStringProperty("AutomationMLVersion", "AutomationML 2.10"))
	return sm
}

func TestInMemorySubmodelStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySubmodelStore()

	require.NoError(t, store.CreateSubmodel(ctx, sampleSubmodel("b")))
	require.NoError(t, store.CreateSubmodel(ctx, sampleSubmodel("a")))
	err := store.CreateSubmodel(ctx, sampleSubmodel("a"))
	assert.True(t, errors.Is(err, amlerrors.ErrSubmodelAlreadyExists))

	all, err := store.GetSubmodels(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)

	got, err := store.GetSubmodel(ctx, "a")
	require.NoError(t, err)
	got.AddSubmodelElement(model.NewStringProperty("Unsaved", "x"))
	again, err := store.GetSubmodel(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, again.SubmodelElements, 2)

	require.NoError(t, store.PutSubmodel(ctx, got))
	again, err = store.GetSubmodel(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, again.SubmodelElements, 3)
	_, ok := again.SubmodelElements[0].(*model.File)
	assert.True(t, ok)

	require.NoError(t, store.DeleteSubmodel(ctx, "a"))
	_, err = store.GetSubmodel(ctx, "a")
	assert.True(t, errors.Is(err, amlerrors.ErrSubmodelNotFound))
	assert.True(t, errors.Is(store.DeleteSubmodel(ctx, "a"), amlerrors.ErrSubmodelNotFound))
	require.NoError(t, store.Close(ctx))
}

func TestNewSubmodelStoreSelectsBackend(t *testing.T) {
	store, err := NewSubmodelStore(context.Background(), common.PersistenceConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &InMemorySubmodelStore{}, store)

	_, err = NewSubmodelStore(context.Background(), common.PersistenceConfig{Backend: "cassandra"})
	assert.Error(t, err)
}

func newMockedPostgres(t *testing.T) (*PostgreSQLSubmodelStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLSubmodelStoreWithDB(db), mock
}

func mustSQL(t *testing.T, build func(string) (string, []interface{}, error), id string) string {
	t.Helper()
	sqlStr, args, err := build(id)
	require.NoError(t, err)
	require.Equal(t, []interface{}{id}, args)
	return sqlStr
}

func TestSubmodelStatements(t *testing.T) {
	sqlStr, _, err := selectSubmodelSQL("sm-1")
	require.NoError(t, err)
	assert.Equal(t, `SELECT "data" FROM "aml_submodel" WHERE ("id" = $1)`, sqlStr)

	sqlStr, args, err := insertSubmodelSQL(sampleSubmodel("sm-1"), []byte(`{}`), goqu.DoNothing())
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "aml_submodel" ("data", "id", "id_short") VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, sqlStr)
	assert.Equal(t, []interface{}{[]byte(`{}`), "sm-1", "AutomationML"}, args)
}

func TestPostgresGetSubmodel(t *testing.T) {
	t.Parallel()
	store, mock := newMockedPostgres(t)
	data, err := model.MarshalSubmodel(sampleSubmodel("sm-1"))
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(mustSQL(t, selectSubmodelSQL, "sm-1"))).
		WithArgs("sm-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(data))

	sm, err := store.GetSubmodel(context.Background(), "sm-1")
	require.NoError(t, err)
	assert.Equal(t, "AutomationML", sm.IdShort)
	require.Len(t, sm.SubmodelElements, 2)
	assert.Equal(t, "/aasx/files/plant.aml", model.ValueAsText(sm.SubmodelElements[0]))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetSubmodelNotFound(t *testing.T) {
	t.Parallel()
	store, mock := newMockedPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta(mustSQL(t, selectSubmodelSQL, "missing"))).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.GetSubmodel(context.Background(), "missing")
	assert.True(t, errors.Is(err, amlerrors.ErrSubmodelNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetSubmodelsQueryError(t *testing.T) {
	t.Parallel()
	store, mock := newMockedPostgres(t)
	mock.ExpectQuery(`SELECT "data" FROM "aml_submodel" ORDER BY "id" ASC`).WillReturnError(errors.New("connection reset"))

	items, err := store.GetSubmodels(context.Background())
	require.Error(t, err)
	assert.Nil(t, items)
	assert.Equal(t, http.StatusInternalServerError, common.StatusCodeOf(err))
	assert.Contains(t, err.Error(), "AMLLINK-PGSTORE-GETALL-QUERY")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateSubmodel(t *testing.T) {
	t.Parallel()
	store, mock := newMockedPostgres(t)

	mock.ExpectExec(`INSERT INTO "aml_submodel" .* ON CONFLICT DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), "sm-1", "AutomationML").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "aml_submodel" .* ON CONFLICT DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), "sm-1", "AutomationML").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.CreateSubmodel(context.Background(), sampleSubmodel("sm-1")))
	err := store.CreateSubmodel(context.Background(), sampleSubmodel("sm-1"))
	assert.True(t, errors.Is(err, amlerrors.ErrSubmodelAlreadyExists))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPutAndDelete(t *testing.T) {
	t.Parallel()
	store, mock := newMockedPostgres(t)

	mock.ExpectExec(`INSERT INTO "aml_submodel" .* ON CONFLICT \(id\) DO UPDATE SET .*excluded`).
		WithArgs(sqlmock.AnyArg(), "sm-1", "AutomationML").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "aml_submodel" WHERE \("id" = \$1\)`).WithArgs("sm-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "aml_submodel"`).WithArgs("sm-1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.PutSubmodel(context.Background(), sampleSubmodel("sm-1")))
	require.NoError(t, store.DeleteSubmodel(context.Background(), "sm-1"))
	assert.True(t, errors.Is(store.DeleteSubmodel(context.Background(), "sm-1"), amlerrors.ErrSubmodelNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMongoSubmodelStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		store := NewMongoSubmodelStoreWithCollection(mt.Coll)
		doc, err := toDocument(sampleSubmodel("sm-1"))
		require.NoError(mt, err)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, doc))

		sm, err := store.GetSubmodel(context.Background(), "sm-1")
		require.NoError(mt, err)
		assert.Equal(mt, "sm-1", sm.ID)
		assert.Len(mt, sm.SubmodelElements, 2)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		store := NewMongoSubmodelStoreWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := store.GetSubmodel(context.Background(), "nope")
		assert.True(mt, errors.Is(err, amlerrors.ErrSubmodelNotFound))
	})

	mt.Run("list", func(mt *mtest.T) {
		store := NewMongoSubmodelStoreWithCollection(mt.Coll)
		first, err := toDocument(sampleSubmodel("a"))
		require.NoError(mt, err)
		second, err := toDocument(sampleSubmodel("b"))
		require.NoError(mt, err)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, first, second))

		all, err := store.GetSubmodels(context.Background())
		require.NoError(mt, err)
		require.Len(mt, all, 2)
		assert.Equal(mt, "b", all[1].ID)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		store := NewMongoSubmodelStoreWithCollection(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}),
		)

		require.NoError(mt, store.CreateSubmodel(context.Background(), sampleSubmodel("sm-1")))
		err := store.CreateSubmodel(context.Background(), sampleSubmodel("sm-1"))
		assert.True(mt, errors.Is(err, amlerrors.ErrSubmodelAlreadyExists))
	})

	mt.Run("put and delete", func(mt *mtest.T) {
		store := NewMongoSubmodelStoreWithCollection(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		require.NoError(mt, store.PutSubmodel(context.Background(), sampleSubmodel("sm-1")))
		require.NoError(mt, store.DeleteSubmodel(context.Background(), "sm-1"))
		assert.True(mt, errors.Is(store.DeleteSubmodel(context.Background(), "sm-1"), amlerrors.ErrSubmodelNotFound))
		require.NoError(mt, store.Close(context.Background()))
	})
}

func TestMongoDocumentKeepsElementTypes(t *testing.T) {
	doc, err := toDocument(sampleSubmodel("sm-1"))
	require.NoError(t, err)
	assert.Equal(t, "_id", doc[0].Key)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	sm, err := fromDocument(raw)
	require.NoError(t, err)
	_, ok := sm.SubmodelElements[0].(*model.File)
	assert.True(t, ok)
}
