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
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register the postgres dialect
	"github.com/doug-martin/goqu/v9/exp"
	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
)

// PostgresSchema creates the submodel table. It is safe to run on every start.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS aml_submodel (
	id         TEXT PRIMARY KEY,
	id_short   TEXT,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_aml_submodel_id_short ON aml_submodel(id_short);
`

const (
	dialect = "postgres"

	tblSubmodel  = "aml_submodel"
	colID        = "id"
	colIdShort   = "id_short"
	colData      = "data"
	colUpdatedAt = "updated_at"
)

// PostgreSQLSubmodelStore keeps every submodel as one JSONB row.
type PostgreSQLSubmodelStore struct {
	db *sql.DB
}

// NewPostgreSQLSubmodelStore connects and applies PostgresSchema.
func NewPostgreSQLSubmodelStore(cfg common.PostgresConfig) (*PostgreSQLSubmodelStore, error) {
	db, err := common.InitializeDatabase(cfg, PostgresSchema)
	if err != nil {
		return nil, err
	}
	return NewPostgreSQLSubmodelStoreWithDB(db), nil
}

// NewPostgreSQLSubmodelStoreWithDB uses an open connection pool.
func NewPostgreSQLSubmodelStoreWithDB(db *sql.DB) *PostgreSQLSubmodelStore {
	return &PostgreSQLSubmodelStore{db: db}
}

func internalError(code string, err error) error {
	logger.LogError(code, err)
	return fmt.Errorf("%w: %v", common.NewInternalServerError(code+" database operation failed - see console for details"), err)
}

func (p *PostgreSQLSubmodelStore) GetSubmodels(ctx context.Context) ([]*model.Submodel, error) {
	d := goqu.Dialect(dialect)
	sqlStr, args, err := d.
		From(tblSubmodel).
		Select(colData).
		Order(goqu.C(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GETALL-BUILDSQL", err)
	}
	rows, err := p.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GETALL-QUERY", err)
	}
	defer rows.Close()

	out := []*model.Submodel{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, internalError("AMLLINK-PGSTORE-GETALL-SCAN", err)
		}
		sm, err := model.UnmarshalSubmodel(data)
		if err != nil {
			return nil, internalError("AMLLINK-PGSTORE-GETALL-DECODE", err)
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GETALL-ROWS", err)
	}
	return out, nil
}

func (p *PostgreSQLSubmodelStore) GetSubmodel(ctx context.Context, id string) (*model.Submodel, error) {
	sqlStr, args, err := selectSubmodelSQL(id)
	if err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GET-BUILDSQL", err)
	}
	var data []byte
	err = p.db.QueryRowContext(ctx, sqlStr, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	if err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GET-QUERY", err)
	}
	sm, err := model.UnmarshalSubmodel(data)
	if err != nil {
		return nil, internalError("AMLLINK-PGSTORE-GET-DECODE", err)
	}
	return sm, nil
}

func (p *PostgreSQLSubmodelStore) CreateSubmodel(ctx context.Context, sm *model.Submodel) error {
	data, err := model.MarshalSubmodel(sm)
	if err != nil {
		return err
	}
	sqlStr, args, err := insertSubmodelSQL(sm, data, goqu.DoNothing())
	if err != nil {
		return internalError("AMLLINK-PGSTORE-CREATE-BUILDSQL", err)
	}
	res, err := p.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return internalError("AMLLINK-PGSTORE-CREATE-EXECSQL", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return internalError("AMLLINK-PGSTORE-CREATE-ROWS", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelAlreadyExists, sm.ID)
	}
	return nil
}

func (p *PostgreSQLSubmodelStore) PutSubmodel(ctx context.Context, sm *model.Submodel) error {
	data, err := model.MarshalSubmodel(sm)
	if err != nil {
		return err
	}
	sqlStr, args, err := insertSubmodelSQL(sm, data, goqu.DoUpdate(colID, goqu.Record{
		colIdShort:   goqu.I("excluded." + colIdShort),
		colData:      goqu.I("excluded." + colData),
		colUpdatedAt: goqu.L("now()"),
	}))
	if err != nil {
		return internalError("AMLLINK-PGSTORE-PUT-BUILDSQL", err)
	}
	if _, err := p.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return internalError("AMLLINK-PGSTORE-PUT-EXECSQL", err)
	}
	return nil
}

func (p *PostgreSQLSubmodelStore) DeleteSubmodel(ctx context.Context, id string) error {
	d := goqu.Dialect(dialect)
	sqlStr, args, err := d.
		Delete(tblSubmodel).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return internalError("AMLLINK-PGSTORE-DELETE-BUILDSQL", err)
	}
	res, err := p.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return internalError("AMLLINK-PGSTORE-DELETE-EXECSQL", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return internalError("AMLLINK-PGSTORE-DELETE-ROWS", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: '%s'", amlerrors.ErrSubmodelNotFound, id)
	}
	return nil
}

func selectSubmodelSQL(id string) (string, []interface{}, error) {
	d := goqu.Dialect(dialect)
	return d.
		From(tblSubmodel).
		Select(colData).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

// insertSubmodelSQL builds the insert of one row; conflict decides what
// happens when the id is taken.
func insertSubmodelSQL(sm *model.Submodel, data []byte, conflict exp.ConflictExpression) (string, []interface{}, error) {
	d := goqu.Dialect(dialect)
	return d.
		Insert(tblSubmodel).
		Rows(goqu.Record{
			colID:      sm.ID,
			colIdShort: sm.IdShort,
			colData:    data,
		}).
		OnConflict(conflict).
		Prepared(true).
		ToSQL()
}

func (p *PostgreSQLSubmodelStore) Close(_ context.Context) error {
	return p.db.Close()
}
