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

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/amllink"
	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/persistence"
	openapi "github.com/eclipse-basyx/basyx-go-amllink/pkg/amllinkapi/go"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const submodelID = "https://example.com/ids/sm/1"

type testService struct {
	router    chi.Router
	submodels persistence.SubmodelStore
	files     filestore.Store
}

func newTestService(t *testing.T) *testService {
	t.Helper()
	submodels := persistence.NewInMemorySubmodelStore()
	files := filestore.NewAferoStore(afero.NewMemMapFs())
	svc := NewAmlLinkAPIAPIService(submodels, files, common.AMLConfig{HostName: "https://example.com"}, afero.NewMemMapFs())
	return &testService{
		router:    openapi.NewRouter(openapi.NewAmlLinkAPIAPIController(svc, "")),
		submodels: submodels,
		files:     files,
	}
}

func (ts *testService) do(t *testing.T, method string, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(method, target, bytes.NewReader(body)))
	return rec
}

func (ts *testService) postJSON(t *testing.T, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return ts.do(t, http.MethodPost, target, data)
}

func (ts *testService) withImportedSubmodel(t *testing.T) *testService {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel","id":"`+submodelID+`","idShort":"AutomationML"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data, err := os.ReadFile("../testdata/plant.aml")
	require.NoError(t, err)
	rec = ts.do(t, http.MethodPost, smPath(submodelID)+"/aml/import?fileName=plant.aml", data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return ts
}

func smPath(id string) string {
	return "/submodels/" + common.EncodeString(id)
}

type publishedBody struct {
	Element   map[string]any  `json:"element"`
	Reference model.Reference `json:"reference"`
}

func decodePublished(t *testing.T, rec *httptest.ResponseRecorder) publishedBody {
	t.Helper()
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body publishedBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body common.ErrorHandler
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestPublishAttributeBeforeImportFails(t *testing.T) {
	ts := newTestService(t)
	rec := ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel","id":"`+submodelID+`"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.postJSON(t, smPath(submodelID)+"/aml/attributes", map[string]string{"path": "Plant>Motor1.Voltage"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, amlerrors.CodeMissingAmlSource, errorCode(t, rec))
}

func TestImportListsPaths(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.do(t, http.MethodGet, smPath(submodelID)+"/aml/paths", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var paths []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paths))
	assert.Contains(t, paths, "Plant>Motor1.Voltage")
	assert.Contains(t, paths, "Components/Motor/[Motor/Geared]")
}

func TestGetAmlFileDownloadsImportedDocument(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.do(t, http.MethodGet, smPath(submodelID)+"/aml/file", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "plant.aml")
	assert.Contains(t, rec.Body.String(), `<InstanceHierarchy Name="Plant">`)
}

func TestImportRejectsGarbage(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.do(t, http.MethodPost, smPath(submodelID)+"/aml/import?fileName=x.aml", []byte("not a document"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, amlerrors.CodeUnsupportedFormat, errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, smPath(submodelID)+"/aml/import", []byte("<CAEXFile/>"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPublishAttributeStoresSubmodel(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	body := decodePublished(t, ts.postJSON(t, smPath(submodelID)+"/aml/attributes", map[string]string{"path": "Plant>Motor1.Voltage"}))
	assert.Equal(t, "Motor1.Voltage", body.Element["idShort"])
	require.NotEmpty(t, body.Reference.Keys)
	assert.Equal(t, model.KEYTYPES_SUBMODEL, body.Reference.Keys[0].Type)

	stored, err := ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	published, err := model.Resolve(stored, body.Reference.Keys)
	require.NoError(t, err)
	assert.Equal(t, "Motor1.Voltage", published.GetIdShort())
}

func TestPublishElementTwiceAppendsTwice(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	for i := 0; i < 2; i++ {
		decodePublished(t, ts.postJSON(t, smPath(submodelID)+"/aml/elements", map[string]string{"path": "Plant>Motor1"}))
	}

	stored, err := ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	index, ok := model.FindByIdShort(stored.SubmodelElements, amllink.IDShortAmlElements).(*model.SubmodelElementList)
	require.True(t, ok)
	assert.Len(t, index.Value, 2)
}

func TestConcurrentPublishKeepsEveryElement(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, smPath(submodelID)+"/aml/elements", bytes.NewReader([]byte(`{"path":"Plant>Motor1"}`)))
			ts.router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}
	stored, err := ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	index, ok := model.FindByIdShort(stored.SubmodelElements, amllink.IDShortAmlElements).(*model.SubmodelElementList)
	require.True(t, ok)
	assert.Len(t, index.Value, n)
}

func TestGetAllSubmodels(t *testing.T) {
	ts := newTestService(t)

	rec := ts.do(t, http.MethodGet, "/submodels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	ts.withImportedSubmodel(t)
	rec = ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel","id":"https://example.com/ids/sm/0"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/submodels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	first, err := model.UnmarshalSubmodel(listed[0])
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/ids/sm/0", first.ID)
	second, err := model.UnmarshalSubmodel(listed[1])
	require.NoError(t, err)
	assert.Equal(t, submodelID, second.ID)
	assert.True(t, amllink.IsAmlSubmodel(second))
}

func TestDeleteSubmodelRemovesLinkedFile(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)
	stored, err := ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	marker := amllink.GetAmlFile(stored)
	require.NotNil(t, marker)
	exists, err := ts.files.Exists(context.Background(), marker.Value)
	require.NoError(t, err)
	require.True(t, exists)

	rec := ts.do(t, http.MethodDelete, smPath(submodelID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, smPath(submodelID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	exists, err = ts.files.Exists(context.Background(), marker.Value)
	require.NoError(t, err)
	assert.False(t, exists)

	rec = ts.do(t, http.MethodDelete, smPath(submodelID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, amlerrors.CodeSubmodelNotFound, errorCode(t, rec))

	rec = ts.do(t, http.MethodDelete, "/submodels/!!!", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPathsOfPlainSubmodelFails(t *testing.T) {
	ts := newTestService(t)
	rec := ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel","id":"`+submodelID+`"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, smPath(submodelID)+"/aml/paths", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, amlerrors.CodeMissingAmlSource, errorCode(t, rec))
}

func TestPublishUnknownPathIsNotFound(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.postJSON(t, smPath(submodelID)+"/aml/elements", map[string]string{"path": "Plant>Motor2"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, amlerrors.CodeNotFound, errorCode(t, rec))
}

func TestPublishRequestValidation(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.postJSON(t, smPath(submodelID)+"/aml/elements", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.postJSON(t, smPath(submodelID)+"/aml/elements", map[string]string{"path": "Plant>Motor1", "bogus": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.postJSON(t, "/submodels/!!!/aml/elements", map[string]string{"path": "Plant>Motor1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.postJSON(t, smPath("https://example.com/unknown")+"/aml/elements", map[string]string{"path": "Plant>Motor1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, amlerrors.CodeSubmodelNotFound, errorCode(t, rec))

	rec = ts.postJSON(t, smPath(submodelID)+"/aml/structure/existing", map[string]string{"path": "Plant>Motor1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishStructureNewThenExisting(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	created := decodePublished(t, ts.postJSON(t, smPath(submodelID)+"/aml/structure/new", map[string]string{"path": "Plant>Motor1"}))
	assert.Equal(t, "SameAs_Motor1", created.Element["idShort"])

	stored, err := ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	entryNode, ok := model.FindByIdShort(stored.SubmodelElements, amllink.IDShortEntryNode).(*model.Entity)
	require.True(t, ok)
	entryRef, err := model.ReferenceTo(stored, entryNode)
	require.NoError(t, err)

	body := map[string]any{"path": "Plant>Motor1>Encoder", "parentKeys": entryRef}
	decodePublished(t, ts.postJSON(t, smPath(submodelID)+"/aml/structure/new", body))

	stored, err = ts.submodels.GetSubmodel(context.Background(), submodelID)
	require.NoError(t, err)
	entryNode, ok = model.FindByIdShort(stored.SubmodelElements, amllink.IDShortEntryNode).(*model.Entity)
	require.True(t, ok)
	encoder, ok := model.FindByIdShort(entryNode.Statements, "Encoder").(*model.Entity)
	require.True(t, ok)
	encoderRef, err := model.ReferenceTo(stored, encoder)
	require.NoError(t, err)

	body = map[string]any{"path": "Plant>Motor1>Encoder", "entityKeys": encoderRef.Keys}
	linked := decodePublished(t, ts.postJSON(t, smPath(submodelID)+"/aml/structure/existing", body))
	assert.Equal(t, "SameAs_Motor1>Encoder", linked.Element["idShort"])

	body = map[string]any{"path": "Plant>Motor1", "entityKeys": []model.Key{stored.Reference().Keys[0], {Type: model.KEYTYPES_ENTITY, Value: "Nope"}}}
	rec := ts.postJSON(t, smPath(submodelID)+"/aml/structure/existing", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, amlerrors.CodeInvalidTarget, errorCode(t, rec))
}

func TestInitConnectorsAndGenerate(t *testing.T) {
	ts := newTestService(t)

	rec := ts.postJSON(t, "/connectors", map[string]any{"id": "https://example.com/ids/sm/connectors", "pneumatic": 1, "electric": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	connectors, err := model.UnmarshalSubmodel(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Interface_Connectors", connectors.IdShort)

	rec = ts.postJSON(t, smPath(connectors.ID)+"/aml/generate", map[string]string{
		"libraryName":   "Acme",
		"className":     "Valve",
		"globalAssetId": "https://example.com/ids/asset/1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	generated, err := model.UnmarshalSubmodel(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Valve", generated.IdShort)
	assert.NotEqual(t, connectors.ID, generated.ID)

	rec = ts.do(t, http.MethodGet, smPath(generated.ID)+"/aml/file", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `Name="Acme"`)
	assert.Contains(t, rec.Body.String(), `Name="ElectricConnector02"`)

	rec = ts.do(t, http.MethodGet, smPath(generated.ID)+"/aml/paths", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var paths []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paths))
	assert.Contains(t, paths, "Acme/Valve>ConnectorCollection>PneumaticConnector01")
}

func TestGenerateNeedsNamesAndConnectors(t *testing.T) {
	ts := newTestService(t)

	rec := ts.postJSON(t, "/connectors", map[string]any{"id": "https://example.com/ids/sm/empty"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = ts.postJSON(t, smPath("https://example.com/ids/sm/empty")+"/aml/generate", map[string]string{"libraryName": "L", "className": "C"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, amlerrors.CodeNoConnectors, errorCode(t, rec))

	rec = ts.postJSON(t, "/connectors", map[string]any{"id": "https://example.com/ids/sm/one", "mechanic": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = ts.postJSON(t, smPath("https://example.com/ids/sm/one")+"/aml/generate", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.postJSON(t, "/connectors", map[string]any{"id": "https://example.com/ids/sm/nameplate"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = ts.postJSON(t, smPath("https://example.com/ids/sm/one")+"/aml/generate", map[string]string{"nameplateSubmodelId": "https://example.com/ids/sm/nameplate"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "AMLLINK-GENERATE-NONAME")

	rec = ts.postJSON(t, "/connectors", map[string]any{"pneumatic": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostSubmodelConflict(t *testing.T) {
	ts := newTestService(t).withImportedSubmodel(t)

	rec := ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel","id":"`+submodelID+`"}`))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, amlerrors.CodeSubmodelAlreadyExists, errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/submodels", []byte(`{"modelType":"Submodel"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, smPath(submodelID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := model.UnmarshalSubmodel(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, submodelID, stored.ID)
}
