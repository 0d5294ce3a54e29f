/*
 * BaSyx AutomationML Link Service
 *
 * Links AutomationML (CAEX 3.0) documents into Asset Administration Shell submodels: import, path browsing, publication of attributes, elements and structure, and generation of connector-based AML components.
 *
 * API version: V1.0.0
 * Contact: info@basyx.org
 */

package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	status := http.StatusCreated
	require.NoError(t, EncodeJSONResponse(map[string]string{"a": "b"}, &status, rec))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":"b"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, EncodeJSONResponse(nil, nil, rec))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestEncodeFileDownload(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, EncodeJSONResponse(FileDownload{Content: []byte("<CAEXFile/>"), ContentType: "text/xml", Filename: "/aasx/files/plant.aml"}, nil, rec))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "attachment; filename=plant.aml", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "<CAEXFile/>", rec.Body.String())
}

func TestDefaultErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"parsing", &ParsingError{Param: "body", Err: errors.New("unexpected EOF")}, http.StatusBadRequest, ""},
		{"required", &RequiredError{Field: "path"}, http.StatusUnprocessableEntity, ""},
		{"not found", fmt.Errorf("%w: 'Plant>X'", amlerrors.ErrNotFound), http.StatusNotFound, amlerrors.CodeNotFound},
		{"missing source", amlerrors.ErrMissingAmlSource, http.StatusUnprocessableEntity, amlerrors.CodeMissingAmlSource},
		{"internal", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			DefaultErrorHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, nil)
			assert.Equal(t, tt.status, rec.Code)

			var body common.ErrorHandler
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.CorrelationId)
			assert.Equal(t, common.MessageTypeOf(tt.status), body.MessageType)
		})
	}
}

type staticRouter Routes

func (r staticRouter) Routes() Routes { return Routes(r) }

func TestNewRouterRegistersRoutes(t *testing.T) {
	router := NewRouter(staticRouter{
		"Ping": Route{http.MethodGet, "/ping", func(w http.ResponseWriter, _ *http.Request) {
			_ = EncodeJSONResponse("pong", nil, w)
		}},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"pong"`, strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssertInitConnectorsRequestConstraints(t *testing.T) {
	assert.NoError(t, AssertInitConnectorsRequestConstraints(InitConnectorsRequest{Pneumatic: 1}))
	var parsingErr *ParsingError
	assert.ErrorAs(t, AssertInitConnectorsRequestConstraints(InitConnectorsRequest{Electric: -1}), &parsingErr)
}
