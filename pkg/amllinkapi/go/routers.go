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
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Route defines the parameters for an API endpoint.
//
// It encapsulates the HTTP method, URL pattern, and handler function for a single
// API route of the AutomationML Link Service.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a map of defined API endpoints.
//
// The map key is a unique identifier for the route, and the value contains
// the route's method, pattern, and handler function.
type Routes map[string]Route

// Router defines the required methods for retrieving API routes.
type Router interface {
	Routes() Routes
}

const errMsgRequiredMissing = "required parameter is missing"
const errMsgMinValueConstraint = "provided parameter is not respecting minimum value constraint"

// maxBodyBytes limits uploaded documents and JSON bodies.
const maxBodyBytes = 64 << 20

// NewRouter creates a new chi router for any number of API routers.
//
// This function initializes a chi router with logging middleware and CORS support,
// then registers all routes from the provided Router implementations. Every handler
// is wrapped by Logger under its route name.
func NewRouter(routers ...Router) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(cors.Handler(cors.Options{}))
	for _, api := range routers {
		for name, route := range api.Routes() {
			var handler http.Handler = route.HandlerFunc
			handler = Logger(handler, name)
			router.Method(route.Method, route.Pattern, handler)
		}
	}

	return router
}

// FileDownload is a helper payload type for file downloads with custom content type.
type FileDownload struct {
	Content     []byte
	ContentType string
	Filename    string
}

// EncodeJSONResponse encodes a response as JSON and writes it to the HTTP response writer.
//
// FileDownload payloads are written as attachment with their own content type.
// Everything else is encoded as JSON. A nil status means 200 OK.
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	wHeader := w.Header()

	var download *FileDownload
	switch r := i.(type) {
	case FileDownload:
		download = &r
	case *FileDownload:
		download = r
	}
	if download != nil {
		setDownloadHeaders(wHeader, download.Filename, download.ContentType)
		writeStatus(w, status)
		_, err := w.Write(download.Content)
		return err
	}

	wHeader.Set("Content-Type", "application/json; charset=UTF-8")
	writeStatus(w, status)

	if i != nil {
		return json.NewEncoder(w).Encode(i)
	}

	return nil
}

func writeStatus(w http.ResponseWriter, status *int) {
	if status != nil {
		w.WriteHeader(*status)
	} else {
		w.WriteHeader(http.StatusOK)
	}
}

func setDownloadHeaders(h http.Header, filename string, contentType string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(filename)}))
}

// readBody reads the complete request body, enforcing maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New(errMsgRequiredMissing)
	}
	return data, nil
}

// decodeJSONBody decodes the request body into v, rejecting unknown fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	d.DisallowUnknownFields()
	return d.Decode(v)
}
