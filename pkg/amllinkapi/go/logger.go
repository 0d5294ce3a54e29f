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
	"log"
	"net/http"
	"time"
)

// Logger wraps an HTTP handler and logs the handler name and the time taken to process the request.
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		inner.ServeHTTP(w, r)

		log.Printf(
			"request handled by %s in %s",
			name,
			time.Since(start),
		)
	})
}
