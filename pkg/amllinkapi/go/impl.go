/*
 * BaSyx AutomationML Link Service
 *
 * Links AutomationML (CAEX 3.0) documents into Asset Administration Shell submodels: import, path browsing, publication of attributes, elements and structure, and generation of connector-based AML components.
 *
 * API version: V1.0.0
 * Contact: info@basyx.org
 */

package openapi

// ImplResponse defines an implementation response with error code and the associated body
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response returns a ImplResponse with the given status code and body.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{
		Code: code,
		Body: body,
	}
}
