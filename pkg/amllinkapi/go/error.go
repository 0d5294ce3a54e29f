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
	"errors"
	"fmt"
	"net/http"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
)

var errMinValueConstraint = errors.New(errMsgMinValueConstraint)

// ParsingError indicates that an error has occurred when parsing request parameters
type ParsingError struct {
	Param string
	Err   error
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func (e *ParsingError) Error() string {
	if e.Param == "" {
		return e.Err.Error()
	}

	return e.Param + ": " + e.Err.Error()
}

// RequiredError indicates that an error has occurred when parsing request parameters
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("required field '%s' is zero value.", e.Field)
}

// ErrorHandler defines the required method for handling error. You may implement it and inject this into a controller if
// you would like errors to be handled differently from the DefaultErrorHandler
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// DefaultErrorHandler defines the default logic on how to handle errors from the controller. Any errors from parsing
// request params will return a StatusBadRequest, missing required fields a StatusUnprocessableEntity. Service errors
// are mapped by their status prefix and carry the stable error code.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error, _ *ImplResponse) {
	var parsingErr *ParsingError
	if ok := errors.As(err, &parsingErr); ok {
		status, body := common.NewErrorResponse(common.NewErrBadRequest(err.Error()), "")
		_ = EncodeJSONResponse(body, &status, w)
		return
	}

	var requiredErr *RequiredError
	if ok := errors.As(err, &requiredErr); ok {
		status, body := common.NewErrorResponse(common.NewErrUnprocessableEntity(err.Error()), "")
		_ = EncodeJSONResponse(body, &status, w)
		return
	}

	status, body := common.NewErrorResponse(err, amlerrors.CodeOf(err))
	_ = EncodeJSONResponse(body, &status, w)
}
