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
	"context"
	"net/http"
	"strings"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/go-chi/chi/v5"
)

// AmlLinkAPIAPIController binds http requests to an api service and writes the service results to the http response
type AmlLinkAPIAPIController struct {
	service      AmlLinkAPIAPIServicer
	errorHandler ErrorHandler
	contextPath  string
}

// AmlLinkAPIAPIOption for how the controller is set up.
type AmlLinkAPIAPIOption func(*AmlLinkAPIAPIController)

// WithAmlLinkAPIAPIErrorHandler inject ErrorHandler into controller
func WithAmlLinkAPIAPIErrorHandler(h ErrorHandler) AmlLinkAPIAPIOption {
	return func(c *AmlLinkAPIAPIController) {
		c.errorHandler = h
	}
}

// NewAmlLinkAPIAPIController creates a default api controller
func NewAmlLinkAPIAPIController(s AmlLinkAPIAPIServicer, contextPath string, opts ...AmlLinkAPIAPIOption) *AmlLinkAPIAPIController {
	controller := &AmlLinkAPIAPIController{
		service:      s,
		errorHandler: DefaultErrorHandler,
		contextPath:  strings.TrimSuffix(common.NormalizeBasePath(contextPath), "/"),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the AmlLinkAPIAPIController
func (c *AmlLinkAPIAPIController) Routes() Routes {
	return Routes{
		"GetAllSubmodels": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/submodels",
			c.GetAllSubmodels,
		},
		"PostSubmodel": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels",
			c.PostSubmodel,
		},
		"GetSubmodelByID": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/submodels/{submodelIdentifier}",
			c.GetSubmodelByID,
		},
		"DeleteSubmodelByID": Route{
			strings.ToUpper("Delete"),
			c.contextPath + "/submodels/{submodelIdentifier}",
			c.DeleteSubmodelByID,
		},
		"ImportAmlFile": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/import",
			c.ImportAmlFile,
		},
		"GetAmlFile": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/file",
			c.GetAmlFile,
		},
		"GetAmlPaths": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/paths",
			c.GetAmlPaths,
		},
		"PublishAttribute": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/attributes",
			c.PublishAttribute,
		},
		"PublishElement": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/elements",
			c.PublishElement,
		},
		"PublishStructureExisting": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/structure/existing",
			c.PublishStructureExisting,
		},
		"PublishStructureNew": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/structure/new",
			c.PublishStructureNew,
		},
		"InitInterfaceConnectors": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/connectors",
			c.InitInterfaceConnectors,
		},
		"GenerateAml": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/submodels/{submodelIdentifier}/aml/generate",
			c.GenerateAml,
		},
	}
}

// GetAllSubmodels - Returns all Submodels
func (c *AmlLinkAPIAPIController) GetAllSubmodels(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetAllSubmodels(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// PostSubmodel - Stores a new Submodel
func (c *AmlLinkAPIAPIController) PostSubmodel(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	result, err := c.service.PostSubmodel(r.Context(), body)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetSubmodelByID - Returns a specific Submodel
func (c *AmlLinkAPIAPIController) GetSubmodelByID(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	result, err := c.service.GetSubmodelByID(r.Context(), submodelIdentifierParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// DeleteSubmodelByID - Deletes a Submodel
func (c *AmlLinkAPIAPIController) DeleteSubmodelByID(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	result, err := c.service.DeleteSubmodelByID(r.Context(), submodelIdentifierParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// ImportAmlFile - Attaches an AML or AMLX document to a Submodel
func (c *AmlLinkAPIAPIController) ImportAmlFile(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	fileNameParam := r.URL.Query().Get("fileName")
	if fileNameParam == "" {
		c.errorHandler(w, r, &RequiredError{"fileName"}, nil)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		c.errorHandler(w, r, &ParsingError{Param: "body", Err: err}, nil)
		return
	}
	result, err := c.service.ImportAmlFile(r.Context(), submodelIdentifierParam, fileNameParam, body)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetAmlFile - Downloads the AML document linked to a Submodel
func (c *AmlLinkAPIAPIController) GetAmlFile(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	result, err := c.service.GetAmlFile(r.Context(), submodelIdentifierParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetAmlPaths - Returns the paths of all nodes of the linked AML document
func (c *AmlLinkAPIAPIController) GetAmlPaths(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	result, err := c.service.GetAmlPaths(r.Context(), submodelIdentifierParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// PublishAttribute - Publishes a CAEX attribute as Property into the Attributes index
func (c *AmlLinkAPIAPIController) PublishAttribute(w http.ResponseWriter, r *http.Request) {
	c.publish(w, r, c.service.PublishAttribute)
}

// PublishElement - Publishes a CAEX element as ReferenceElement into the Elements index
func (c *AmlLinkAPIAPIController) PublishElement(w http.ResponseWriter, r *http.Request) {
	c.publish(w, r, c.service.PublishElement)
}

// PublishStructureExisting - Links a CAEX element to an existing Entity
func (c *AmlLinkAPIAPIController) PublishStructureExisting(w http.ResponseWriter, r *http.Request) {
	c.publish(w, r, c.service.PublishStructureExisting)
}

// PublishStructureNew - Creates an Entity for a CAEX element and links both
func (c *AmlLinkAPIAPIController) PublishStructureNew(w http.ResponseWriter, r *http.Request) {
	c.publish(w, r, c.service.PublishStructureNew)
}

type publishFunc func(ctx context.Context, submodelIdentifier string, req PublishRequest) (ImplResponse, error)

func (c *AmlLinkAPIAPIController) publish(w http.ResponseWriter, r *http.Request, op publishFunc) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	var publishRequestParam PublishRequest
	if err := decodeJSONBody(w, r, &publishRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertPublishRequestRequired(publishRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := op(r.Context(), submodelIdentifierParam, publishRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// InitInterfaceConnectors - Creates and stores an Interface_Connectors Submodel
func (c *AmlLinkAPIAPIController) InitInterfaceConnectors(w http.ResponseWriter, r *http.Request) {
	var initConnectorsRequestParam InitConnectorsRequest
	if err := decodeJSONBody(w, r, &initConnectorsRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertInitConnectorsRequestConstraints(initConnectorsRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.InitInterfaceConnectors(r.Context(), initConnectorsRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// GenerateAml - Generates an AML component from an Interface_Connectors Submodel and stores it as new Submodel
func (c *AmlLinkAPIAPIController) GenerateAml(w http.ResponseWriter, r *http.Request) {
	submodelIdentifierParam := chi.URLParam(r, "submodelIdentifier")
	if submodelIdentifierParam == "" {
		c.errorHandler(w, r, &RequiredError{"submodelIdentifier"}, nil)
		return
	}
	var generateRequestParam GenerateRequest
	if err := decodeJSONBody(w, r, &generateRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	result, err := c.service.GenerateAml(r.Context(), submodelIdentifierParam, generateRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}
