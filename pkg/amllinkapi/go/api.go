/*
 * BaSyx AutomationML Link Service
 *
 * Links AutomationML (CAEX 3.0) documents into Asset Administration Shell submodels: import, path browsing, publication of attributes, elements and structure, and generation of connector-based AML components.
 *
 * API version: V1.0.0
 * Contact: info@basyx.org
 */

// Package openapi AutomationML Link API
package openapi

import (
	"context"
	"net/http"
)

// AmlLinkAPIAPIRouter defines the required methods for binding the api requests to a responses for the AmlLinkAPIAPI
// The AmlLinkAPIAPIRouter implementation should parse necessary information from the http request,
// pass the data to a AmlLinkAPIAPIServicer to perform the required actions, then write the service results to the http response.
type AmlLinkAPIAPIRouter interface {
	GetAllSubmodels(http.ResponseWriter, *http.Request)
	PostSubmodel(http.ResponseWriter, *http.Request)
	GetSubmodelByID(http.ResponseWriter, *http.Request)
	DeleteSubmodelByID(http.ResponseWriter, *http.Request)
	ImportAmlFile(http.ResponseWriter, *http.Request)
	GetAmlFile(http.ResponseWriter, *http.Request)
	GetAmlPaths(http.ResponseWriter, *http.Request)
	PublishAttribute(http.ResponseWriter, *http.Request)
	PublishElement(http.ResponseWriter, *http.Request)
	PublishStructureExisting(http.ResponseWriter, *http.Request)
	PublishStructureNew(http.ResponseWriter, *http.Request)
	InitInterfaceConnectors(http.ResponseWriter, *http.Request)
	GenerateAml(http.ResponseWriter, *http.Request)
}

// AmlLinkAPIAPIServicer defines the api actions for the AmlLinkAPIAPI service
// This interface intended to stay up to date with the openapi yaml used to generate it,
// while the service implementation can be ignored with the .openapi-generator-ignore file
// and updated with the logic required for the API.
type AmlLinkAPIAPIServicer interface {
	GetAllSubmodels(context.Context) (ImplResponse, error)
	PostSubmodel(context.Context, []byte) (ImplResponse, error)
	GetSubmodelByID(context.Context, string) (ImplResponse, error)
	DeleteSubmodelByID(context.Context, string) (ImplResponse, error)
	ImportAmlFile(context.Context, string, string, []byte) (ImplResponse, error)
	GetAmlFile(context.Context, string) (ImplResponse, error)
	GetAmlPaths(context.Context, string) (ImplResponse, error)
	PublishAttribute(context.Context, string, PublishRequest) (ImplResponse, error)
	PublishElement(context.Context, string, PublishRequest) (ImplResponse, error)
	PublishStructureExisting(context.Context, string, PublishRequest) (ImplResponse, error)
	PublishStructureNew(context.Context, string, PublishRequest) (ImplResponse, error)
	InitInterfaceConnectors(context.Context, InitConnectorsRequest) (ImplResponse, error)
	GenerateAml(context.Context, string, GenerateRequest) (ImplResponse, error)
}
