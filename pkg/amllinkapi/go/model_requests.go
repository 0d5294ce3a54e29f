/*
 * BaSyx AutomationML Link Service
 *
 * Links AutomationML (CAEX 3.0) documents into Asset Administration Shell submodels: import, path browsing, publication of attributes, elements and structure, and generation of connector-based AML components.
 *
 * API version: V1.0.0
 * Contact: info@basyx.org
 */

package openapi

import "encoding/json"

// PublishRequest is the body of every publish operation.
//
// EntityKeys address the target entity of PublishStructureExisting,
// ParentKeys the parent of PublishStructureNew. Both accept a Reference
// object or a plain key array.
type PublishRequest struct {
	Path       string          `json:"path"`
	EntityKeys json.RawMessage `json:"entityKeys,omitempty"`
	ParentKeys json.RawMessage `json:"parentKeys,omitempty"`
}

// InitConnectorsRequest sizes a new Interface_Connectors submodel.
type InitConnectorsRequest struct {
	ID        string `json:"id,omitempty"`
	IdShort   string `json:"idShort,omitempty"` //nolint:revive
	Pneumatic int    `json:"pneumatic"`
	Electric  int    `json:"electric"`
	Mechanic  int    `json:"mechanic"`
}

// GenerateRequest configures the generation of an AML component from a
// connectors submodel. Empty names fall back to the nameplate submodel.
type GenerateRequest struct {
	LibraryName         string `json:"libraryName,omitempty"`
	ClassName           string `json:"className,omitempty"`
	GlobalAssetID       string `json:"globalAssetId,omitempty"`
	SubmodelName        string `json:"submodelName,omitempty"`
	NameplateSubmodelID string `json:"nameplateSubmodelId,omitempty"`
	FileName            string `json:"fileName,omitempty"`
}

// AssertPublishRequestRequired checks if the required fields are not zero-ed
func AssertPublishRequestRequired(obj PublishRequest) error {
	if obj.Path == "" {
		return &RequiredError{Field: "path"}
	}
	return nil
}

// AssertInitConnectorsRequestConstraints checks if the values respects the defined constraints
func AssertInitConnectorsRequestConstraints(obj InitConnectorsRequest) error {
	if obj.Pneumatic < 0 || obj.Electric < 0 || obj.Mechanic < 0 {
		return &ParsingError{Param: "counts", Err: errMinValueConstraint}
	}
	return nil
}
