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

// Package api implements the AutomationML Link HTTP service on top of the
// amllink, generator and persistence packages.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/amllink"
	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caexpath"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/generator"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/persistence"
	openapi "github.com/eclipse-basyx/basyx-go-amllink/pkg/amllinkapi/go"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// AmlLinkAPIAPIService is a service that implements the logic for the AmlLinkAPIAPIServicer
// Submodels are read from and written back to the SubmodelStore; AML files live in the file store.
type AmlLinkAPIAPIService struct {
	submodels  persistence.SubmodelStore
	files      filestore.Store
	config     common.AMLConfig
	templateFs afero.Fs
	locks      *submodelLocks
}

// NewAmlLinkAPIAPIService creates a default api service. templateFs is
// consulted only if config.TemplatePath is set.
func NewAmlLinkAPIAPIService(submodels persistence.SubmodelStore, files filestore.Store, config common.AMLConfig, templateFs afero.Fs) *AmlLinkAPIAPIService {
	if templateFs == nil {
		templateFs = afero.NewOsFs()
	}
	return &AmlLinkAPIAPIService{
		submodels:  submodels,
		files:      files,
		config:     config,
		templateFs: templateFs,
		locks:      newSubmodelLocks(),
	}
}

// PostSubmodel - Stores a new Submodel
func (s *AmlLinkAPIAPIService) PostSubmodel(ctx context.Context, body []byte) (openapi.ImplResponse, error) {
	sm, err := model.UnmarshalSubmodel(body)
	if err != nil {
		return openapi.Response(http.StatusBadRequest, nil), common.NewErrBadRequest("AMLLINK-POSTSM-JSON " + err.Error())
	}
	if sm.ID == "" {
		return openapi.Response(http.StatusBadRequest, nil), common.NewErrBadRequest("AMLLINK-POSTSM-NOID submodel id is required")
	}
	if err := s.submodels.CreateSubmodel(ctx, sm); err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusCreated, sm), nil
}

// GetAllSubmodels - Returns all Submodels
func (s *AmlLinkAPIAPIService) GetAllSubmodels(ctx context.Context) (openapi.ImplResponse, error) {
	submodels, err := s.submodels.GetSubmodels(ctx)
	if err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusOK, submodels), nil
}

// GetSubmodelByID - Returns a specific Submodel
func (s *AmlLinkAPIAPIService) GetSubmodelByID(ctx context.Context, submodelIdentifier string) (openapi.ImplResponse, error) {
	sm, err := s.submodel(ctx, submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusOK, sm), nil
}

// DeleteSubmodelByID - Deletes a Submodel and the AML document linked to it
func (s *AmlLinkAPIAPIService) DeleteSubmodelByID(ctx context.Context, submodelIdentifier string) (openapi.ImplResponse, error) {
	id, err := decodeID(submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	defer s.locks.lock(id)()

	sm, err := s.submodels.GetSubmodel(ctx, id)
	if err != nil {
		return failed(err)
	}
	if err := s.submodels.DeleteSubmodel(ctx, id); err != nil {
		return failed(err)
	}
	if marker := amllink.GetAmlFile(sm); marker != nil {
		if err := s.files.Delete(ctx, marker.Value); err != nil {
			logger.LogError("AMLLINK-DELETESM-FILE", err)
		}
	}
	return openapi.Response(http.StatusNoContent, nil), nil
}

// ImportAmlFile - Attaches an AML or AMLX document to a Submodel
func (s *AmlLinkAPIAPIService) ImportAmlFile(ctx context.Context, submodelIdentifier string, fileName string, data []byte) (openapi.ImplResponse, error) {
	id, err := decodeID(submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	defer s.locks.lock(id)()

	sm, err := s.submodels.GetSubmodel(ctx, id)
	if err != nil {
		return failed(err)
	}
	marker, err := amllink.ImportAmlFile(ctx, sm, fileName, data, s.files, s.config.FileDirectory)
	if err != nil {
		return failed(err)
	}
	if err := s.submodels.PutSubmodel(ctx, sm); err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusOK, marker), nil
}

// GetAmlFile - Downloads the AML document linked to a Submodel
func (s *AmlLinkAPIAPIService) GetAmlFile(ctx context.Context, submodelIdentifier string) (openapi.ImplResponse, error) {
	sm, err := s.submodel(ctx, submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	marker := amllink.GetAmlFile(sm)
	if marker == nil {
		return failed(missingAmlSource(sm))
	}
	data, err := s.files.Get(ctx, marker.Value)
	if err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusOK, openapi.FileDownload{
		Content:     data,
		ContentType: marker.ContentType,
		Filename:    path.Base(marker.Value),
	}), nil
}

// GetAmlPaths - Returns the paths of all nodes of the linked AML document
func (s *AmlLinkAPIAPIService) GetAmlPaths(ctx context.Context, submodelIdentifier string) (openapi.ImplResponse, error) {
	sm, err := s.submodel(ctx, submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	if !amllink.IsAmlSubmodel(sm) {
		return failed(missingAmlSource(sm))
	}
	doc, err := amllink.OpenLinkedDocument(ctx, sm, s.files)
	if err != nil {
		return failed(err)
	}
	paths := caexpath.AllPaths(doc)
	if paths == nil {
		paths = []string{}
	}
	return openapi.Response(http.StatusOK, paths), nil
}

// PublishAttribute - Publishes a CAEX attribute as Property into the Attributes index
func (s *AmlLinkAPIAPIService) PublishAttribute(ctx context.Context, submodelIdentifier string, req openapi.PublishRequest) (openapi.ImplResponse, error) {
	return s.publish(ctx, submodelIdentifier, req, amllink.PublishAttribute)
}

// PublishElement - Publishes a CAEX element as ReferenceElement into the Elements index
func (s *AmlLinkAPIAPIService) PublishElement(ctx context.Context, submodelIdentifier string, req openapi.PublishRequest) (openapi.ImplResponse, error) {
	return s.publish(ctx, submodelIdentifier, req, amllink.PublishElement)
}

// PublishStructureExisting - Links a CAEX element to an existing Entity
func (s *AmlLinkAPIAPIService) PublishStructureExisting(ctx context.Context, submodelIdentifier string, req openapi.PublishRequest) (openapi.ImplResponse, error) {
	entity, err := requiredKeys(req.EntityKeys, "entityKeys")
	if err != nil {
		return failed(err)
	}
	return s.publish(ctx, submodelIdentifier, req, func(node *caex.Node, sm *model.Submodel) (*amllink.Published, error) {
		return amllink.PublishStructureExisting(node, sm, entity)
	})
}

// PublishStructureNew - Creates an Entity for a CAEX element and links both
func (s *AmlLinkAPIAPIService) PublishStructureNew(ctx context.Context, submodelIdentifier string, req openapi.PublishRequest) (openapi.ImplResponse, error) {
	parent, err := common.ParseReferenceJSON(req.ParentKeys)
	if err != nil {
		return failed(err)
	}
	return s.publish(ctx, submodelIdentifier, req, func(node *caex.Node, sm *model.Submodel) (*amllink.Published, error) {
		if parent == nil {
			// no parent means the submodel itself
			return amllink.PublishStructureNew(node, sm, sm.Reference().Keys)
		}
		return amllink.PublishStructureNew(node, sm, parent.Keys)
	})
}

type publishOp func(node *caex.Node, sm *model.Submodel) (*amllink.Published, error)

// publish resolves req.Path in the linked document of the submodel, runs op
// and stores the changed submodel. Nothing is stored if op fails. Publishes
// on the same submodel run one at a time.
func (s *AmlLinkAPIAPIService) publish(ctx context.Context, submodelIdentifier string, req openapi.PublishRequest, op publishOp) (openapi.ImplResponse, error) {
	id, err := decodeID(submodelIdentifier)
	if err != nil {
		return failed(err)
	}
	defer s.locks.lock(id)()

	sm, err := s.submodels.GetSubmodel(ctx, id)
	if err != nil {
		return failed(err)
	}
	if !amllink.IsAmlSubmodel(sm) {
		return failed(missingAmlSource(sm))
	}
	doc, err := amllink.OpenLinkedDocument(ctx, sm, s.files)
	if err != nil {
		return failed(err)
	}
	node, err := caexpath.Resolve(doc, req.Path)
	if err != nil {
		return failed(err)
	}
	result, err := op(node, sm)
	if err != nil {
		return failed(err)
	}
	if err := s.submodels.PutSubmodel(ctx, sm); err != nil {
		return failed(err)
	}
	logger.LogInfo(fmt.Sprintf("published '%s' into submodel %s", req.Path, sm.ID))
	return openapi.Response(http.StatusCreated, result), nil
}

// InitInterfaceConnectors - Creates and stores an Interface_Connectors Submodel
func (s *AmlLinkAPIAPIService) InitInterfaceConnectors(ctx context.Context, req openapi.InitConnectorsRequest) (openapi.ImplResponse, error) {
	id := req.ID
	if id == "" {
		id = common.MintSubmodelID(s.config.HostName, s.config.TemplateIDSubmodel)
	}
	sm := generator.InitInterfaceConnectorsSubmodel(id, generator.ConnectorCounts{
		Pneumatic: req.Pneumatic,
		Electric:  req.Electric,
		Mechanic:  req.Mechanic,
	})
	if req.IdShort != "" {
		sm.IdShort = req.IdShort
	}
	if err := s.submodels.CreateSubmodel(ctx, sm); err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusCreated, sm), nil
}

// GenerateAml - Generates an AML component from an Interface_Connectors Submodel and stores it as new Submodel
func (s *AmlLinkAPIAPIService) GenerateAml(ctx context.Context, submodelIdentifier string, req openapi.GenerateRequest) (openapi.ImplResponse, error) {
	var (
		connectorsSubmodel *model.Submodel
		nameplate          *model.Submodel
		template           *caex.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		connectorsSubmodel, err = s.submodel(gctx, submodelIdentifier)
		return err
	})
	if req.NameplateSubmodelID != "" {
		g.Go(func() (err error) {
			nameplate, err = s.submodels.GetSubmodel(gctx, req.NameplateSubmodelID)
			return err
		})
	}
	g.Go(func() (err error) {
		template, err = generator.LoadTemplate(s.templateFs, s.config.TemplatePath)
		return err
	})
	if err := g.Wait(); err != nil {
		return failed(err)
	}

	connectors, err := generator.ConnectorsFromSubmodel(connectorsSubmodel)
	if err != nil {
		return failed(err)
	}
	libraryName, className := req.LibraryName, req.ClassName
	if nameplate != nil {
		defaultLibrary, defaultClass, _ := generator.NameplateDefaults(nameplate)
		if libraryName == "" {
			libraryName = defaultLibrary
		}
		if className == "" {
			className = defaultClass
		}
	}
	if libraryName == "" || className == "" {
		return failed(common.NewErrBadRequest("AMLLINK-GENERATE-NONAME libraryName and className are required without nameplate"))
	}

	submodelName := req.SubmodelName
	if submodelName == "" {
		submodelName = className
	}
	sm, err := generator.GenerateAndInclude(ctx, template, generator.IncludeRequest{
		Config: generator.Config{
			LibraryName:   libraryName,
			ClassName:     className,
			GlobalAssetID: req.GlobalAssetID,
			Connectors:    connectors,
		},
		SubmodelID:   common.MintSubmodelID(s.config.HostName, s.config.TemplateIDSubmodel),
		SubmodelName: submodelName,
		FileName:     req.FileName,
	}, s.files, s.config.FileDirectory)
	if err != nil {
		return failed(err)
	}
	if err := s.submodels.CreateSubmodel(ctx, sm); err != nil {
		return failed(err)
	}
	return openapi.Response(http.StatusCreated, sm), nil
}

// submodel loads the submodel addressed by the base64url encoded identifier.
func (s *AmlLinkAPIAPIService) submodel(ctx context.Context, submodelIdentifier string) (*model.Submodel, error) {
	id, err := decodeID(submodelIdentifier)
	if err != nil {
		return nil, err
	}
	return s.submodels.GetSubmodel(ctx, id)
}

func decodeID(submodelIdentifier string) (string, error) {
	id, err := common.DecodeString(submodelIdentifier)
	if err != nil {
		return "", common.NewErrBadRequest("AMLLINK-SMID-BASE64 submodel identifier is not base64url encoded")
	}
	return id, nil
}

func missingAmlSource(sm *model.Submodel) error {
	return fmt.Errorf("%w: submodel '%s'", amlerrors.ErrMissingAmlSource, sm.ID)
}

func requiredKeys(raw json.RawMessage, field string) ([]model.Key, error) {
	ref, err := common.ParseReferenceJSON(raw)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, common.NewErrBadRequest("AMLLINK-KEYS-MISSING " + field + " is required")
	}
	return ref.Keys, nil
}

func failed(err error) (openapi.ImplResponse, error) {
	return openapi.Response(common.StatusCodeOf(err), nil), err
}
