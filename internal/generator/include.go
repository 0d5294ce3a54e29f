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

package generator

import (
	"context"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/amllink"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
)

// IncludeRequest describes the submodel GenerateAndInclude creates.
type IncludeRequest struct {
	Config       Config
	SubmodelID   string
	SubmodelName string
	// FileName of the generated document; "<ClassName>.aml" if empty.
	FileName string
}

// GenerateAndInclude generates a document from template, stores it and
// returns a new AutomationML submodel linked to it.
func GenerateAndInclude(ctx context.Context, template *caex.Document, req IncludeRequest, store filestore.Store, dir string) (*model.Submodel, error) {
	doc, err := Generate(template, req.Config)
	if err != nil {
		return nil, err
	}
	fileName := req.FileName
	if fileName == "" {
		fileName = req.Config.ClassName + ".aml"
	}
	doc.FileName = fileName

	data, err := caex.Encode(doc)
	if err != nil {
		return nil, err
	}
	sm := model.NewSubmodel(req.SubmodelID, req.SubmodelName)
	if _, err := amllink.ImportAmlFile(ctx, sm, fileName, data, store, dir); err != nil {
		return nil, err
	}
	return sm, nil
}
