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
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/amllink"
	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/caexpath"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/filestore"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshTemplate(t *testing.T) *caex.Document {
	t.Helper()
	doc, err := LoadTemplate(nil, "")
	require.NoError(t, err)
	return doc
}

func connectorsOf(kind ConnectorKind, n int) []Connector {
	var out []Connector
	for i := 0; i < n; i++ {
		name := string(kind) + "Connector0" + string(rune('1'+i))
		out = append(out, Connector{Name: name, Kind: kind, Reference: "sm-1/Connectors/" + name})
	}
	return out
}

func collectionOf(t *testing.T, doc *caex.Document, lib string, class string) *caex.Node {
	t.Helper()
	n, err := caexpath.Resolve(doc, caexpath.Escape(lib)+"/"+caexpath.Escape(class)+">"+ConnectorCollectionName)
	require.NoError(t, err)
	return n
}

func TestGenerateConnectorCount(t *testing.T) {
	tests := []struct {
		name                         string
		electric, pneumatic, mechanic int
	}{
		{"none", 0, 0, 0},
		{"one each", 1, 1, 1},
		{"mixed", 3, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var all []Connector
			all = append(all, connectorsOf(KindElectric, tt.electric)...)
			all = append(all, connectorsOf(KindPneumatic, tt.pneumatic)...)
			all = append(all, connectorsOf(KindMechanic, tt.mechanic)...)

			doc, err := Generate(freshTemplate(t), Config{LibraryName: "Acme_4711", ClassName: "4711_X1", GlobalAssetID: "urn:asset:1", Connectors: all})
			require.NoError(t, err)

			collection := collectionOf(t, doc, "Acme_4711", "4711_X1")
			elements := collection.ChildrenOfKind(caex.KindInternalElement)
			require.Len(t, elements, tt.electric+tt.pneumatic+tt.mechanic)
			for i, element := range elements {
				assert.Equal(t, all[i].Name, element.Name)
				assert.NotEmpty(t, element.ID)
				interfaces := element.ChildrenOfKind(caex.KindExternalInterface)
				require.Len(t, interfaces, 1)
				assert.Equal(t, "AASXInternalConnector", interfaces[0].Name)
				assert.Equal(t, InternalConnectorPath, interfaces[0].RefBaseClassPath)
				assert.Equal(t, all[i].Reference, interfaces[0].Attribute(BackReferenceAttribute).Value)
				assert.Equal(t, []string{RoleClassPath(all[i].Kind)}, element.SupportedRoleClasses)
			}
		})
	}
}

func TestGenerateRenamesAndSetsAssetID(t *testing.T) {
	doc, err := Generate(freshTemplate(t), Config{LibraryName: "Acme", ClassName: "Valve", GlobalAssetID: "urn:asset:valve"})
	require.NoError(t, err)

	assert.Nil(t, doc.Root(caex.KindSystemUnitClassLib, TemplateLibraryName))
	class, err := caexpath.Resolve(doc, "Acme/Valve")
	require.NoError(t, err)
	assert.Equal(t, "urn:asset:valve", class.Attribute(GlobalAssetIDAttribute).Value)
}

func TestGenerateCopiesRoleAttributes(t *testing.T) {
	doc, err := Generate(freshTemplate(t), Config{LibraryName: "L", ClassName: "C", Connectors: connectorsOf(KindElectric, 1)})
	require.NoError(t, err)

	element := collectionOf(t, doc, "L", "C").InternalElement("ElectricConnector01")
	require.NotNil(t, element)
	assert.Len(t, element.ChildrenOfKind(caex.KindAttribute), 8)
	assert.Equal(t, "V", element.Attribute("RatedVoltage").Unit)

	role, err := caexpath.Resolve(doc, RoleClassPath(KindElectric))
	require.NoError(t, err)
	assert.NotSame(t, role.Attribute("RatedVoltage"), element.Attribute("RatedVoltage"))
	assert.Len(t, role.Children(), 8)
}

func TestGenerateCopiesRoleInterfacesWithFreshIDs(t *testing.T) {
	doc := freshTemplate(t)
	role, err := caexpath.Resolve(doc, RoleClassPath(KindMechanic))
	require.NoError(t, err)
	ei := caex.NewNode(caex.KindExternalInterface, "Flange")
	ei.ID = "fixed-id"
	_, err = role.Append(ei)
	require.NoError(t, err)

	doc, err = Generate(doc, Config{LibraryName: "L", ClassName: "C", Connectors: connectorsOf(KindMechanic, 2)})
	require.NoError(t, err)

	var ids []string
	for _, element := range collectionOf(t, doc, "L", "C").ChildrenOfKind(caex.KindInternalElement) {
		flange := element.ExternalInterface("Flange")
		require.NotNil(t, flange)
		assert.NotEqual(t, "fixed-id", flange.ID)
		ids = append(ids, flange.ID)
		assert.Len(t, element.ChildrenOfKind(caex.KindExternalInterface), 2)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestGenerateSkipsMissingRole(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	cfg := Config{LibraryName: "L", ClassName: "C", Connectors: []Connector{
		{Name: "Hydraulic01", Kind: "Hydraulic", Reference: "sm/Connectors/Hydraulic01"},
		{Name: "Electric01", Kind: KindElectric, Reference: "sm/Connectors/Electric01"},
	}}
	doc, err := Generate(freshTemplate(t), cfg)
	require.NoError(t, err)

	elements := collectionOf(t, doc, "L", "C").ChildrenOfKind(caex.KindInternalElement)
	require.Len(t, elements, 2)
	assert.Empty(t, elements[0].SupportedRoleClasses)
	assert.Empty(t, elements[0].ChildrenOfKind(caex.KindAttribute))
	assert.Equal(t, "sm/Connectors/Hydraulic01", elements[0].ExternalInterface("AASXInternalConnector").Attribute(BackReferenceAttribute).Value)
	assert.NotEmpty(t, elements[1].SupportedRoleClasses)
	assert.Contains(t, logs.String(), amlerrors.CodeRoleNotFound)
	assert.Contains(t, logs.String(), "Hydraulic01")
}

func TestGenerateMissingTemplateElements(t *testing.T) {
	tests := map[string]func(doc *caex.Document){
		"library": func(doc *caex.Document) { doc.SystemUnitClassLibs = nil },
		"class": func(doc *caex.Document) {
			doc.Root(caex.KindSystemUnitClassLib, TemplateLibraryName).Child(caex.KindSystemUnitClass, TemplateClassName).Name = "Other"
		},
		"interface": func(doc *caex.Document) { doc.InterfaceClassLibs = nil },
		"collection": func(doc *caex.Document) {
			doc.Root(caex.KindSystemUnitClassLib, TemplateLibraryName).Child(caex.KindSystemUnitClass, TemplateClassName).
				InternalElement(ConnectorCollectionName).Name = "Renamed"
		},
	}
	for name, breakIt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := freshTemplate(t)
			breakIt(doc)
			_, err := Generate(doc, Config{LibraryName: "L", ClassName: "C", Connectors: connectorsOf(KindElectric, 1)})
			assert.True(t, errors.Is(err, amlerrors.ErrTemplateElementMissing))
			assert.Nil(t, doc.Root(caex.KindSystemUnitClassLib, "L"))
		})
	}
}

func TestGeneratedDocumentRoundTrips(t *testing.T) {
	doc, err := Generate(freshTemplate(t), Config{LibraryName: "L", ClassName: "C", Connectors: connectorsOf(KindPneumatic, 2)})
	require.NoError(t, err)
	data, err := caex.Encode(doc)
	require.NoError(t, err)
	again, err := caex.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, caexpath.AllPaths(doc), caexpath.AllPaths(again))
}

func TestLoadTemplateFromFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/aml/template.aml", EmbeddedTemplate(), 0o644))
	doc, err := LoadTemplate(fs, "/etc/aml/template.aml")
	require.NoError(t, err)
	assert.NotNil(t, doc.Root(caex.KindSystemUnitClassLib, TemplateLibraryName))

	_, err = LoadTemplate(fs, "/etc/aml/missing.aml")
	assert.Error(t, err)

	first, second := freshTemplate(t), freshTemplate(t)
	assert.NotSame(t, first.SystemUnitClassLibs[0], second.SystemUnitClassLibs[0])
}

func TestInitInterfaceConnectorsSubmodel(t *testing.T) {
	sm := InitInterfaceConnectorsSubmodel("sm-1", ConnectorCounts{Pneumatic: 2, Electric: 1, Mechanic: 1})
	assert.Equal(t, IDShortInterfaceConnectors, sm.IdShort)

	collection, ok := model.FindByIdShort(sm.SubmodelElements, IDShortConnectors).(*model.SubmodelElementCollection)
	require.True(t, ok)
	var names []string
	for _, c := range collection.Value {
		names = append(names, c.GetIdShort())
	}
	assert.Equal(t, []string{"PneumaticConnector01", "PneumaticConnector02", "ElectricConnector01", "MechanicConnector01"}, names)
	assert.Len(t, model.ChildrenOf(collection.Value[0]), 4)
	assert.Len(t, model.ChildrenOf(collection.Value[2]), 9)
	assert.Len(t, model.ChildrenOf(collection.Value[3]), 3)
}

func TestConnectorsFromSubmodel(t *testing.T) {
	sm := InitInterfaceConnectorsSubmodel("sm-1", ConnectorCounts{Pneumatic: 1, Electric: 2})
	found, err := ConnectorsFromSubmodel(sm)
	require.NoError(t, err)
	assert.Equal(t, []Connector{
		{Name: "PneumaticConnector01", Kind: KindPneumatic, Reference: "sm-1/Connectors/PneumaticConnector01"},
		{Name: "ElectricConnector01", Kind: KindElectric, Reference: "sm-1/Connectors/ElectricConnector01"},
		{Name: "ElectricConnector02", Kind: KindElectric, Reference: "sm-1/Connectors/ElectricConnector02"},
	}, found)

	_, err = ConnectorsFromSubmodel(InitInterfaceConnectorsSubmodel("sm-2", ConnectorCounts{}))
	assert.True(t, errors.Is(err, amlerrors.ErrNoConnectors))
	_, err = ConnectorsFromSubmodel(model.NewSubmodel("sm-3", "Empty"))
	assert.True(t, errors.Is(err, amlerrors.ErrNoConnectors))
}

func TestNameplateDefaults(t *testing.T) {
	nameplate := model.NewSubmodel("np", IDShortNameplate)
	manufacturer := model.NewStringProperty("ManufacturerName", "Acme")
	manufacturer.SemanticID = model.NewGlobalReference(IRDIManufacturerName)
	article := model.NewStringProperty("ManufacturerArticleNumber", "4711")
	article.SemanticID = model.NewModelReference(model.Key{Type: model.KEYTYPES_CONCEPT_DESCRIPTION, Value: IRDIManufacturerArticleNumber})
	nameplate.AddSubmodelElement(manufacturer)
	nameplate.AddSubmodelElement(article)

	library, class, articleNumber := NameplateDefaults(nameplate)
	assert.Equal(t, "Acme_4711", library)
	assert.Empty(t, class)
	assert.Equal(t, "4711", articleNumber)

	order := model.NewStringProperty("ManufacturerOrderCode", "A-1")
	order.SemanticID = model.NewGlobalReference(IRDIManufacturerOrderCode)
	nameplate.AddSubmodelElement(order)
	_, class, _ = NameplateDefaults(nameplate)
	assert.Equal(t, "4711_A-1", class)

	library, class, articleNumber = NameplateDefaults(nil)
	assert.Empty(t, library)
	assert.Empty(t, class)
	assert.Empty(t, articleNumber)
}

func TestGenerateAndInclude(t *testing.T) {
	store := filestore.NewAferoStore(afero.NewMemMapFs())
	connectorsSM := InitInterfaceConnectorsSubmodel("sm-1", ConnectorCounts{Electric: 1, Mechanic: 1})
	found, err := ConnectorsFromSubmodel(connectorsSM)
	require.NoError(t, err)

	sm, err := GenerateAndInclude(context.Background(), freshTemplate(t), IncludeRequest{
		Config:       Config{LibraryName: "Acme_4711", ClassName: "4711_X", GlobalAssetID: "urn:asset:1", Connectors: found},
		SubmodelID:   "https://www.example.com/ids/sm/1",
		SubmodelName: "AutomationML",
		FileName:     "4711.aml",
	}, store, "")
	require.NoError(t, err)
	assert.Equal(t, "AutomationML", sm.IdShort)

	marker := amllink.GetAmlFile(sm)
	require.NotNil(t, marker)
	assert.Equal(t, "/aasx/files/"+common.EncodeString(sm.ID)+"/4711.aml", marker.Value)

	doc, err := amllink.OpenLinkedDocument(context.Background(), sm, store)
	require.NoError(t, err)
	connector, err := caexpath.Resolve(doc, "Acme_4711/4711_X>ConnectorCollection>MechanicConnector01:AASXInternalConnector.AAS_Ref")
	require.NoError(t, err)
	assert.Equal(t, "sm-1/Connectors/MechanicConnector01", connector.Value)
}
