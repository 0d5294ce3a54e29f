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
	"fmt"

	amlerrors "github.com/eclipse-basyx/basyx-go-amllink/internal/amllink/errors"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
)

const (
	IDShortInterfaceConnectors = "Interface_Connectors"
	IDShortConnectors          = "Connectors"
	IDShortConnectorType       = "ConnectorType"
	IDShortNameplate           = "Nameplate"
)

// Nameplate IRDIs
const (
	IRDIManufacturerName          = "0173-1#02-AAO677#002"
	IRDIManufacturerArticleNumber = "0173-1#02-AAO676#003"
	IRDIManufacturerOrderCode     = "0173-1#02-AAO227#002"
)

// ConnectorCounts sets how many connectors of each kind a new
// Interface_Connectors submodel gets.
type ConnectorCounts struct {
	Pneumatic int `json:"pneumatic"`
	Electric  int `json:"electric"`
	Mechanic  int `json:"mechanic"`
}

var connectorProperties = map[ConnectorKind][]string{
	KindPneumatic: {"Designation", IDShortConnectorType, "LogicalFunction", "DesignType"},
	KindElectric: {"Designation", IDShortConnectorType, "LogicalFunction", "NumberOfPins", "Coding",
		"RatedVoltage", "RatedCurrent", "DesignType", "PlugType"},
	KindMechanic: {"Designation", IDShortConnectorType, "DesignType"},
}

// InitInterfaceConnectorsSubmodel builds an Interface_Connectors submodel
// whose Connectors collection holds the requested connectors, pneumatic
// first, then electric, then mechanic, numbered from 01 per kind.
func InitInterfaceConnectorsSubmodel(id string, counts ConnectorCounts) *model.Submodel {
	sm := model.NewSubmodel(id, IDShortInterfaceConnectors)
	connectors := model.NewSubmodelElementCollection(IDShortConnectors)
	sm.AddSubmodelElement(connectors)

	for _, group := range []struct {
		kind  ConnectorKind
		count int
	}{
		{KindPneumatic, counts.Pneumatic},
		{KindElectric, counts.Electric},
		{KindMechanic, counts.Mechanic},
	} {
		for i := 0; i < group.count; i++ {
			connector := model.NewSubmodelElementCollection(fmt.Sprintf("%sConnector%02d", group.kind, i+1))
			for _, idShort := range connectorProperties[group.kind] {
				value := ""
				if idShort == IDShortConnectorType {
					value = string(group.kind)
				}
				connector.Value = append(connector.Value, model.NewStringProperty(idShort, value))
			}
			connectors.Value = append(connectors.Value, connector)
		}
	}
	return sm
}

// ConnectorsFromSubmodel reads the connector collections of the Connectors
// collection of sm. The reference of a connector is the key values of its
// model reference joined with "/".
func ConnectorsFromSubmodel(sm *model.Submodel) ([]Connector, error) {
	connectors, ok := model.FindByIdShort(sm.SubmodelElements, IDShortConnectors).(*model.SubmodelElementCollection)
	if !ok || len(connectors.Value) == 0 {
		return nil, fmt.Errorf("%w: submodel '%s' has no '%s' collection with entries", amlerrors.ErrNoConnectors, sm.ID, IDShortConnectors)
	}

	var out []Connector
	for _, element := range connectors.Value {
		collection, ok := element.(*model.SubmodelElementCollection)
		if !ok {
			continue
		}
		ref, err := model.ReferenceTo(sm, collection)
		if err != nil {
			return nil, err
		}
		var kind string
		if t := model.FindByIdShort(collection.Value, IDShortConnectorType); t != nil {
			kind = model.ValueAsText(t)
		}
		out = append(out, Connector{
			Name:      collection.IdShort,
			Kind:      ConnectorKind(kind),
			Reference: ref.JoinValues("/"),
		})
	}
	return out, nil
}

// NameplateDefaults proposes library and class names from a Nameplate
// submodel: "<ManufacturerName>_<ArticleNumber>" and
// "<ArticleNumber>_<OrderCode>". A name is empty when either of its parts is
// missing; nameplate may be nil.
func NameplateDefaults(nameplate *model.Submodel) (libraryName string, className string, articleNumber string) {
	name := nameplateValue(nameplate, IRDIManufacturerName)
	articleNumber = nameplateValue(nameplate, IRDIManufacturerArticleNumber)
	orderCode := nameplateValue(nameplate, IRDIManufacturerOrderCode)
	return joinParts(name, articleNumber), joinParts(articleNumber, orderCode), articleNumber
}

func joinParts(first string, second string) string {
	if first == "" || second == "" {
		return ""
	}
	return first + "_" + second
}

// nameplateValue returns the value of the first top-level element whose
// semantic id has irdi as GlobalReference key, falling back to a
// ConceptDescription key.
func nameplateValue(nameplate *model.Submodel, irdi string) string {
	if nameplate == nil {
		return ""
	}
	for _, keyType := range []model.KeyTypes{model.KEYTYPES_GLOBAL_REFERENCE, model.KEYTYPES_CONCEPT_DESCRIPTION} {
		for _, e := range nameplate.SubmodelElements {
			if e.GetSemanticID().HasKey(keyType, irdi) {
				return model.ValueAsText(e)
			}
		}
	}
	return ""
}
