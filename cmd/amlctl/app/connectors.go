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

package app

import (
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/generator"
	"github.com/spf13/cobra"
)

// InitConnectors holds the flags of init-connectors.
type InitConnectors struct {
	mainopts *Options
	id       string
	hostName string
	counts   generator.ConnectorCounts
	output   string
	env      bool
}

// NewInitConnectors writes a fresh Interface_Connectors submodel.
func NewInitConnectors(opts *Options) *cobra.Command {
	c := &InitConnectors{mainopts: opts}
	cmd := &cobra.Command{
		Use:   "init-connectors <options>",
		Short: "create an Interface_Connectors submodel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sm := generator.InitInterfaceConnectorsSubmodel(c.submodelID(), c.counts)
			data, err := c.marshal(sm)
			if err != nil {
				return err
			}
			return c.mainopts.writeOutput(cmd.OutOrStdout(), c.output, data)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&c.counts.Pneumatic, "pneumatic", 0, "number of pneumatic connectors")
	flags.IntVar(&c.counts.Electric, "electric", 0, "number of electric connectors")
	flags.IntVar(&c.counts.Mechanic, "mechanic", 0, "number of mechanic connectors")
	flags.StringVar(&c.id, "id", "", "submodel id (minted if empty)")
	flags.StringVar(&c.hostName, "host", common.DefaultHostName, "host name used to mint the submodel id")
	flags.StringVarP(&c.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&c.env, "environment", false, "wrap the submodel into an environment document")
	return cmd
}

func (c *InitConnectors) submodelID() string {
	if c.id != "" {
		return c.id
	}
	return common.MintSubmodelID(c.hostName, common.DefaultTemplateIDSubmodel)
}

func (c *InitConnectors) marshal(sm *model.Submodel) ([]byte, error) {
	if c.env {
		return model.MarshalEnvironment(&model.Environment{Submodels: []*model.Submodel{sm}})
	}
	return model.MarshalSubmodel(sm)
}
