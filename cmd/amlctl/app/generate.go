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
	"bytes"
	"errors"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/generator"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/loader"
	"github.com/spf13/cobra"
)

// Generate holds the flags of generate.
type Generate struct {
	mainopts   *Options
	connectors string
	nameplate  string
	template   string
	config     generator.Config
	amlx       bool
	output     string
}

// NewGenerate builds an AML component from an Interface_Connectors submodel.
func NewGenerate(opts *Options) *cobra.Command {
	c := &Generate{mainopts: opts}
	cmd := &cobra.Command{
		Use:   "generate --connectors <file> <options>",
		Short: "generate an AML component from a connectors submodel",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		data, err := c.Run()
		if err != nil {
			return err
		}
		return c.mainopts.writeOutput(cmd.OutOrStdout(), c.output, data)
	}
	flags := cmd.Flags()
	flags.StringVar(&c.connectors, "connectors", "", "Interface_Connectors submodel (JSON)")
	flags.StringVar(&c.nameplate, "nameplate", "", "Nameplate submodel (JSON) proposing library and class names")
	flags.StringVar(&c.template, "template", "", "template document (built-in if empty)")
	flags.StringVar(&c.config.LibraryName, "library", "", "name of the generated system unit class library")
	flags.StringVar(&c.config.ClassName, "class", "", "name of the generated system unit class")
	flags.StringVar(&c.config.GlobalAssetID, "asset-id", "", "global asset id of the component")
	flags.BoolVar(&c.amlx, "amlx", false, "write an AMLX container instead of a bare document")
	flags.StringVarP(&c.output, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("connectors")
	return cmd
}

// Run generates the document and returns its serialized form.
func (c *Generate) Run() ([]byte, error) {
	connectorsSubmodel, err := c.mainopts.readSubmodel(c.connectors)
	if err != nil {
		return nil, err
	}
	cfg := c.config
	cfg.Connectors, err = generator.ConnectorsFromSubmodel(connectorsSubmodel)
	if err != nil {
		return nil, err
	}
	if c.nameplate != "" {
		nameplate, err := c.mainopts.readSubmodel(c.nameplate)
		if err != nil {
			return nil, err
		}
		libraryName, className, _ := generator.NameplateDefaults(nameplate)
		if cfg.LibraryName == "" {
			cfg.LibraryName = libraryName
		}
		if cfg.ClassName == "" {
			cfg.ClassName = className
		}
	}
	if cfg.LibraryName == "" || cfg.ClassName == "" {
		return nil, errors.New("--library and --class are required without --nameplate")
	}

	template, err := generator.LoadTemplate(c.mainopts.fs, c.template)
	if err != nil {
		return nil, err
	}
	doc, err := generator.Generate(template, cfg)
	if err != nil {
		return nil, err
	}
	entryName := cfg.ClassName + ".aml"
	doc.FileName = entryName

	if !c.amlx {
		return caex.Encode(doc)
	}
	var buf bytes.Buffer
	if err := loader.WriteContainer(&buf, doc, entryName); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
