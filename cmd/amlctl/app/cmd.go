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

// Package app holds the amlctl commands.
package app

import (
	"fmt"
	"io"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/caex"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-amllink/internal/loader"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options are shared by all sub commands.
type Options struct {
	fs afero.Fs
}

// New creates the root command. Files are read from and written to fs, the
// OS file system if none is given.
func New(fss ...afero.Fs) *cobra.Command {
	opts := &Options{fs: afero.NewOsFs()}
	if len(fss) > 0 && fss[0] != nil {
		opts.fs = fss[0]
	}

	maincmd := &cobra.Command{
		Use:   "amlctl <cmd> <args>",
		Short: "inspect AutomationML documents and generate AML components",
		Long: `
This command browses CAEX documents (bare .aml or .amlx containers) and
generates AML components from Interface_Connectors submodels.
`,
		SilenceUsage: true,
	}

	maincmd.AddCommand(NewPaths(opts))
	maincmd.AddCommand(NewResolve(opts))
	maincmd.AddCommand(NewInitConnectors(opts))
	maincmd.AddCommand(NewGenerate(opts))
	return maincmd
}

// writeOutput writes data to file on the options file system, or to out if
// file is empty.
func (o *Options) writeOutput(out io.Writer, file string, data []byte) error {
	if file == "" {
		_, err := out.Write(data)
		return err
	}
	if err := afero.WriteFile(o.fs, file, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// readSubmodel reads a submodel document or an environment holding exactly
// one submodel.
func (o *Options) readSubmodel(file string) (*model.Submodel, error) {
	data, err := afero.ReadFile(o.fs, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	env, err := model.UnmarshalEnvironment(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	if len(env.Submodels) != 1 {
		return nil, fmt.Errorf("%s: expected one submodel, found %d", file, len(env.Submodels))
	}
	return env.Submodels[0], nil
}

// loadDocument loads a CAEX document from file, or from in if file is "-".
func (o *Options) loadDocument(in io.Reader, file string) (*caex.Document, error) {
	if file == "-" {
		return loader.LoadReader(in)
	}
	return loader.LoadFile(o.fs, file)
}
