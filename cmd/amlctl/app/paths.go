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
	"fmt"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/caexpath"
	"github.com/spf13/cobra"
)

// NewPaths lists every node path of a document.
func NewPaths(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <file|->",
		Short: "list the paths of all nodes of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.loadDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			for _, p := range caexpath.AllPaths(doc) {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

// NewResolve prints the node a path addresses.
func NewResolve(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file|-> <path>",
		Short: "show the node addressed by a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.loadDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			n, err := caexpath.Resolve(doc, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind:     %s\n", n.Kind)
			fmt.Fprintf(out, "name:     %s\n", n.Name)
			if n.ID != "" {
				fmt.Fprintf(out, "id:       %s\n", n.ID)
			}
			if n.Value != "" {
				fmt.Fprintf(out, "value:    %s\n", n.Value)
			}
			fmt.Fprintf(out, "fragment: %s\n", caexpath.FragmentOf(n))
			return nil
		},
	}
}
