// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/ols/export"
	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

const (
	flagNotation  = "notation"
	flagDistance  = "distance"
	flagDirection = "direction"
)

func registerIDFlags(cmd *cobra.Command) {
	registerOntologyFlag(cmd, true)
	cmd.Flags().String(flagNotation, "", `identifier notation ("obo", "short" or "iri"); guessed when empty`)
}

func identifier(cmd *cobra.Command, arg string) (term.Identifier, error) {
	n, _ := cmd.Flags().GetString(flagNotation)
	if n == "" {
		return term.Guess(arg), nil
	}
	notation, err := term.ParseNotation(n)
	if err != nil {
		return term.Identifier{}, err
	}
	return term.Identifier{Value: arg, Notation: notation}, nil
}

func resolve(cmd *cobra.Command, cli *ols.Client, arg string) (*term.Term, error) {
	id, err := identifier(cmd, arg)
	if err != nil {
		return nil, err
	}
	ontology, _ := cmd.Flags().GetString(flagOntology)
	t, err := cli.Term(cmd.Context(), id, ontology)
	if errors.Is(err, ols.ErrNotFound) {
		return nil, fmt.Errorf("term %s not found in %q", id, ontology)
	}
	return t, err
}

func newTermCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term <id>",
		Short: "Resolve a term by OBO id, short form or IRI.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolve(cmd, e.client(), args[0])
			if err != nil {
				return err
			}
			return printTerm(cmd, t)
		},
	}
	registerIDFlags(cmd)
	return cmd
}

func newHopCmd(e *env, dir ols.Direction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   dir.String() + " <id>",
		Short: "List the " + dir.String() + " of a term up to a number of hops.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			distance, _ := cmd.Flags().GetInt(flagDistance)
			cli := e.client()
			t, err := resolve(cmd, cli, args[0])
			if err != nil {
				return err
			}
			terms, err := cli.Expand(cmd.Context(), t, dir, distance)
			if err != nil {
				return err
			}
			return printTerms(cmd, terms)
		},
	}
	registerIDFlags(cmd)
	cmd.Flags().IntP(flagDistance, "d", 1, "number of hops to follow")
	return cmd
}

func newMetadataCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata <id>",
		Short: "Show the synonyms, definition, comment and cross references of a term.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identifier(cmd, args[0])
			if err != nil {
				return err
			}
			ontology, _ := cmd.Flags().GetString(flagOntology)
			cli := e.client()
			md, err := cli.Metadata(cmd.Context(), id, ontology)
			if err != nil {
				return err
			}
			xrefs, err := cli.Xrefs(cmd.Context(), id, ontology)
			if err != nil {
				return err
			}
			obsolete, err := cli.IsObsolete(cmd.Context(), id, ontology)
			if err != nil {
				return err
			}
			asJSON, err := outputJSON(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					ols.Metadata
					XRefs    map[string]string `json:"xrefs,omitempty"`
					Obsolete bool              `json:"obsolete"`
				}{md, xrefs, obsolete})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "definition: %s\n", md.Definition)
			fmt.Fprintf(w, "comment:    %s\n", md.Comment)
			fmt.Fprintf(w, "obsolete:   %s\n", strconv.FormatBool(obsolete))
			for name, typ := range md.Synonyms {
				fmt.Fprintf(w, "synonym:    %s (%s)\n", name, typ)
			}
			for k, v := range xrefs {
				fmt.Fprintf(w, "xref:       %s %s\n", k, v)
			}
			return nil
		},
	}
	registerIDFlags(cmd)
	return cmd
}

func newExportCmd(e *env) *cobra.Command {
	var out, format, graph, direction string
	var distance int
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export the hierarchy around a term as RDF quads.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ols.ParseDirection(direction)
			if err != nil {
				return err
			}
			cli := e.client()
			t, err := resolve(cmd, cli, args[0])
			if err != nil {
				return err
			}
			edges, err := cli.Edges(cmd.Context(), t, dir, distance)
			if err != nil {
				return err
			}
			quads := export.Quads(edges, export.Options{Direction: dir, Graph: graph})
			if out == "" {
				if format == "" {
					format = "nquads"
				}
				_, err = export.Write(cmd.OutOrStdout(), format, quads)
				return err
			}
			n, err := export.WriteFile(out, format, quads)
			if err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d quads were written\n", n)
			}
			return nil
		},
	}
	registerIDFlags(cmd)
	cmd.Flags().StringVar(&direction, flagDirection, ols.Children.String(), `hierarchy direction ("children" or "parents")`)
	cmd.Flags().IntVarP(&distance, flagDistance, "d", 1, "number of hops to follow")
	cmd.Flags().StringVar(&out, "out", "", `output file (".gz" supported, "-" for stdout); the command output is used when empty`)
	cmd.Flags().StringVar(&format, "format", "", "quad format; detected from the file extension when empty")
	cmd.Flags().StringVar(&graph, "graph", "", "graph IRI to label the quads with")
	return cmd
}
