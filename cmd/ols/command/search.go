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
	"github.com/spf13/cobra"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

func newSearchCmd(e *env) *cobra.Command {
	var (
		q           ols.SearchQuery
		byID, byIRI bool
	)
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Full-text search of term labels and synonyms.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Text = args[0]
			q.Ontology, _ = cmd.Flags().GetString(flagOntology)
			cli := e.client()
			var (
				terms []term.Term
				err   error
			)
			switch {
			case byID:
				terms, err = cli.SearchByID(cmd.Context(), q.Text, q.Ontology)
			case byIRI && q.Obsoletes:
				terms, err = cli.ExactTermsByIRIWithObsolete(cmd.Context(), q.Text)
			case byIRI:
				terms, err = cli.ExactTermsByIRI(cmd.Context(), q.Text)
			default:
				terms, err = cli.Search(cmd.Context(), q)
			}
			if err != nil {
				return err
			}
			return printTerms(cmd, terms)
		},
	}
	registerOntologyFlag(cmd, false)
	f := cmd.Flags()
	f.BoolVar(&q.Exact, "exact", false, "match whole labels or synonyms only")
	f.BoolVar(&q.Obsoletes, "obsoletes", false, "include obsolete terms")
	f.BoolVar(&q.Reverse, "reverse", false, "sort results by identifier, descending")
	f.StringSliceVar(&q.ChildrenOf, "children-of", nil, "only return descendants of these term IRIs")
	f.BoolVar(&byID, "id", false, "match the text against term identifiers instead")
	f.BoolVar(&byIRI, "iri", false, "find the terms with exactly this IRI in any ontology")
	return cmd
}
