package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

func newOntologiesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ontologies",
		Short: "List the ontologies loaded in the service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := e.client().Ontologies(cmd.Context())
			if err != nil {
				return err
			}
			return printOntologies(cmd, list)
		},
	}
}

func newOntologyCmd(e *env) *cobra.Command {
	var byConfig bool
	cmd := &cobra.Command{
		Use:   "ontology <id>",
		Short: "Show one ontology by short name, or by configured IRI with --config-id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := e.client()
			var (
				o   *term.Ontology
				err error
			)
			if byConfig {
				o, err = cli.OntologyByConfigID(cmd.Context(), args[0])
			} else {
				o, err = cli.Ontology(cmd.Context(), args[0])
			}
			if errors.Is(err, ols.ErrNotFound) {
				return fmt.Errorf("ontology %q not found", args[0])
			} else if err != nil {
				return err
			}
			return printOntologies(cmd, []term.Ontology{*o})
		},
	}
	cmd.Flags().BoolVar(&byConfig, "config-id", false, "look the ontology up by its configured id")
	return cmd
}

func newRootsCmd(e *env) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "roots <ontology>",
		Short: "List the root terms of an ontology, or all of its terms with --all.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := e.client()
			fetch := cli.RootTerms
			if all {
				fetch = cli.AllTerms
			}
			terms, err := fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTerms(cmd, terms)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every term instead of the roots")
	return cmd
}
