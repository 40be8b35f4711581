package command

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/ols/term"
)

func outputJSON(cmd *cobra.Command) (bool, error) {
	out, _ := cmd.Flags().GetString(flagOutput)
	switch out {
	case "", "text":
		return false, nil
	case "json":
		return true, nil
	}
	return false, fmt.Errorf("unknown output format: %q", out)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func termLine(t *term.Term) string {
	s := t.GlobalID().Value + "\t" + t.Label + "\t" + t.IRI
	if t.IsObsolete() {
		s += "\tobsolete"
	}
	return s
}

func printTerms(cmd *cobra.Command, terms []term.Term) error {
	asJSON, err := outputJSON(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		if terms == nil {
			terms = []term.Term{}
		}
		return writeJSON(cmd.OutOrStdout(), terms)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i := range terms {
		fmt.Fprintln(tw, termLine(&terms[i]))
	}
	return tw.Flush()
}

func printTerm(cmd *cobra.Command, t *term.Term) error {
	asJSON, err := outputJSON(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), t)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "id:          %s\n", t.GlobalID())
	fmt.Fprintf(w, "label:       %s\n", t.Label)
	fmt.Fprintf(w, "iri:         %s\n", t.IRI)
	fmt.Fprintf(w, "ontology:    %s\n", t.OntologyName)
	for _, d := range t.Description {
		fmt.Fprintf(w, "description: %s\n", d)
	}
	for _, s := range t.Synonyms {
		fmt.Fprintf(w, "synonym:     %s\n", s)
	}
	if t.IsObsolete() {
		fmt.Fprintf(w, "obsolete:    replaced by %q\n", t.ReplacedBy)
	}
	return nil
}

func printOntologies(cmd *cobra.Command, list []term.Ontology) error {
	asJSON, err := outputJSON(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		if list == nil {
			list = []term.Ontology{}
		}
		return writeJSON(cmd.OutOrStdout(), list)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", o.ID, o.Config.Title, o.Status, o.NumberOfTerms)
	}
	return tw.Flush()
}
