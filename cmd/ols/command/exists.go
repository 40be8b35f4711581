package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExistsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <accession>...",
		Short: "Check that OBO accessions exist in an ontology.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ontology, _ := cmd.Flags().GetString(flagOntology)
			c := e.cache(e.client())
			results := make(map[string]bool, len(args))
			for _, acc := range args {
				ok, err := c.Exists(cmd.Context(), acc, ontology)
				if err != nil {
					return err
				}
				results[acc] = ok
			}
			asJSON, err := outputJSON(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, acc := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", acc, results[acc])
			}
			return nil
		},
	}
	registerOntologyFlag(cmd, true)
	return cmd
}
