package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "ols %s built %s\n", Version, BuildDate)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "ols snapshot")
			}
			return nil
		},
	}
}
