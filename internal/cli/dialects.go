package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge"
)

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialect names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sqlforge.Dialects() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
