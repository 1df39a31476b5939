package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags "-X .../internal/cli.version=..." at
// release build time; left as "dev" otherwise.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sqlforge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sqlforge %s\n", version)
		},
	}
}
