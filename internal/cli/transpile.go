package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge"
)

func newTranspileCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "transpile [file]",
		Short: "Re-emit SQL written in one dialect under another",
		Long: `Transpile reads SQL from a file (or stdin), parses it under --from's
conventions, and re-emits it under --to's conventions. --to defaults to the
configured dialect; --from defaults to ANSI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			log := getLogger(cmd)

			target := to
			if target == "" {
				target = cfg.Dialect
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			sql, err := readSQL(path)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			out, err := sqlforge.Transpile(sql, from, target)
			if err != nil {
				return err
			}

			log.WithFields(map[string]interface{}{"from": from, "to": target}).Debug("transpiled statement")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source dialect name (defaults to ANSI)")
	cmd.Flags().StringVar(&to, "to", "", "target dialect name (defaults to the configured dialect)")
	return cmd
}
