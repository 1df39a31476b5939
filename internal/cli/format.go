package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge"
)

func newFormatCmd() *cobra.Command {
	var optimize bool

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Parse and re-emit SQL under the configured dialect",
		Long: `Format reads SQL from a file (or stdin, if no file is given or it is "-"),
parses the first statement, and re-emits it under the configured dialect's
quoting and keyword conventions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			log := getLogger(cmd)

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			sql, err := readSQL(path)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			var out string
			if optimize {
				out, err = sqlforge.FormatWithOptimization(sql, cfg.Optimizer.Optimizer(), cfg.Dialect)
			} else {
				out, err = sqlforge.Format(sql, cfg.Dialect)
			}
			if err != nil {
				return err
			}

			log.WithField("dialect", cfg.Dialect).Debug("formatted statement")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&optimize, "optimize", false, "run the configured optimizer rules before re-emitting")
	return cmd
}
