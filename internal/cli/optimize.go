package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge"
)

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize [file]",
		Short: "Parse, run the configured optimizer rules, and re-emit SQL",
		Long: `Optimize reads SQL from a file (or stdin), parses the first statement,
runs it through the rule set enabled in the resolved config (the optimizer
section of the config file or SQLFORGE_OPTIMIZER_* environment overrides),
and re-emits the result.`,
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

			out, err := sqlforge.FormatWithOptimization(sql, cfg.Optimizer.Optimizer(), cfg.Dialect)
			if err != nil {
				return err
			}

			log.WithField("dialect", cfg.Dialect).Debug("optimized statement")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}
