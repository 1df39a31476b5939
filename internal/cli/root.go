// Package cli builds the sqlforge command-line tool: a cobra root
// command wrapping Load/Resolve from the config package and the
// format/transpile/optimize entry points from the root sqlforge
// package, with logrus for structured diagnostic output.
package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge/config"
)

type ctxKey int

const (
	ctxKeyConfig ctxKey = iota
	ctxKeyLogger
)

var (
	flagConfigPath string
	flagDialect    string
	flagVerbose    bool
)

// NewRootCmd builds the sqlforge root command and registers every
// subcommand.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sqlforge",
		Short:         "Parse, format, transpile, and optimize SQL across dialects",
		Long:          `sqlforge tokenizes, parses, formats, transpiles, and optimizes SQL text across ANSI, PostgreSQL, MySQL, SQLite, and SQL Server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if flagVerbose {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.Load(flagConfigPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if flagDialect != "" {
				cfg.Dialect = flagDialect
			}

			ctx := context.WithValue(cmd.Context(), ctxKeyConfig, cfg)
			ctx = context.WithValue(ctx, ctxKeyLogger, log)
			cmd.SetContext(ctx)

			log.WithField("dialect", cfg.Dialect).Debug("resolved configuration")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a sqlforge config file")
	root.PersistentFlags().StringVar(&flagDialect, "dialect", "", "dialect name, overriding the config file (ANSI, POSTGRES, MYSQL, SQLITE, SQLSERVER)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFormatCmd(),
		newTranspileCmd(),
		newOptimizeCmd(),
		newDialectsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command against os.Args and returns any error
// it produced; it does not log the error itself.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		return err
	}
	return nil
}

// getConfig retrieves the *config.Config stashed by PersistentPreRunE.
func getConfig(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(ctxKeyConfig).(*config.Config)
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

// getLogger retrieves the *logrus.Logger stashed by PersistentPreRunE.
func getLogger(cmd *cobra.Command) *logrus.Logger {
	log, _ := cmd.Context().Value(ctxKeyLogger).(*logrus.Logger)
	if log == nil {
		log = logrus.New()
	}
	return log
}
