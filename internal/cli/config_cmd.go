package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brindlecode/sqlforge/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or generate sqlforge configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print a starter config file with every default value spelled out",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Example(config.Default())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config (defaults + file + environment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			out, err := config.Example(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
