package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/report"
	"github.com/harrison/prlint/internal/runner"
)

// NewRulesCommand creates and returns the rules subcommand
func NewRulesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered lint rules",
		Long: `Print every registered rule with its ID, effective severity, and
description. With --config, disabled rules are omitted and severity
overrides are applied, showing the rule set a check would actually run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			report.PrintRules(cmd.OutOrStdout(), runner.New(cfg).Rules())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to .prlint.yaml")

	return cmd
}
