// Package cmd wires the prlint CLI together.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for prlint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prlint",
		Short: "Lint PR-description markdown documents",
		Long: `Prlint runs a fixed set of independent checks against a markdown
document: required sections and their order, business-term mentions,
whitespace and encoding hygiene, placeholder and credential detection,
and basic markdown well-formedness.

Each check either holds or produces findings; the exit status is zero
only when every error-severity check passes.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewRulesCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewWatchCommand())

	return cmd
}
