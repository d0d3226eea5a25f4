package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harrison/prlint/internal/history"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent check runs",
		Long: `List the most recent check runs recorded in the history database,
newest first. Runs are recorded by ` + "`prlint check`" + ` unless
--no-history was given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"When", "Document", "Passed", "Failed", "Findings", "Status", "Run ID"})
			for _, run := range runs {
				status := "OK"
				if !run.Passed {
					status = "FAIL"
				}
				t.AppendRow(table.Row{
					run.CreatedAt.Local().Format(time.DateTime),
					run.DocumentPath,
					run.RulesPassed,
					run.RulesFailed,
					run.FindingCount,
					status,
					run.ID,
				})
			}
			t.Render()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&dbPath, "db", history.DefaultDBPath, "path to the history database")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")

	return cmd
}
