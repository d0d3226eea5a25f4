package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/harrison/prlint/internal/report"
)

// debounceDelay coalesces editor save bursts into one re-check.
const debounceDelay = 200 * time.Millisecond

// NewWatchCommand creates and returns the watch subcommand
func NewWatchCommand() *cobra.Command {
	opts := &checkOptions{noHistory: true}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run the lint rules whenever the document changes",
		Long: `Run the rules once, then watch the document and re-run on every
save. Watch runs are not recorded in the history database.
Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to .prlint.yaml (default: next to the document)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runWatch(ctx context.Context, docFile string, opts *checkOptions, out io.Writer) error {
	info, err := os.Stat(docFile)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", docFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("watch takes a single file, got directory %s", docFile)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	useColor := !opts.noColor && report.ColorEnabled(out)
	printer := report.NewPrinter(out, useColor)

	runOnce := func() {
		rep, err := checkOne(docFile, opts.configPath)
		if err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
			return
		}
		printer.PrintReport(rep)
		fmt.Fprintln(out)
	}

	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors that write via rename
	// replace the inode and a file-level watch would go stale.
	absFile, err := filepath.Abs(docFile)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", docFile, err)
	}
	if err := watcher.Add(filepath.Dir(absFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absFile), err)
	}

	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n\n", docFile)

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			fmt.Fprintln(out, "Stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			eventAbs, err := filepath.Abs(event.Name)
			if err != nil || eventAbs != absFile {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				fmt.Fprintf(out, "Change detected: %s\n", filepath.Base(event.Name))
				runOnce()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "✗ watch error: %v\n", err)
		}
	}
}
