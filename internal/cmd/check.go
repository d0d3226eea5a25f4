package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/prlint/internal/config"
	"github.com/harrison/prlint/internal/document"
	"github.com/harrison/prlint/internal/history"
	"github.com/harrison/prlint/internal/report"
	"github.com/harrison/prlint/internal/runner"
)

type checkOptions struct {
	configPath string
	format     string
	dbPath     string
	noColor    bool
	noHistory  bool
}

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file-or-directory>...",
		Short: "Run the lint rules against one or more documents",
		Long: `Load each document, run every enabled rule against it, and print
per-rule pass/fail plus a summary.

Supports multiple input modes:
  - Single file: prlint check README.md
  - Directory: prlint check docs/ (scans for *.md and *.markdown)
  - Multiple files: prlint check README.md CHANGELOG.md

Configuration is read from --config, or from .prlint.yaml next to each
document, falling back to the built-in defaults.

Exit code: 0 if all error-severity rules pass, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args, opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to .prlint.yaml (default: next to each document)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&opts.dbPath, "db", history.DefaultDBPath, "path to the history database")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record this run in the history database")

	return cmd
}

func runCheck(ctx context.Context, paths []string, opts *checkOptions, out io.Writer) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q, want text or json", opts.format)
	}

	docFiles, err := collectDocumentFiles(paths)
	if err != nil {
		return err
	}

	var store *history.Store
	if !opts.noHistory {
		store, err = history.NewStore(opts.dbPath)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
	}

	useColor := !opts.noColor && opts.format == "text" && report.ColorEnabled(out)
	printer := report.NewPrinter(out, useColor)

	var reports []*runner.Report
	var runErrors []string

	for _, docFile := range docFiles {
		rep, err := checkOne(docFile, opts.configPath)
		if err != nil {
			runErrors = append(runErrors, err.Error())
			continue
		}
		reports = append(reports, rep)

		if opts.format == "text" {
			printer.PrintReport(rep)
			fmt.Fprintln(out)
		}

		if store != nil {
			if _, err := store.RecordRun(ctx, rep); err != nil {
				return fmt.Errorf("failed to record run: %w", err)
			}
		}
	}

	if opts.format == "json" {
		if err := report.WriteJSON(out, reports); err != nil {
			return err
		}
	} else if len(reports) > 1 {
		report.PrintSummary(out, reports)
	}

	errorFindings := 0
	for _, rep := range reports {
		errorFindings += rep.ErrorCount()
	}

	if len(runErrors) > 0 {
		for _, msg := range runErrors {
			fmt.Fprintf(out, "✗ %s\n", msg)
		}
		return fmt.Errorf("check aborted: %d document(s) could not be processed", len(runErrors))
	}
	if errorFindings > 0 {
		return fmt.Errorf("check failed with %d error finding(s)", errorFindings)
	}
	return nil
}

// checkOne loads the config and document for one file and runs the rules.
func checkOne(docFile, configPath string) (*runner.Report, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigForDocument(docFile)
	}
	if err != nil {
		return nil, err
	}

	doc, err := document.Load(docFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", docFile, err)
	}

	return runner.New(cfg).Check(doc), nil
}

// collectDocumentFiles expands the given paths into a deduplicated list of
// document files. Directories are scanned for markdown files; explicitly
// named files are accepted regardless of extension.
func collectDocumentFiles(paths []string) ([]string, error) {
	var docFiles []string
	seen := make(map[string]bool)

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}
		if !seen[abs] {
			docFiles = append(docFiles, abs)
			seen[abs] = true
		}
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			if err := add(path); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if fileInfo.IsDir() {
				return nil
			}
			if isMarkdownFile(filepath.Base(filePath)) {
				return add(filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
		}
	}

	if len(docFiles) == 0 {
		return nil, fmt.Errorf("no markdown documents found")
	}
	return docFiles, nil
}

// isMarkdownFile checks if a filename has a markdown extension
func isMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}
