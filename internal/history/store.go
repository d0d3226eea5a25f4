// Package history persists check runs to a local SQLite database so past
// results can be inspected with `prlint history`.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/prlint/internal/filelock"
	"github.com/harrison/prlint/internal/runner"
)

//go:embed schema.sql
var schemaSQL string

// DefaultDBPath is the history database location relative to the working
// directory.
const DefaultDBPath = ".prlint/history.db"

// Run is one recorded check run.
type Run struct {
	ID           string
	DocumentPath string
	Passed       bool
	RulesPassed  int
	RulesFailed  int
	FindingCount int
	DurationMS   int64
	CreatedAt    time.Time
}

// RuleOutcome is the stored per-rule result of a run.
type RuleOutcome struct {
	RuleID       string
	Severity     string
	Passed       bool
	FindingCount int
}

// Store manages the SQLite history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath.
// Schema initialization is guarded by a file lock so concurrent CI jobs
// pointed at the same database do not race the first migration.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == ":memory:" {
		return openStore(dbPath)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	var store *Store
	lock := filelock.New(dbPath + ".lock")
	err := lock.WithLock(func() error {
		s, err := openStore(dbPath)
		if err != nil {
			return err
		}
		store = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func openStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout must come first so the later pragmas wait on locks
	// instead of failing.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun persists a report and returns the generated run ID.
func (s *Store) RecordRun(ctx context.Context, report *runner.Report) (string, error) {
	runID := uuid.NewString()
	passed, failed := report.Counts()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, document_path, passed, rules_passed, rules_failed, finding_count, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, report.Path, report.Passed(), passed, failed,
		report.FindingCount(), report.Duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, res := range report.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_rules (run_id, rule_id, severity, passed, finding_count)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, res.RuleID, string(res.Severity), res.Passed(), len(res.Findings))
		if err != nil {
			return "", fmt.Errorf("insert rule outcome for %s: %w", res.RuleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_path, passed, rules_passed, rules_failed, finding_count, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.DocumentPath, &r.Passed, &r.RulesPassed,
			&r.RulesFailed, &r.FindingCount, &r.DurationMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// RuleOutcomes returns the per-rule results stored for a run.
func (s *Store) RuleOutcomes(ctx context.Context, runID string) ([]RuleOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rule_id, severity, passed, finding_count FROM run_rules WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rule outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []RuleOutcome
	for rows.Next() {
		var o RuleOutcome
		if err := rows.Scan(&o.RuleID, &o.Severity, &o.Passed, &o.FindingCount); err != nil {
			return nil, fmt.Errorf("scan rule outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rule outcomes: %w", err)
	}
	return outcomes, nil
}
