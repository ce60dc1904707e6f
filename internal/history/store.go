// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite journal of completed runs so converted
// datasets can be traced back to their source file and operations.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/datapipe/pkg/types"
)

// defaultDBFile is used when the configuration names no journal path.
const defaultDBFile = "datapipe-history.db"

// Run is one journal entry: a successful conversion.
type Run struct {
	ID           int64     `json:"id" yaml:"id"`
	StartedAt    time.Time `json:"started_at" yaml:"started_at"`
	InputPath    string    `json:"input_path" yaml:"input_path"`
	InputFormat  string    `json:"input_format" yaml:"input_format"`
	OutputPath   string    `json:"output_path" yaml:"output_path"`
	OutputFormat string    `json:"output_format" yaml:"output_format"`
	Operations   []string  `json:"operations" yaml:"operations"`
	Records      int       `json:"records" yaml:"records"`
}

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the journal at cfg.Path, creating the schema if
// it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBFile
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		input_path TEXT NOT NULL,
		input_format TEXT NOT NULL,
		output_path TEXT NOT NULL,
		output_format TEXT NOT NULL,
		operations TEXT NOT NULL,
		records INTEGER NOT NULL
	)`)
	return err
}

// Append records one completed run.
func (s *Store) Append(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, input_path, input_format, output_path, output_format, operations, records)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339),
		run.InputPath, run.InputFormat,
		run.OutputPath, run.OutputFormat,
		strings.Join(run.Operations, ","),
		run.Records,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_path, input_format, output_path, output_format, operations, records
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, ops string
		if err := rows.Scan(&r.ID, &started, &r.InputPath, &r.InputFormat,
			&r.OutputPath, &r.OutputFormat, &ops, &r.Records); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = t
		}
		if ops != "" {
			r.Operations = strings.Split(ops, ",")
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}
	return runs, nil
}
