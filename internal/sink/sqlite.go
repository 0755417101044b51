package sink

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/textsieve/textsieve/internal/model"
)

// SQLiteStore persists reports into a SQLite database so runs can be
// queried and compared after the fact.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database with WAL mode enabled
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	source TEXT,
	started_at TEXT NOT NULL,
	completed_at TEXT NOT NULL,
	total_processed INTEGER NOT NULL,
	valid_items INTEGER NOT NULL,
	duplicates_found INTEGER NOT NULL,
	items_with_pii INTEGER NOT NULL,
	output_items INTEGER NOT NULL,
	rejected_items INTEGER NOT NULL,
	skipped_no_text INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	run_id TEXT NOT NULL,
	item_id INTEGER NOT NULL,
	original_text TEXT NOT NULL,
	processed_text TEXT,
	is_valid INTEGER NOT NULL,
	is_duplicate INTEGER NOT NULL,
	duplicate_of INTEGER,
	has_pii INTEGER NOT NULL,
	enrichment TEXT,
	validation TEXT NOT NULL,
	PRIMARY KEY (run_id, item_id),
	FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_items_valid ON items(run_id, is_valid);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveReport stores the summary row and every output item in one
// transaction. Enrichment and validation sub-records are kept as JSON
// blobs; the flags used for querying get their own columns.
func (s *SQLiteStore) SaveReport(ctx context.Context, report *model.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sum := report.Summary
	_, err = tx.ExecContext(ctx, `
INSERT INTO runs (run_id, source, started_at, completed_at, total_processed,
	valid_items, duplicates_found, items_with_pii, output_items,
	rejected_items, skipped_no_text)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.RunID, sum.Source,
		sum.StartedAt.Format(time.RFC3339Nano), sum.CompletedAt.Format(time.RFC3339Nano),
		sum.TotalProcessed, sum.ValidItems, sum.DuplicatesFound,
		sum.ItemsWithPII, sum.OutputItems, sum.RejectedItems, sum.SkippedNoText)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", sum.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO items (run_id, item_id, original_text, processed_text, is_valid,
	is_duplicate, duplicate_of, has_pii, enrichment, validation)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare item insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range report.Items {
		var enrichment interface{}
		if item.Enrichment != nil {
			blob, err := json.Marshal(item.Enrichment)
			if err != nil {
				return fmt.Errorf("marshal enrichment for item %d: %w", item.ID, err)
			}
			enrichment = string(blob)
		}
		validation, err := json.Marshal(item.Validation)
		if err != nil {
			return fmt.Errorf("marshal validation for item %d: %w", item.ID, err)
		}

		var dupOf interface{}
		if item.Validation.DuplicateOf != nil {
			dupOf = *item.Validation.DuplicateOf
		}
		var processedText interface{}
		if item.ProcessedText != "" {
			processedText = item.ProcessedText
		}

		if _, err := stmt.ExecContext(ctx,
			sum.RunID, item.ID, item.OriginalText, processedText,
			boolInt(item.Validation.IsValid), boolInt(item.Validation.IsDuplicate),
			dupOf, boolInt(item.Validation.HasPII),
			enrichment, string(validation)); err != nil {
			return fmt.Errorf("insert item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetSummary reads back the summary of a stored run
func (s *SQLiteStore) GetSummary(ctx context.Context, runID string) (model.Summary, error) {
	var sum model.Summary
	var started, completed string
	err := s.db.QueryRowContext(ctx, `
SELECT run_id, source, started_at, completed_at, total_processed, valid_items,
	duplicates_found, items_with_pii, output_items, rejected_items, skipped_no_text
FROM runs WHERE run_id = ?`, runID).Scan(
		&sum.RunID, &sum.Source, &started, &completed,
		&sum.TotalProcessed, &sum.ValidItems, &sum.DuplicatesFound,
		&sum.ItemsWithPII, &sum.OutputItems, &sum.RejectedItems, &sum.SkippedNoText)
	if err != nil {
		return model.Summary{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	if sum.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return model.Summary{}, fmt.Errorf("parse started_at: %w", err)
	}
	if sum.CompletedAt, err = time.Parse(time.RFC3339Nano, completed); err != nil {
		return model.Summary{}, fmt.Errorf("parse completed_at: %w", err)
	}
	return sum, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
