package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/recap/ent"
	"github.com/abhisek/recap/internal/srs"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ReviewRepo returns a ReviewRepo backed by this store.
func (s *Store) ReviewRepo() ReviewRepo {
	return &reviewRepo{client: s.client}
}

// AttemptRepo returns an AttemptRepo backed by this store.
func (s *Store) AttemptRepo() AttemptRepo {
	return &attemptRepo{client: s.client, seq: s.seq}
}

// RecordAttempt writes an item's updated schedule and the attempt event that
// produced it in a single transaction. On error nothing is persisted, so the
// caller can retry without double-applying the attempt.
//
// The sequence number is claimed before the transaction opens; a rollback
// leaves a gap in the log, which is harmless since only ordering matters.
func (s *Store) RecordAttempt(ctx context.Context, next srs.ReviewItem, attemptID string, outcome srs.AttemptOutcome) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return &PersistenceError{Op: "next sequence", Err: err}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return &PersistenceError{Op: "begin record attempt", Err: err}
	}
	if err := upsertReviewItem(ctx, tx.Client(), next); err != nil {
		return rollback(tx, err)
	}
	if err := appendAttemptEvent(ctx, tx.Client(), seqNum, attemptID, outcome); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "commit record attempt", Err: err}
	}
	return nil
}

// rollback aborts the transaction, folding a rollback failure into err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. RECAP_DB environment variable
// 2. $XDG_DATA_HOME/recap/recap.db
// 3. ~/.local/share/recap/recap.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("RECAP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "recap", "recap.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
