package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spec-kit/erp-console/internal/config"
)

// Store holds the entire database in memory for the process lifetime and
// rewrites it wholesale to a single snapshot file after each mutation. That
// coarse contract is deliberate; there is no finer-grained durability.
type Store struct {
	db     *sql.DB
	cfg    config.StoreConfig
	logger *zap.Logger

	// mu serializes every mutate + re-read + snapshot sequence. The original
	// design assumed a single-threaded host; Go serves requests concurrently,
	// so the assumption becomes an explicit lock with the same observable
	// semantics (no insert can interleave between a write and its re-read).
	mu sync.Mutex
}

// Open creates the in-memory database, applies the schema, and then either
// loads a prior snapshot from disk or seeds the fixed sample rows and
// persists them immediately.
func Open(cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	// A memory database exists per connection; a second connection would see
	// an empty schema. One connection also serializes statements.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, cfg: cfg, logger: logger}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if !cfg.Ephemeral {
		if _, err := os.Stat(cfg.SnapshotPath); err == nil {
			if err := s.loadSnapshot(cfg.SnapshotPath); err != nil {
				db.Close()
				return nil, fmt.Errorf("load snapshot %s: %w", cfg.SnapshotPath, err)
			}
			logger.Info("snapshot loaded", zap.String("path", cfg.SnapshotPath))
			return s, nil
		}
	}

	if cfg.Seed {
		if err := s.seed(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		if err := s.save(); err != nil {
			db.Close()
			return nil, fmt.Errorf("persist seed: %w", err)
		}
		logger.Info("database seeded")
	}

	return s, nil
}

// DB exposes the underlying handle for read queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithWriteLock runs fn under the store's write lock and, when fn succeeds,
// rewrites the snapshot file before releasing it. fn sees the only writer;
// last_insert_rowid and re-reads cannot interleave with other mutations.
func (s *Store) WithWriteLock(fn func(db *sql.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.db); err != nil {
		return err
	}
	return s.save()
}

// Ping verifies the database handle is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
