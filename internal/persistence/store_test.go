package persistence

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-console/internal/config"
)

func tableCount(t *testing.T, store *Store, table string) int64 {
	t.Helper()
	var n int64
	err := store.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestOpenSeedsWhenNoSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")
	store, err := Open(config.StoreConfig{SnapshotPath: path, Seed: true}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.EqualValues(t, 6, tableCount(t, store, "departments"))
	require.EqualValues(t, 12, tableCount(t, store, "employees"))
	require.EqualValues(t, 10, tableCount(t, store, "products"))
	require.EqualValues(t, 6, tableCount(t, store, "orders"))
	require.EqualValues(t, 6, tableCount(t, store, "invoices"))

	// the seed is persisted immediately
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")

	store, err := Open(config.StoreConfig{SnapshotPath: path, Seed: true}, zap.NewNop())
	require.NoError(t, err)

	err = store.WithWriteLock(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO departments (name, manager, budget) VALUES (?, ?, ?)",
			"Research", "Tess", 100000)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(config.StoreConfig{SnapshotPath: path, Seed: true}, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	// prior state is loaded instead of re-seeding
	require.EqualValues(t, 7, tableCount(t, reopened, "departments"))

	var name string
	err = reopened.DB().QueryRow(
		"SELECT name FROM departments WHERE manager = ?", "Tess").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "Research", name)
}

func TestSnapshotPreservesIDSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")

	store, err := Open(config.StoreConfig{SnapshotPath: path, Seed: true}, zap.NewNop())
	require.NoError(t, err)

	// create id 7, then remove it; its id must never be reissued
	err = store.WithWriteLock(func(db *sql.DB) error {
		if _, err := db.Exec("INSERT INTO departments (name) VALUES ('Doomed')"); err != nil {
			return err
		}
		_, err := db.Exec("DELETE FROM departments WHERE name = 'Doomed'")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(config.StoreConfig{SnapshotPath: path, Seed: true}, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	// one sequence row per table, holding the pre-restart high-water mark
	var seqRows, seq int64
	err = reopened.DB().QueryRow(
		"SELECT COUNT(*), MAX(seq) FROM sqlite_sequence WHERE name = 'departments'").Scan(&seqRows, &seq)
	require.NoError(t, err)
	require.EqualValues(t, 1, seqRows)
	require.EqualValues(t, 7, seq)

	var newID int64
	err = reopened.WithWriteLock(func(db *sql.DB) error {
		res, err := db.Exec("INSERT INTO departments (name) VALUES ('Fresh')")
		if err != nil {
			return err
		}
		newID, err = res.LastInsertId()
		return err
	})
	require.NoError(t, err)
	require.EqualValues(t, 8, newID)
}

func TestEphemeralModeSkipsPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")
	store, err := Open(config.StoreConfig{SnapshotPath: path, Ephemeral: true, Seed: true}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	err = store.WithWriteLock(func(db *sql.DB) error {
		_, err := db.Exec("INSERT INTO departments (name) VALUES ('Transient')")
		return err
	})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestOpenWithoutSeed(t *testing.T) {
	store, err := Open(config.StoreConfig{Ephemeral: true}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.EqualValues(t, 0, tableCount(t, store, "departments"))
	require.EqualValues(t, 0, tableCount(t, store, "orders"))
}
