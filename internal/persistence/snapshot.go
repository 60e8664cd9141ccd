package persistence

import (
	"fmt"
	"os"

	"github.com/spec-kit/erp-console/internal/domain"
)

// save serializes the whole in-memory database and replaces the snapshot
// file. VACUUM INTO refuses to overwrite, so it writes a sibling temp file
// that is renamed over the target. Cost is O(total database size) per call;
// there is no incremental log. Callers hold s.mu.
func (s *Store) save() error {
	if s.cfg.Ephemeral {
		return nil
	}

	tmp := s.cfg.SnapshotPath + ".tmp"
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return err
	}
	if _, err := s.db.Exec("VACUUM INTO ?", tmp); err != nil {
		return fmt.Errorf("vacuum into %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.cfg.SnapshotPath)
}

// loadSnapshot copies every table of a prior snapshot file into the fresh
// in-memory schema, then restores the autoincrement sequences so ids of
// deleted rows are never reissued.
func (s *Store) loadSnapshot(path string) error {
	if _, err := s.db.Exec("ATTACH DATABASE ? AS snapshot", path); err != nil {
		return err
	}
	defer s.db.Exec("DETACH DATABASE snapshot")

	for _, res := range domain.All() {
		stmt := fmt.Sprintf("INSERT INTO main.%s SELECT * FROM snapshot.%s", res.Table, res.Table)
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("copy table %s: %w", res.Table, err)
		}
	}

	return s.restoreSequences()
}

func (s *Store) restoreSequences() error {
	// sqlite_sequence only materializes after the first AUTOINCREMENT insert;
	// with an entirely empty snapshot there is nothing to restore.
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM main.sqlite_master WHERE name = 'sqlite_sequence'").Scan(&n)
	if err != nil || n == 0 {
		return err
	}

	var sn int
	err = s.db.QueryRow(
		"SELECT COUNT(*) FROM snapshot.sqlite_master WHERE name = 'sqlite_sequence'").Scan(&sn)
	if err != nil || sn == 0 {
		return err
	}

	// The table copies above already appended sequence rows for the copied max
	// rowids. sqlite_sequence has no unique constraint on name, so those rows
	// must be removed before the snapshot's values go in; otherwise the table
	// holds two rows per name and SQLite consults the stale one.
	_, err = s.db.Exec(`DELETE FROM main.sqlite_sequence
		WHERE name IN (SELECT name FROM snapshot.sqlite_sequence)`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO main.sqlite_sequence (name, seq)
		SELECT name, seq FROM snapshot.sqlite_sequence`)
	return err
}
