package archive

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"launchdash/internal/errors"
	"launchdash/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS load_snapshots (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	record_count INTEGER NOT NULL,
	site_count INTEGER NOT NULL,
	loaded_at DATETIME NOT NULL
);
`

// Store is a sqlite-backed snapshot store. It records one row per dataset
// load; derived aggregates never touch it.
type Store struct {
	db *sqlx.DB
}

// Open connects to (and if needed creates) the archive database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, errors.DatabaseError("failed to open archive database", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.DatabaseError("failed to create archive schema", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one load snapshot.
func (s *Store) Record(ctx context.Context, snap ports.LoadSnapshot) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO load_snapshots (id, source, record_count, site_count, loaded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.ID.String(), snap.Source, snap.RecordCount, snap.SiteCount, snap.LoadedAt.UTC(),
	)
	if err != nil {
		return errors.DatabaseError("failed to record load snapshot", err)
	}
	return nil
}

// List returns the most recent load snapshots, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]ports.LoadSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	var snaps []ports.LoadSnapshot
	err := s.db.SelectContext(ctx, &snaps,
		`SELECT id, source, record_count, site_count, loaded_at
		 FROM load_snapshots ORDER BY loaded_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.DatabaseError("failed to list load snapshots", err)
	}
	return snaps, nil
}
