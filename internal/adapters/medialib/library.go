// Package medialib implements the asset source and permission gate over a
// local SQLite media library database.
package medialib

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite"
)

// DefaultPath is the library location when the config does not name one.
const DefaultPath = "~/.lume/library.db"

// normalizedTime is the SQL expression for an asset's creation time in
// milliseconds. Stored values keep the unit the platform reported, so the
// second-or-millisecond heuristic is applied at every comparison, same as in
// Go code.
const normalizedTime = "(CASE WHEN creation_time < 1000000000000 THEN creation_time * 1000 ELSE creation_time END)"

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id            TEXT PRIMARY KEY,
	uri           TEXT NOT NULL,
	creation_time INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assets_creation ON assets(creation_time DESC);

CREATE TABLE IF NOT EXISTS moments (
	id             TEXT PRIMARY KEY,
	start_time     INTEGER NOT NULL,
	end_time       INTEGER NOT NULL,
	location_name  TEXT NOT NULL DEFAULT '',
	reported_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS permission (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	state TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS grants (
	asset_id TEXT PRIMARY KEY REFERENCES assets(id) ON DELETE CASCADE
);
`

// Library is a SQLite-backed photo library standing in for the host
// platform's media layer. It persists assets and moments, not cluster state.
// Pass ":memory:" as the path for tests.
type Library struct {
	db   *sql.DB
	path string
}

// Open opens (and if necessary creates and migrates) the library database.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultPath
	}
	path = expandPath(path)

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, zerr.Wrap(err, domain.ErrLibraryOpenFailed.Error())
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryOpenFailed.Error())
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.Wrap(err, domain.ErrLibraryOpenFailed.Error())
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLibraryOpenFailed.Error()), "pragma", pragma)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.Wrap(err, domain.ErrLibraryOpenFailed.Error())
	}

	return &Library{db: db, path: path}, nil
}

// Close closes the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

// Path returns the resolved database location.
func (l *Library) Path() string {
	return l.path
}

// AddAssets upserts assets into the library.
func (l *Library) AddAssets(ctx context.Context, assets []domain.Asset) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO assets (id, uri, creation_time) VALUES (?, ?, ?)")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range assets {
		if _, err := stmt.ExecContext(ctx, a.ID, a.URI, a.CreationTime); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error()), "asset", a.ID)
		}
	}
	return tx.Commit()
}

// AddMoments upserts coarse groups into the library.
func (l *Library) AddMoments(ctx context.Context, groups []domain.CoarseGroup) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO moments (id, start_time, end_time, location_name, reported_count) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = stmt.Close() }()

	for _, g := range groups {
		location := ""
		if len(g.LocationNames) > 0 {
			location = g.LocationNames[0]
		}
		if _, err := stmt.ExecContext(ctx, g.ID, g.StartTime, g.EndTime, location, g.ReportedCount); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error()), "moment", g.ID)
		}
	}
	return tx.Commit()
}

// expandPath expands a leading ~ to the user home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
