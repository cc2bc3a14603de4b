// Package store indexes search results in SQLite: witness seeds found by
// hunts and the stronghold chains of seeds.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite index. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Witness is one recorded hunt result.
type Witness struct {
	Engine     string
	Version    string
	Structure  string
	Seed       int64
	Lower48    int64
	Upper16    int64
	X, Z       int32
	RegionX    int32
	RegionZ    int32
	Trials     int64
	RecordedAt time.Time
}

// Stronghold is one position of a recorded stronghold chain.
type Stronghold struct {
	Index int
	X, Z  int32
}

// Open opens or creates the index at path.
func Open(path string, log *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug("opened index", "path", path)
	return &Store{db: db, log: log}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS witnesses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			engine TEXT NOT NULL,
			version TEXT NOT NULL,
			structure TEXT NOT NULL,
			seed INTEGER NOT NULL,
			lower48 INTEGER NOT NULL,
			upper16 INTEGER NOT NULL,
			x INTEGER NOT NULL,
			z INTEGER NOT NULL,
			region_x INTEGER NOT NULL,
			region_z INTEGER NOT NULL,
			trials INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			UNIQUE(engine, version, structure, seed, x, z)
		);`,
		`CREATE INDEX IF NOT EXISTS witnesses_structure ON witnesses(structure, version);`,
		`CREATE TABLE IF NOT EXISTS strongholds (
			engine TEXT NOT NULL,
			version TEXT NOT NULL,
			seed INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			x INTEGER NOT NULL,
			z INTEGER NOT NULL,
			PRIMARY KEY(engine, version, seed, idx)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// RecordWitness stores w. Recording the same witness twice keeps one row.
func (s *Store) RecordWitness(ctx context.Context, w Witness) error {
	if w.RecordedAt.IsZero() {
		w.RecordedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO witnesses
		(engine, version, structure, seed, lower48, upper16, x, z, region_x, region_z, trials, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Engine, w.Version, w.Structure, w.Seed, w.Lower48, w.Upper16,
		w.X, w.Z, w.RegionX, w.RegionZ, w.Trials, w.RecordedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record witness: %w", err)
	}
	s.log.Info("recorded witness", "structure", w.Structure, "seed", w.Seed, "x", w.X, "z", w.Z)
	return nil
}

// Witnesses returns the recorded witnesses for structure in version, oldest first.
func (s *Store) Witnesses(ctx context.Context, structure, version string) ([]Witness, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT engine, version, structure, seed, lower48, upper16,
		x, z, region_x, region_z, trials, recorded_at
		FROM witnesses WHERE structure = ? AND version = ? ORDER BY id`, structure, version)
	if err != nil {
		return nil, fmt.Errorf("query witnesses: %w", err)
	}
	defer rows.Close()

	var out []Witness
	for rows.Next() {
		var w Witness
		var at string
		if err := rows.Scan(&w.Engine, &w.Version, &w.Structure, &w.Seed, &w.Lower48, &w.Upper16,
			&w.X, &w.Z, &w.RegionX, &w.RegionZ, &w.Trials, &at); err != nil {
			return nil, fmt.Errorf("scan witness: %w", err)
		}
		w.RecordedAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", at, err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// RecordStrongholds replaces the stored chain of (engine, version, seed).
func (s *Store) RecordStrongholds(ctx context.Context, engine, version string, seed int64, chain []Stronghold) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM strongholds WHERE engine = ? AND version = ? AND seed = ?`,
		engine, version, seed); err != nil {
		return fmt.Errorf("clear strongholds: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO strongholds (engine, version, seed, idx, x, z) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()
	for _, sh := range chain {
		if _, err := stmt.ExecContext(ctx, engine, version, seed, sh.Index, sh.X, sh.Z); err != nil {
			return fmt.Errorf("insert stronghold %d: %w", sh.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Info("recorded strongholds", "seed", seed, "count", len(chain))
	return nil
}

// Strongholds returns the stored chain of (engine, version, seed) in order.
func (s *Store) Strongholds(ctx context.Context, engine, version string, seed int64) ([]Stronghold, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT idx, x, z FROM strongholds
		WHERE engine = ? AND version = ? AND seed = ? ORDER BY idx`, engine, version, seed)
	if err != nil {
		return nil, fmt.Errorf("query strongholds: %w", err)
	}
	defer rows.Close()

	var out []Stronghold
	for rows.Next() {
		var sh Stronghold
		if err := rows.Scan(&sh.Index, &sh.X, &sh.Z); err != nil {
			return nil, fmt.Errorf("scan stronghold: %w", err)
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
