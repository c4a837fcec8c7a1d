package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db             *sql.DB
	insertStmt     *sql.Stmt
	topStmt        *sql.Stmt
	topSpeciesStmt *sql.Stmt
	recentStmt     *sql.Stmt
}

// OpenSQLite opens (creating if needed) the catch log at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db path: %w", err)
		}
	}

	// DSN notes:
	// - _pragma=busy_timeout sets a lock wait
	// - _pragma=journal_mode(WAL) enables the write-ahead log
	// - _pragma=synchronous(NORMAL) sets the disk synchronizing
	//	 mode to NORMAL (recommended with WAL enabled)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	ins, err := db.Prepare(`
		INSERT INTO catches (profile, species_id, size_cm, auto_sold, caught_at)
		VALUES (?,?,?,?,?)
	`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	top, err := db.Prepare(`
		SELECT id, profile, species_id, size_cm, auto_sold, caught_at
		FROM catches
		WHERE profile = ?
		ORDER BY size_cm DESC, id DESC
		LIMIT ?
	`)
	if err != nil {
		_ = ins.Close()
		_ = db.Close()
		return nil, err
	}

	topSpecies, err := db.Prepare(`
		SELECT id, profile, species_id, size_cm, auto_sold, caught_at
		FROM catches
		WHERE profile = ? AND species_id = ?
		ORDER BY size_cm DESC, id DESC
		LIMIT ?
	`)
	if err != nil {
		_ = ins.Close()
		_ = top.Close()
		_ = db.Close()
		return nil, err
	}

	recent, err := db.Prepare(`
		SELECT id, profile, species_id, size_cm, auto_sold, caught_at
		FROM catches
		WHERE profile = ?
		ORDER BY id DESC
		LIMIT ?
	`)
	if err != nil {
		_ = ins.Close()
		_ = top.Close()
		_ = topSpecies.Close()
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, insertStmt: ins, topStmt: top, topSpeciesStmt: topSpecies, recentStmt: recent}, nil
}

func (s *SQLiteStore) Close() error {
	if s.insertStmt != nil {
		_ = s.insertStmt.Close()
	}
	if s.topStmt != nil {
		_ = s.topStmt.Close()
	}
	if s.topSpeciesStmt != nil {
		_ = s.topSpeciesStmt.Close()
	}
	if s.recentStmt != nil {
		_ = s.recentStmt.Close()
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catches (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			profile     TEXT    NOT NULL,
			species_id  TEXT    NOT NULL,
			size_cm     INTEGER NOT NULL,
			auto_sold   INTEGER NOT NULL DEFAULT 0,
			caught_at   INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_all
			ON catches (profile, size_cm DESC, id DESC);

		CREATE INDEX IF NOT EXISTS idx_records_species
			ON catches (profile, species_id, size_cm DESC, id DESC);
	`)
	return err
}

func (s *SQLiteStore) Add(ctx context.Context, c Catch) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	if c.CaughtAt.IsZero() {
		c.CaughtAt = time.Now()
	}

	autoSold := 0
	if c.AutoSold {
		autoSold = 1
	}
	_, err := s.insertStmt.ExecContext(ctx,
		c.Profile,
		c.SpeciesID,
		c.SizeCm,
		autoSold,
		c.CaughtAt.Unix(),
	)
	return err
}

func (s *SQLiteStore) TopBySize(ctx context.Context, profile string, limit int) ([]Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.topStmt.QueryContext(ctx, profile, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCatches(rows, limit)
}

func (s *SQLiteStore) TopBySizeForSpecies(ctx context.Context, profile, speciesID string, limit int) ([]Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.topSpeciesStmt.QueryContext(ctx, profile, speciesID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCatches(rows, limit)
}

func (s *SQLiteStore) Recent(ctx context.Context, profile string, limit int) ([]Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.recentStmt.QueryContext(ctx, profile, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCatches(rows, limit)
}

func scanCatches(rows *sql.Rows, limit int) ([]Catch, error) {
	out := make([]Catch, 0, limit)
	for rows.Next() {
		var (
			c          Catch
			autoSold   int
			caughtUnix int64
		)
		if err := rows.Scan(&c.ID, &c.Profile, &c.SpeciesID, &c.SizeCm, &autoSold, &caughtUnix); err != nil {
			return nil, err
		}
		c.AutoSold = autoSold != 0
		c.CaughtAt = time.Unix(caughtUnix, 0).UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}
