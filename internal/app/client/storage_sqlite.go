package client

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"nestlog/internal/domain/entry"
)

// SQLiteStorage is the local mirror of one baby's entries. It is replaced
// wholesale after every successful fetch from the server, so summary and
// export keep working offline.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS feedings (
			baby_id INTEGER NOT NULL,
			id INTEGER NOT NULL,
			type TEXT NOT NULL,
			volume INTEGER NOT NULL,
			time TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (baby_id, id)
		);

		CREATE TABLE IF NOT EXISTS diapers (
			baby_id INTEGER NOT NULL,
			id INTEGER NOT NULL,
			type TEXT NOT NULL,
			sub TEXT NOT NULL DEFAULT '',
			time TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (baby_id, id)
		);

		CREATE TABLE IF NOT EXISTS sleeps (
			baby_id INTEGER NOT NULL,
			id INTEGER NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			duration TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			PRIMARY KEY (baby_id, id)
		);

		CREATE TABLE IF NOT EXISTS growth (
			baby_id INTEGER NOT NULL,
			id INTEGER NOT NULL,
			weight TEXT NOT NULL,
			height TEXT NOT NULL,
			date TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			PRIMARY KEY (baby_id, id)
		);

		CREATE INDEX IF NOT EXISTS idx_feedings_ts ON feedings(baby_id, timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_diapers_ts ON diapers(baby_id, timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_sleeps_ts ON sleeps(baby_id, timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_growth_ts ON growth(baby_id, timestamp DESC);
	`)

	return err
}

// ReplaceStore swaps the cached entries of a baby with a fresh server
// snapshot in one transaction.
func (s *SQLiteStorage) ReplaceStore(babyID int, store entry.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"feedings", "diapers", "sleeps", "growth"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE baby_id = ?", babyID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, f := range store.Feedings {
		_, err := tx.Exec(`
			INSERT INTO feedings (baby_id, id, type, volume, time, timestamp, note)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, babyID, f.ID, f.Type, f.Volume, f.Time, f.Timestamp, f.Note)
		if err != nil {
			return fmt.Errorf("failed to save feeding: %w", err)
		}
	}

	for _, d := range store.Diapers {
		_, err := tx.Exec(`
			INSERT INTO diapers (baby_id, id, type, sub, time, timestamp, color)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, babyID, d.ID, d.Type, d.Sub, d.Time, d.Timestamp, d.Color)
		if err != nil {
			return fmt.Errorf("failed to save diaper: %w", err)
		}
	}

	for _, sl := range store.Sleeps {
		_, err := tx.Exec(`
			INSERT INTO sleeps (baby_id, id, start_time, end_time, duration, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`, babyID, sl.ID, sl.Start, sl.End, sl.Duration, sl.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to save sleep: %w", err)
		}
	}

	for _, g := range store.Growth {
		_, err := tx.Exec(`
			INSERT INTO growth (baby_id, id, weight, height, date, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`, babyID, g.ID, g.Weight, g.Height, g.Date, g.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to save growth: %w", err)
		}
	}

	return tx.Commit()
}

// LoadStore reads a baby's cached entries, each kind newest first.
func (s *SQLiteStorage) LoadStore(babyID int) (entry.Store, error) {
	var store entry.Store

	rows, err := s.db.Query(`
		SELECT id, type, volume, time, timestamp, note
		FROM feedings WHERE baby_id = ? ORDER BY timestamp DESC
	`, babyID)
	if err != nil {
		return store, fmt.Errorf("failed to query feedings: %w", err)
	}
	for rows.Next() {
		var f entry.Feeding
		if err := rows.Scan(&f.ID, &f.Type, &f.Volume, &f.Time, &f.Timestamp, &f.Note); err != nil {
			rows.Close()
			return store, fmt.Errorf("failed to scan feeding: %w", err)
		}
		store.Feedings = append(store.Feedings, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return store, err
	}

	rows, err = s.db.Query(`
		SELECT id, type, sub, time, timestamp, color
		FROM diapers WHERE baby_id = ? ORDER BY timestamp DESC
	`, babyID)
	if err != nil {
		return store, fmt.Errorf("failed to query diapers: %w", err)
	}
	for rows.Next() {
		var d entry.Diaper
		if err := rows.Scan(&d.ID, &d.Type, &d.Sub, &d.Time, &d.Timestamp, &d.Color); err != nil {
			rows.Close()
			return store, fmt.Errorf("failed to scan diaper: %w", err)
		}
		store.Diapers = append(store.Diapers, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return store, err
	}

	rows, err = s.db.Query(`
		SELECT id, start_time, end_time, duration, timestamp
		FROM sleeps WHERE baby_id = ? ORDER BY timestamp DESC
	`, babyID)
	if err != nil {
		return store, fmt.Errorf("failed to query sleeps: %w", err)
	}
	for rows.Next() {
		var sl entry.Sleep
		if err := rows.Scan(&sl.ID, &sl.Start, &sl.End, &sl.Duration, &sl.Timestamp); err != nil {
			rows.Close()
			return store, fmt.Errorf("failed to scan sleep: %w", err)
		}
		store.Sleeps = append(store.Sleeps, sl)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return store, err
	}

	rows, err = s.db.Query(`
		SELECT id, weight, height, date, timestamp
		FROM growth WHERE baby_id = ? ORDER BY timestamp DESC
	`, babyID)
	if err != nil {
		return store, fmt.Errorf("failed to query growth: %w", err)
	}
	for rows.Next() {
		var g entry.Growth
		if err := rows.Scan(&g.ID, &g.Weight, &g.Height, &g.Date, &g.Timestamp); err != nil {
			rows.Close()
			return store, fmt.Errorf("failed to scan growth: %w", err)
		}
		store.Growth = append(store.Growth, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return store, err
	}

	return store, nil
}

// LastBabyID returns the baby whose snapshot is cached, or 0 when the cache
// is empty.
func (s *SQLiteStorage) LastBabyID() (int, error) {
	var babyID int
	err := s.db.QueryRow(`
		SELECT baby_id FROM (
			SELECT baby_id FROM feedings
			UNION SELECT baby_id FROM diapers
			UNION SELECT baby_id FROM sleeps
			UNION SELECT baby_id FROM growth
		) LIMIT 1
	`).Scan(&babyID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve cached baby: %w", err)
	}
	return babyID, nil
}

// CountEntries returns the number of cached entries of a baby across all
// kinds.
func (s *SQLiteStorage) CountEntries(babyID int) (int, error) {
	var total int
	for _, table := range []string{"feedings", "diapers", "sleeps", "growth"} {
		var count int
		err := s.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE baby_id = ?", babyID).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("failed to count %s: %w", table, err)
		}
		total += count
	}
	return total, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
