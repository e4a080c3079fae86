package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"adeia/internal/catalog"
)

// Keys of the persisted blobs, one per catalog plus the global exclusion
// flag. They mirror the storage keys of the original client-side settings.
const (
	keyLeaveTypes      = "dda_leave_types"
	keyOffices         = "dda_offices"
	keyHolidays        = "dda_holidays"
	keyExcludeWeekends = "dda_exclude_holidays_and_weekends"
)

// SQLite persists the catalogs as keyed JSON blobs in a local database file.
// Use ":memory:" for tests.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Load(ctx context.Context) (catalog.Snapshot, bool, error) {
	var snap catalog.Snapshot

	found, err := s.loadKey(ctx, keyLeaveTypes, &snap.LeaveTypes)
	if err != nil {
		return catalog.Snapshot{}, false, err
	}
	if !found {
		return catalog.Snapshot{}, false, nil
	}
	if _, err := s.loadKey(ctx, keyOffices, &snap.Offices); err != nil {
		return catalog.Snapshot{}, false, err
	}
	if _, err := s.loadKey(ctx, keyHolidays, &snap.Holidays); err != nil {
		return catalog.Snapshot{}, false, err
	}
	if _, err := s.loadKey(ctx, keyExcludeWeekends, &snap.ExcludeWeekends); err != nil {
		return catalog.Snapshot{}, false, err
	}
	return snap, true, nil
}

// loadKey reads one blob. Corrupt JSON is treated as absent data, per the
// settings contract.
func (s *SQLite) loadKey(ctx context.Context, key string, out any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("corrupt settings blob, treating as absent", "key", key, "err", err)
		return false, nil
	}
	return true, nil
}

func (s *SQLite) Save(ctx context.Context, snap catalog.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range map[string]any{
		keyLeaveTypes:      snap.LeaveTypes,
		keyOffices:         snap.Offices,
		keyHolidays:        snap.Holidays,
		keyExcludeWeekends: snap.ExcludeWeekends,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value
		`, key, raw); err != nil {
			return err
		}
	}
	return tx.Commit()
}
