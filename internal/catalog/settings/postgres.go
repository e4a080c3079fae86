package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adeia/internal/catalog"
)

// Postgres persists the same keyed blobs in a shared database, for
// deployments where several workstations point at one settings store.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value JSONB NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate settings table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Load(ctx context.Context) (catalog.Snapshot, bool, error) {
	var snap catalog.Snapshot

	found, err := p.loadKey(ctx, keyLeaveTypes, &snap.LeaveTypes)
	if err != nil {
		return catalog.Snapshot{}, false, err
	}
	if !found {
		return catalog.Snapshot{}, false, nil
	}
	if _, err := p.loadKey(ctx, keyOffices, &snap.Offices); err != nil {
		return catalog.Snapshot{}, false, err
	}
	if _, err := p.loadKey(ctx, keyHolidays, &snap.Holidays); err != nil {
		return catalog.Snapshot{}, false, err
	}
	if _, err := p.loadKey(ctx, keyExcludeWeekends, &snap.ExcludeWeekends); err != nil {
		return catalog.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (p *Postgres) loadKey(ctx context.Context, key string, out any) (bool, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, "SELECT value FROM settings WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (p *Postgres) Save(ctx context.Context, snap catalog.Snapshot) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

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
		if _, err := tx.Exec(ctx, `
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, key, raw); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
