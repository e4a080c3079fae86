// Package settings provides persistence ports for the reference catalogs:
// an in-memory port for tests, a SQLite port for single-user local use and a
// Postgres port for shared deployments. All three store the catalogs as
// independent keyed blobs.
package settings

import (
	"context"
	"sync"

	"adeia/internal/catalog"
)

// Memory is an in-memory port for tests and development.
type Memory struct {
	mu    sync.Mutex
	snap  catalog.Snapshot
	saved bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (catalog.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, m.saved, nil
}

func (m *Memory) Save(_ context.Context, snap catalog.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	m.saved = true
	return nil
}
