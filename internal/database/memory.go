package database

import (
	"bytes"
	"context"
	"sync"
)

// MemoryBackend holds snapshots in process memory. Nothing survives a restart.
type MemoryBackend struct {
	mu    sync.RWMutex
	snaps map[Kind]Snapshot
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{snaps: make(map[Kind]Snapshot)}
}

func (m *MemoryBackend) Read(_ context.Context, kind Kind) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := m.snaps[kind]
	return Snapshot{Data: bytes.Clone(snap.Data), LastID: snap.LastID}, nil
}

func (m *MemoryBackend) Write(_ context.Context, kind Kind, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[kind] = Snapshot{Data: bytes.Clone(snap.Data), LastID: snap.LastID}
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
