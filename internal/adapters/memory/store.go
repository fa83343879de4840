package memory

import (
    "context"
    "sync"

    "threathunter/internal/domain"
)

// Store keeps session snapshots in process memory. Snapshots are lost on
// restart.
type Store struct {
    mu    sync.RWMutex
    snaps map[string]domain.SessionSnapshot
}

func NewStore() *Store {
    return &Store{snaps: make(map[string]domain.SessionSnapshot)}
}

func (s *Store) Load(_ context.Context, sessionID string) (domain.SessionSnapshot, bool, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    snap, ok := s.snaps[sessionID]
    if ok {
        snap.CurrentThreat = snap.CurrentThreat.Clone()
    }
    return snap, ok, nil
}

func (s *Store) Save(_ context.Context, sessionID string, snap domain.SessionSnapshot) error {
    snap.CurrentThreat = snap.CurrentThreat.Clone()
    s.mu.Lock()
    defer s.mu.Unlock()
    s.snaps[sessionID] = snap
    return nil
}

func (s *Store) Delete(_ context.Context, sessionID string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.snaps, sessionID)
    return nil
}
