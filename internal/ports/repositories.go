package ports

import (
    "context"

    "threathunter/internal/domain"
)

// SessionStore persists session snapshots by session id.
type SessionStore interface {
    Load(ctx context.Context, sessionID string) (snap domain.SessionSnapshot, found bool, err error)
    Save(ctx context.Context, sessionID string, snap domain.SessionSnapshot) error
    Delete(ctx context.Context, sessionID string) error
}
