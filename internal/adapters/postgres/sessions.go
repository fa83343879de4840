package postgres

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/jackc/pgx/v5"

    "threathunter/internal/domain"
    "threathunter/internal/ports"
)

var _ ports.SessionStore = (*DB)(nil)

// Load reads the snapshot of a session; found is false when none is stored.
func (db *DB) Load(ctx context.Context, sessionID string) (domain.SessionSnapshot, bool, error) {
    var snap domain.SessionSnapshot
    var raw []byte
    err := db.Pool.QueryRow(ctx, `SELECT snapshot FROM sessions WHERE id = $1`, sessionID).Scan(&raw)
    if errors.Is(err, pgx.ErrNoRows) {
        return snap, false, nil
    }
    if err != nil {
        return snap, false, err
    }
    if err := json.Unmarshal(raw, &snap); err != nil {
        return snap, false, fmt.Errorf("decode session %s: %w", sessionID, err)
    }
    return snap, true, nil
}

func (db *DB) Save(ctx context.Context, sessionID string, snap domain.SessionSnapshot) error {
    raw, err := json.Marshal(snap)
    if err != nil {
        return err
    }
    _, err = db.Pool.Exec(ctx, `
        INSERT INTO sessions (id, snapshot, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()
    `, sessionID, raw)
    return err
}

func (db *DB) Delete(ctx context.Context, sessionID string) error {
    _, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
    return err
}
