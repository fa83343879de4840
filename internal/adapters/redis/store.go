package redis

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    goredis "github.com/redis/go-redis/v9"

    "threathunter/internal/domain"
)

const keyPrefix = "hunter:session:"

// Store keeps session snapshots as JSON values that expire after ttl.
type Store struct {
    rdb *goredis.Client
    ttl time.Duration
}

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, url string, ttl time.Duration) (*Store, error) {
    opts, err := goredis.ParseURL(url)
    if err != nil {
        return nil, fmt.Errorf("parse redis url: %w", err)
    }
    rdb := goredis.NewClient(opts)
    if err := rdb.Ping(ctx).Err(); err != nil {
        _ = rdb.Close()
        return nil, err
    }
    return New(rdb, ttl), nil
}

func New(rdb *goredis.Client, ttl time.Duration) *Store {
    return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Load(ctx context.Context, sessionID string) (domain.SessionSnapshot, bool, error) {
    var snap domain.SessionSnapshot
    raw, err := s.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
    if errors.Is(err, goredis.Nil) {
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

// Save writes the snapshot and refreshes its expiry. A zero ttl keeps the
// key forever.
func (s *Store) Save(ctx context.Context, sessionID string, snap domain.SessionSnapshot) error {
    raw, err := json.Marshal(snap)
    if err != nil {
        return err
    }
    return s.rdb.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
    return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}

func (s *Store) Close() error { return s.rdb.Close() }
