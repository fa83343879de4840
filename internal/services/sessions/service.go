package sessions

import (
    "context"
    "fmt"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jonboulle/clockwork"

    "threathunter/internal/domain"
    "threathunter/internal/logging"
    "threathunter/internal/metrics"
    "threathunter/internal/ports"
    "threathunter/internal/services/viewstate"
)

const storeTimeout = 5 * time.Second

type Config struct {
    Synth            ports.Synthesizer
    Scheduler        ports.Scheduler
    Store            ports.SessionStore
    Clock            clockwork.Clock
    SearchDelay      time.Duration
    InfographicDelay time.Duration
    // TTL is how long an untouched session stays in memory.
    TTL time.Duration
}

type entry struct {
    ctrl     *viewstate.Controller
    lastSeen time.Time
}

// Service keeps one view-state controller per session id.
type Service struct {
    cfg    Config
    ctx    context.Context
    cancel context.CancelFunc

    mu       sync.Mutex
    sessions map[string]*entry
}

func New(cfg Config) *Service {
    if cfg.Clock == nil {
        cfg.Clock = clockwork.NewRealClock()
    }
    ctx, cancel := context.WithCancel(context.Background())
    return &Service{cfg: cfg, ctx: ctx, cancel: cancel, sessions: make(map[string]*entry)}
}

// Get returns the controller for id, creating a session when id is empty or
// not held in memory. A new controller is seeded from the store when a
// snapshot exists. The returned id is the one to hand back to the client.
func (s *Service) Get(ctx context.Context, id string) (*viewstate.Controller, string, error) {
    if id != "" {
        u, err := uuid.Parse(id)
        if err != nil {
            id = ""
        } else {
            id = u.String()
        }
    }
    now := s.cfg.Clock.Now()
    if id != "" {
        s.mu.Lock()
        if e, ok := s.sessions[id]; ok {
            e.lastSeen = now
            s.mu.Unlock()
            return e.ctrl, id, nil
        }
        s.mu.Unlock()
    }

    var (
        snap  domain.SessionSnapshot
        found bool
    )
    if id == "" {
        id = uuid.NewString()
    } else if s.cfg.Store != nil {
        lctx, cancel := context.WithTimeout(ctx, storeTimeout)
        var err error
        snap, found, err = s.cfg.Store.Load(lctx, id)
        cancel()
        if err != nil {
            metrics.StoreError("load")
            logging.Errorf("session %s: load snapshot: %v", id, err)
        }
    }

    ctrl := s.newController(id)
    if found {
        ctrl.Restore(snap)
    }

    s.mu.Lock()
    defer s.mu.Unlock()
    if e, ok := s.sessions[id]; ok {
        // lost a race with a concurrent request for the same session
        ctrl.Close()
        e.lastSeen = now
        return e.ctrl, id, nil
    }
    s.sessions[id] = &entry{ctrl: ctrl, lastSeen: now}
    metrics.SessionOpened()
    return ctrl, id, nil
}

func (s *Service) newController(id string) *viewstate.Controller {
    return viewstate.New(s.ctx, viewstate.Options{
        Synth:            s.cfg.Synth,
        Scheduler:        s.cfg.Scheduler,
        SearchDelay:      s.cfg.SearchDelay,
        InfographicDelay: s.cfg.InfographicDelay,
        Clock:            s.cfg.Clock,
        OnChange:         func(snap domain.SessionSnapshot) { s.persist(id, snap) },
    })
}

func (s *Service) persist(id string, snap domain.SessionSnapshot) {
    if s.cfg.Store == nil {
        return
    }
    ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
    defer cancel()
    if err := s.cfg.Store.Save(ctx, id, snap); err != nil {
        metrics.StoreError("save")
        logging.Errorf("session %s: save snapshot: %v", id, err)
    }
}

// Forget closes the session and deletes its snapshot, so the next request
// with id starts from the initial state.
func (s *Service) Forget(ctx context.Context, id string) error {
    u, err := uuid.Parse(id)
    if err != nil {
        return nil
    }
    id = u.String()
    s.mu.Lock()
    e, ok := s.sessions[id]
    delete(s.sessions, id)
    s.mu.Unlock()
    if ok {
        e.ctrl.Close()
        metrics.SessionsClosed(1)
    }
    if s.cfg.Store == nil {
        return nil
    }
    dctx, cancel := context.WithTimeout(ctx, storeTimeout)
    defer cancel()
    if err := s.cfg.Store.Delete(dctx, id); err != nil {
        metrics.StoreError("delete")
        return fmt.Errorf("delete snapshot: %w", err)
    }
    return nil
}

// Len reports how many sessions are held in memory.
func (s *Service) Len() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.sessions)
}

// Sweep closes and drops sessions idle for longer than the TTL. Their
// snapshots stay in the store.
func (s *Service) Sweep() int {
    if s.cfg.TTL <= 0 {
        return 0
    }
    cutoff := s.cfg.Clock.Now().Add(-s.cfg.TTL)
    var idle []*viewstate.Controller
    s.mu.Lock()
    for id, e := range s.sessions {
        if e.lastSeen.Before(cutoff) {
            idle = append(idle, e.ctrl)
            delete(s.sessions, id)
        }
    }
    s.mu.Unlock()

    for _, c := range idle {
        c.Close()
    }
    if n := len(idle); n > 0 {
        metrics.SessionsClosed(n)
    }
    return len(idle)
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
    if interval <= 0 {
        return
    }
    ticker := s.cfg.Clock.NewTicker(interval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.Chan():
            if n := s.Sweep(); n > 0 {
                logging.Infof("evicted %d idle sessions", n)
            }
        }
    }
}

// Close detaches every session; pending delayed work is dropped.
func (s *Service) Close() {
    s.mu.Lock()
    all := s.sessions
    s.sessions = make(map[string]*entry)
    s.mu.Unlock()

    for _, e := range all {
        e.ctrl.Close()
    }
    metrics.SessionsClosed(len(all))
    s.cancel()
}
