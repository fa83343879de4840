package viewstate

import (
    "context"
    "strings"
    "sync"
    "time"

    "github.com/jonboulle/clockwork"

    "threathunter/internal/domain"
    "threathunter/internal/metrics"
    "threathunter/internal/ports"
)

const (
    DefaultSearchDelay      = 1500 * time.Millisecond
    DefaultInfographicDelay = 2 * time.Second
)

var ErrClosed = errString("session closed")

type errString string

func (e errString) Error() string { return string(e) }

type Options struct {
    Synth            ports.Synthesizer
    Scheduler        ports.Scheduler
    SearchDelay      time.Duration
    InfographicDelay time.Duration
    Clock            clockwork.Clock
    // OnChange receives a snapshot after every change worth persisting.
    // Calls are serialized and never carry an older snapshot than a
    // previous call.
    OnChange func(domain.SessionSnapshot)
}

// State is the full view state of one session, including the transient
// flags that are never persisted.
type State struct {
    domain.SessionSnapshot
    Searching    bool    `json:"searching"`
    Progress     float64 `json:"progress"`
    PendingQuery string  `json:"pendingQuery,omitempty"`
    Generating   bool    `json:"generating"`
}

// task is a pending delayed completion. It belongs to the view that owns the
// action (search or infographic) and is cancelled when that view is left.
type task struct {
    view   domain.View
    cancel context.CancelFunc
    done   <-chan struct{}
}

// Controller owns the view state of one session. All mutation goes through
// its methods; delayed completions re-check ownership before applying.
type Controller struct {
    opts   Options
    ctx    context.Context
    cancel context.CancelFunc

    mu           sync.Mutex
    snap         domain.SessionSnapshot
    searching    bool
    progress     float64
    pendingQuery string
    generating   bool
    search       *task
    infographic  *task
    version      uint64
    closed       bool

    notifyMu sync.Mutex
    notified uint64
}

func New(parent context.Context, opts Options) *Controller {
    if opts.Clock == nil {
        opts.Clock = clockwork.NewRealClock()
    }
    if opts.SearchDelay < 0 {
        opts.SearchDelay = 0
    }
    if opts.InfographicDelay < 0 {
        opts.InfographicDelay = 0
    }
    ctx, cancel := context.WithCancel(parent)
    return &Controller{
        opts:   opts,
        ctx:    ctx,
        cancel: cancel,
        snap: domain.SessionSnapshot{
            ActiveView: domain.ViewSearch,
            Template:   domain.TemplateExecutive,
            Filter:     domain.DefaultFilter(),
        },
    }
}

// Restore seeds the controller from a persisted snapshot. Invalid fields
// fall back to their initial values.
func (c *Controller) Restore(snap domain.SessionSnapshot) {
    if _, err := domain.ParseView(string(snap.ActiveView)); err != nil {
        snap.ActiveView = domain.ViewSearch
    }
    if _, err := domain.ParseTemplate(string(snap.Template)); err != nil {
        snap.Template = domain.TemplateExecutive
    }
    snap.Filter, _ = snap.Filter.Normalize()
    snap.CurrentThreat = snap.CurrentThreat.Clone()

    c.mu.Lock()
    defer c.mu.Unlock()
    c.snap = snap
}

func (c *Controller) Snapshot() State {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.stateLocked()
}

func (c *Controller) stateLocked() State {
    snap := c.snap
    snap.CurrentThreat = snap.CurrentThreat.Clone()
    return State{
        SessionSnapshot: snap,
        Searching:       c.searching,
        Progress:        c.progress,
        PendingQuery:    c.pendingQuery,
        Generating:      c.generating,
    }
}

// SelectView makes v the active view. Leaving the search or infographic
// view cancels the delayed work that view owns.
func (c *Controller) SelectView(v domain.View) error {
    v, err := domain.ParseView(string(v))
    if err != nil {
        return err
    }
    c.mu.Lock()
    if c.closed {
        c.mu.Unlock()
        return ErrClosed
    }
    prev := c.snap.ActiveView
    if prev == v {
        c.mu.Unlock()
        metrics.ViewSelected(string(v))
        return nil
    }
    c.snap.ActiveView = v
    c.detachLocked(prev)
    snap, ver := c.changedLocked()
    c.mu.Unlock()

    metrics.ViewSelected(string(v))
    c.notify(snap, ver)
    return nil
}

// SubmitSearch schedules a mock analysis of query. A blank query is a no-op
// and reports false. A newer submission supersedes any pending one, so the
// latest submitted query is the one that lands.
func (c *Controller) SubmitSearch(query string) bool {
    if strings.TrimSpace(query) == "" {
        metrics.Search("blank")
        return false
    }
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.closed {
        return false
    }
    if c.search != nil {
        c.search.cancel()
        metrics.Search("superseded")
    }
    t := &task{view: domain.ViewSearch}
    c.search = t
    c.searching = true
    c.progress = 0
    c.pendingQuery = query

    ctx, cancel := context.WithCancel(c.ctx)
    t.cancel = cancel
    // Schedule must not invoke the callbacks synchronously; c.mu is held.
    t.done = c.opts.Scheduler.Schedule(ctx, c.opts.SearchDelay,
        func(p float64) { c.searchProgress(t, p) },
        func() { c.resolveSearch(t, query) },
    )
    metrics.Search("submitted")
    return true
}

func (c *Controller) searchProgress(t *task, p float64) {
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.search == t {
        c.progress = p
    }
}

func (c *Controller) resolveSearch(t *task, query string) {
    rec := c.opts.Synth.Synthesize(query)

    c.mu.Lock()
    if c.closed || c.search != t {
        c.mu.Unlock()
        return
    }
    c.search = nil
    c.searching = false
    c.progress = 1
    c.pendingQuery = ""
    c.snap.CurrentThreat = &rec
    c.snap.LastQuery = query
    snap, ver := c.changedLocked()
    c.mu.Unlock()

    metrics.Search("resolved")
    metrics.Severity(string(rec.Severity))
    c.notify(snap, ver)
}

// Wait blocks until no search is pending or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
    for {
        c.mu.Lock()
        t := c.search
        c.mu.Unlock()
        if t == nil {
            return nil
        }
        select {
        case <-t.done:
        case <-ctx.Done():
            return ctx.Err()
        }
        c.mu.Lock()
        if c.search == t {
            // exited without resolving, e.g. the parent context ended
            c.clearSearchLocked()
        }
        c.mu.Unlock()
    }
}

func (c *Controller) SelectTemplate(tmpl domain.Template) error {
    tmpl, err := domain.ParseTemplate(string(tmpl))
    if err != nil {
        return err
    }
    c.mu.Lock()
    if c.closed {
        c.mu.Unlock()
        return ErrClosed
    }
    if c.snap.Template == tmpl {
        c.mu.Unlock()
        return nil
    }
    c.snap.Template = tmpl
    snap, ver := c.changedLocked()
    c.mu.Unlock()

    c.notify(snap, ver)
    return nil
}

// GenerateInfographic raises the generating flag for the infographic delay.
// It reports false when there is no threat to render or a generation is
// already running.
func (c *Controller) GenerateInfographic() bool {
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.closed || c.snap.CurrentThreat == nil || c.generating {
        metrics.Infographic(string(c.snap.Template), "rejected")
        return false
    }
    t := &task{view: domain.ViewInfographic}
    c.infographic = t
    c.generating = true
    tmpl := c.snap.Template

    ctx, cancel := context.WithCancel(c.ctx)
    t.cancel = cancel
    t.done = c.opts.Scheduler.Schedule(ctx, c.opts.InfographicDelay, nil, func() {
        c.mu.Lock()
        defer c.mu.Unlock()
        if c.closed || c.infographic != t {
            return
        }
        c.infographic = nil
        c.generating = false
        metrics.Infographic(string(tmpl), "completed")
    })
    metrics.Infographic(string(tmpl), "started")
    return true
}

func (c *Controller) SetFilter(f domain.AnalyticsFilter) (domain.AnalyticsFilter, error) {
    f, err := f.Normalize()
    if err != nil {
        return f, err
    }
    c.mu.Lock()
    if c.closed {
        c.mu.Unlock()
        return f, ErrClosed
    }
    if c.snap.Filter == f {
        c.mu.Unlock()
        return f, nil
    }
    c.snap.Filter = f
    snap, ver := c.changedLocked()
    c.mu.Unlock()

    c.notify(snap, ver)
    return f, nil
}

// Close detaches the session. Pending completions become no-ops and every
// later mutation is refused.
func (c *Controller) Close() {
    // waits out an OnChange in flight; none is delivered afterwards
    c.notifyMu.Lock()
    defer c.notifyMu.Unlock()
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.closed {
        return
    }
    c.closed = true
    if c.search != nil {
        c.search.cancel()
        c.clearSearchLocked()
        metrics.Search("cancelled")
    }
    if c.infographic != nil {
        c.infographic.cancel()
        c.infographic = nil
        c.generating = false
    }
    c.cancel()
}

func (c *Controller) detachLocked(v domain.View) {
    if c.search != nil && c.search.view == v {
        c.search.cancel()
        c.clearSearchLocked()
        metrics.Search("cancelled")
    }
    if c.infographic != nil && c.infographic.view == v {
        c.infographic.cancel()
        c.infographic = nil
        c.generating = false
        metrics.Infographic(string(c.snap.Template), "cancelled")
    }
}

func (c *Controller) clearSearchLocked() {
    c.search = nil
    c.searching = false
    c.progress = 0
    c.pendingQuery = ""
}

func (c *Controller) changedLocked() (domain.SessionSnapshot, uint64) {
    c.version++
    c.snap.UpdatedAt = c.opts.Clock.Now().UTC()
    snap := c.snap
    snap.CurrentThreat = snap.CurrentThreat.Clone()
    return snap, c.version
}

func (c *Controller) notify(snap domain.SessionSnapshot, ver uint64) {
    if c.opts.OnChange == nil {
        return
    }
    c.notifyMu.Lock()
    defer c.notifyMu.Unlock()
    c.mu.Lock()
    closed := c.closed
    c.mu.Unlock()
    if closed || ver <= c.notified {
        return
    }
    c.notified = ver
    c.opts.OnChange(snap)
}
