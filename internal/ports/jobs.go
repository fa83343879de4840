package ports

import (
    "context"
    "time"
)

// Scheduler runs delayed tasks that simulate slow work.
type Scheduler interface {
    // Schedule runs task once delay has elapsed unless ctx is done first.
    // progress, if non-nil, receives fractions in [0,1] while waiting.
    // The returned channel is closed when the scheduled work has exited.
    Schedule(ctx context.Context, delay time.Duration, progress func(float64), task func()) <-chan struct{}
}
