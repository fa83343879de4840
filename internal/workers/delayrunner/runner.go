package delayrunner

import (
    "context"
    "time"

    "github.com/jonboulle/clockwork"
)

// Runner simulates slow work: it waits out a delay in equal steps, reporting
// progress after each one, and then runs the task.
type Runner struct {
    clock clockwork.Clock
    steps int
}

func New(clock clockwork.Clock, steps int) *Runner {
    if clock == nil {
        clock = clockwork.NewRealClock()
    }
    if steps < 1 {
        steps = 1
    }
    return &Runner{clock: clock, steps: steps}
}

// Schedule implements ports.Scheduler.
func (r *Runner) Schedule(ctx context.Context, delay time.Duration, progress func(float64), task func()) <-chan struct{} {
    done := make(chan struct{})
    go func() {
        defer close(done)
        if err := r.wait(ctx, delay, progress); err != nil {
            return
        }
        // cancelled while the last step fired
        if ctx.Err() != nil {
            return
        }
        task()
    }()
    return done
}

func (r *Runner) wait(ctx context.Context, delay time.Duration, progress func(float64)) error {
    report := func(p float64) {
        if progress != nil && ctx.Err() == nil {
            progress(p)
        }
    }
    report(0)
    if delay <= 0 {
        report(1)
        return ctx.Err()
    }
    step := delay / time.Duration(r.steps)
    for i := 1; i <= r.steps; i++ {
        wait := step
        if i == r.steps {
            // absorb the remainder of the integer division
            wait = delay - step*time.Duration(r.steps-1)
        }
        select {
        case <-ctx.Done():
            return ctx.Err()
        case <-r.clock.After(wait):
        }
        report(float64(i) / float64(r.steps))
    }
    return nil
}
