package delayrunner

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/jonboulle/clockwork"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type fakeClock interface {
    BlockUntilContext(ctx context.Context, n int) error
    Advance(d time.Duration)
}

func advance(t *testing.T, clk fakeClock, d time.Duration) {
    t.Helper()
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    require.NoError(t, clk.BlockUntilContext(ctx, 1))
    clk.Advance(d)
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
    t.Helper()
    select {
    case <-ch:
    case <-time.After(2 * time.Second):
        t.Fatal("scheduled work did not exit")
    }
}

type progressLog struct {
    mu   sync.Mutex
    seen []float64
}

func (p *progressLog) add(v float64) {
    p.mu.Lock()
    defer p.mu.Unlock()
    p.seen = append(p.seen, v)
}

func (p *progressLog) values() []float64 {
    p.mu.Lock()
    defer p.mu.Unlock()
    return append([]float64(nil), p.seen...)
}

func TestScheduleRunsTaskAfterDelay(t *testing.T) {
    clk := clockwork.NewFakeClock()
    r := New(clk, 4)
    var log progressLog
    ran := make(chan struct{})

    done := r.Schedule(context.Background(), time.Second, log.add, func() { close(ran) })
    for i := 0; i < 4; i++ {
        select {
        case <-ran:
            t.Fatalf("task ran after %d of 4 steps", i)
        default:
        }
        advance(t, clk, 250*time.Millisecond)
    }
    waitClosed(t, done)

    select {
    case <-ran:
    default:
        t.Fatal("task did not run")
    }
    assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, log.values())
}

func TestScheduleCancelledBeforeDelay(t *testing.T) {
    clk := clockwork.NewFakeClock()
    r := New(clk, 2)
    ctx, cancel := context.WithCancel(context.Background())
    ran := false

    done := r.Schedule(ctx, time.Second, nil, func() { ran = true })
    advance(t, clk, 500*time.Millisecond)
    cancel()
    waitClosed(t, done)

    assert.False(t, ran)
}

func TestScheduleZeroDelay(t *testing.T) {
    r := New(clockwork.NewFakeClock(), 3)
    var log progressLog
    ran := false

    done := r.Schedule(context.Background(), 0, log.add, func() { ran = true })
    waitClosed(t, done)

    assert.True(t, ran)
    assert.Equal(t, []float64{0, 1}, log.values())
}

func TestNewClampsSteps(t *testing.T) {
    r := New(nil, 0)
    assert.Equal(t, 1, r.steps)
    assert.NotNil(t, r.clock)
}
