package engine

import (
	"context"
	"time"
)

const (
	// DefaultMovetime is the soft search budget when none is configured.
	DefaultMovetime = 10 * time.Second
)

// clock enforces the soft time budget of one search. Done is polled
// cooperatively at node boundaries only, so the configured budget is a soft
// ceiling with bounded overrun, not a hard deadline.
type clock struct {
	ctx      context.Context
	started  time.Time
	movetime time.Duration
}

func newClock(ctx context.Context, movetime time.Duration) *clock {
	if movetime <= 0 {
		movetime = DefaultMovetime
	}
	return &clock{
		ctx:      ctx,
		started:  time.Now(),
		movetime: movetime,
	}
}

func (c *clock) Done() bool {
	if c.ctx.Err() != nil {
		return true
	}
	return time.Since(c.started) >= c.movetime
}

func (c *clock) Elapsed() time.Duration {
	return time.Since(c.started)
}
