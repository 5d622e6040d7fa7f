package ports

import (
	"context"
	"time"
)

// Scheduler drives a recurring job at coarse granularity. Start returns
// immediately; the job runs on the scheduler's own goroutine until the
// context is cancelled or Stop is called.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
