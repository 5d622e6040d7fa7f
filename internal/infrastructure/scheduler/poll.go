// Package scheduler provides a ticker-based polling driver.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// PollScheduler runs a job on a fixed coarse interval. The job fires once
// immediately on Start so a delivery time that already passed today is not
// missed, then on every tick.
type PollScheduler struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewPollScheduler builds a scheduler polling at the given interval.
func NewPollScheduler(interval time.Duration) *PollScheduler {
	return &PollScheduler{interval: interval}
}

// Start begins ticking on a new goroutine. Calling Start on a running
// scheduler is a no-op; after Stop the scheduler can be started again.
func (p *PollScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	p.mu.Lock()
	if p.stop != nil {
		p.mu.Unlock()
		return nil
	}
	// The goroutine selects on its own copy of the channel; the field is
	// only touched under the mutex.
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case t := <-ticker.C:
				job(t)
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine. Safe to call concurrently with Start
// and repeatedly.
func (p *PollScheduler) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return nil
	}
	close(p.stop)
	p.stop = nil
	return nil
}
