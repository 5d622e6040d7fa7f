package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollScheduler_FiresImmediatelyAndOnTicks(t *testing.T) {
	sched := NewPollScheduler(10 * time.Millisecond)
	fired := make(chan time.Time, 16)

	require.NoError(t, sched.Start(context.Background(), func(ts time.Time) {
		select {
		case fired <- ts:
		default:
		}
	}))
	defer sched.Stop(context.Background())

	// The first fire happens on Start, not a full interval later.
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire on start")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire on tick")
	}
}

func TestPollScheduler_StopHaltsTicking(t *testing.T) {
	sched := NewPollScheduler(5 * time.Millisecond)
	fired := make(chan time.Time, 64)

	require.NoError(t, sched.Start(context.Background(), func(ts time.Time) {
		select {
		case fired <- ts:
		default:
		}
	}))
	require.NoError(t, sched.Stop(context.Background()))

	// Drain whatever fired before the stop took effect, then verify
	// silence.
	time.Sleep(20 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, fired)

	// Stopping again is a no-op.
	assert.NoError(t, sched.Stop(context.Background()))
}

func TestPollScheduler_ContextCancelHaltsTicking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sched := NewPollScheduler(5 * time.Millisecond)
	fired := make(chan time.Time, 64)

	require.NoError(t, sched.Start(ctx, func(ts time.Time) {
		select {
		case fired <- ts:
		default:
		}
	}))
	cancel()

	time.Sleep(20 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, fired)
}

func TestPollScheduler_StopWhileTicking(t *testing.T) {
	// Stop runs on a different goroutine than the select loop; the loop
	// must exit through the stop channel without the race detector
	// flagging the field access.
	sched := NewPollScheduler(time.Millisecond)
	ticked := make(chan struct{}, 1)

	require.NoError(t, sched.Start(context.Background(), func(time.Time) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}))

	<-ticked
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, sched.Stop(context.Background()))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return while the loop was ticking")
	}
}

func TestPollScheduler_RestartAfterStop(t *testing.T) {
	sched := NewPollScheduler(10 * time.Millisecond)
	fired := make(chan time.Time, 16)
	job := func(ts time.Time) {
		select {
		case fired <- ts:
		default:
		}
	}

	require.NoError(t, sched.Start(context.Background(), job))
	<-fired
	require.NoError(t, sched.Stop(context.Background()))

	require.NoError(t, sched.Start(context.Background(), job))
	defer sched.Stop(context.Background())

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire after restart")
	}
}

func TestPollScheduler_NilJob(t *testing.T) {
	sched := NewPollScheduler(time.Minute)
	assert.NoError(t, sched.Start(context.Background(), nil))
	assert.NoError(t, sched.Stop(context.Background()))
}
