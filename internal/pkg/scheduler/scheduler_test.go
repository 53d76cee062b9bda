package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_InvalidSpec(t *testing.T) {
	s := New(time.Second)

	err := s.Add("purge", "not a schedule", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "purge")
}

func TestScheduler_RunsJob(t *testing.T) {
	s := New(time.Second)
	var runs int32

	require.NoError(t, s.Add("purge", "@every 1s", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		atomic.AddInt32(&runs, 1)
		return nil
	}))

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_StopHonoursContext(t *testing.T) {
	s := New(time.Second)
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	require.NoError(t, s.Add("slow", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}))
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)

	close(release)
}
