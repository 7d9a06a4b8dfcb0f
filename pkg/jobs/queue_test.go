package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	var processed int32
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&processed, 1)
		return nil
	}, QueueConfig{Workers: 2})
	q.Start(context.Background())
	defer q.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(Job{ID: "job"}))
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&processed) == 5 }, time.Second, 5*time.Millisecond)
}

func TestQueueRejectsBeforeStart(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})

	assert.Error(t, q.Enqueue(Job{ID: "a"}))
	assert.Error(t, q.TryEnqueue(Job{ID: "a"}))
}

func TestTryEnqueueReportsFullBuffer(t *testing.T) {
	release := make(chan struct{})
	q := NewQueue("slow", func(ctx context.Context, job Job) error {
		<-release
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())
	defer func() {
		close(release)
		q.Stop()
	}()

	require.NoError(t, q.TryEnqueue(Job{ID: "first"}))
	var full bool
	for i := 0; i < 10 && !full; i++ {
		err := q.TryEnqueue(Job{ID: "next"})
		full = errors.Is(err, ErrQueueFull)
	}
	assert.True(t, full)
}

func TestQueueWithoutRetriesReportsFailureOnce(t *testing.T) {
	var mu sync.Mutex
	var failed []Job
	var calls int32
	q := NewQueue("noretry", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("insert failed")
	}, QueueConfig{MaxRetries: 0, OnFailure: func(job Job, err error) {
		mu.Lock()
		failed = append(failed, job)
		mu.Unlock()
	}})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "n1"}))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(failed) == 1
	}, time.Second, 5*time.Millisecond)
	q.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, failed[0].Attempt)
}

func TestQueueRetriesUntilSuccess(t *testing.T) {
	var calls int32
	q := NewQueue("retry", func(ctx context.Context, job Job) error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("transient")
		}
		return nil
	}, QueueConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "r1"}))
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 3 }, time.Second, 5*time.Millisecond)
}

func TestStopDrainsBufferedJobs(t *testing.T) {
	var processed int32
	gate := make(chan struct{})
	q := NewQueue("drain", func(ctx context.Context, job Job) error {
		if job.ID == "blocker" {
			<-gate
		}
		atomic.AddInt32(&processed, 1)
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 4})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "blocker"}))
	require.NoError(t, q.Enqueue(Job{ID: "a"}))
	require.NoError(t, q.Enqueue(Job{ID: "b"}))
	close(gate)
	q.Stop()

	assert.Equal(t, int32(3), atomic.LoadInt32(&processed))
}
