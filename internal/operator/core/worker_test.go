package core

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/feeshare-avs/internal/operator/metrics"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
	"github.com/trigg3rX/feeshare-avs/pkg/retry"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// scriptedProcessor returns the scripted errors in order, then succeeds.
type scriptedProcessor struct {
	mu       sync.Mutex
	errs     []error
	seen     []uint32
	inFlight int
	maxSeen  int
	delay    time.Duration
}

func (p *scriptedProcessor) Process(_ context.Context, task types.Task, _ logging.Logger) (Outcome, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.maxSeen {
		p.maxSeen = p.inFlight
	}
	p.seen = append(p.seen, task.TaskIndex)
	var err error
	if len(p.errs) > 0 {
		err, p.errs = p.errs[0], p.errs[1:]
	}
	p.mu.Unlock()

	time.Sleep(p.delay)

	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()
	if err != nil {
		return "", err
	}
	return OutcomeResponded, nil
}

func (p *scriptedProcessor) snapshot() ([]uint32, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint32(nil), p.seen...), p.maxSeen
}

func fastRetry(attempts int) *retry.RetryConfig {
	return &retry.RetryConfig{
		MaxRetries:    attempts,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(pkgmetrics.NewCollector("operator", pkgmetrics.WithCommonMetrics(false)))
}

func startWorker(t *testing.T, w *Worker) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func TestWorker_ProcessesOneTaskAtATimeInOrder(t *testing.T) {
	m := newTestMetrics()
	queue := NewTaskQueue(10, logging.NewNoOpLogger(), m)
	processor := &scriptedProcessor{delay: 5 * time.Millisecond}
	worker := NewWorker(queue, processor, fastRetry(3), logging.NewNoOpLogger(), m)

	for i := uint32(1); i <= 5; i++ {
		require.True(t, queue.Enqueue(types.Task{TaskIndex: i}))
	}
	startWorker(t, worker)

	assert.Eventually(t, func() bool {
		seen, _ := processor.snapshot()
		return len(seen) == 5
	}, 2*time.Second, 5*time.Millisecond)

	seen, maxInFlight := processor.snapshot()
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 1, maxInFlight)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.TasksReceived))
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.TasksProcessed.WithLabelValues("responded")) == 5
	}, time.Second, 5*time.Millisecond)
}

func TestWorker_RetriesRetryableFailures(t *testing.T) {
	m := newTestMetrics()
	queue := NewTaskQueue(10, logging.NewNoOpLogger(), m)
	processor := &scriptedProcessor{errs: []error{
		fmt.Errorf("%w: timeout", pkgErrors.ErrExplorerUnavailable),
		fmt.Errorf("%w: nonce too low", pkgErrors.ErrChainSubmission),
	}}
	worker := NewWorker(queue, processor, fastRetry(3), logging.NewNoOpLogger(), m)

	queue.Enqueue(types.Task{TaskIndex: 4})
	startWorker(t, worker)

	assert.Eventually(t, func() bool {
		last := worker.LastTask()
		return last != nil && last.Outcome == string(OutcomeResponded)
	}, 2*time.Second, 5*time.Millisecond)

	last := worker.LastTask()
	assert.Equal(t, uint32(4), last.TaskIndex)
	assert.Equal(t, 3, last.Attempts)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TaskRetries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksFailed.WithLabelValues("explorer_unavailable")))
}

func TestWorker_GivesUpAfterMaxAttempts(t *testing.T) {
	queue := NewTaskQueue(10, logging.NewNoOpLogger(), nil)
	directoryDown := fmt.Errorf("%w: HTTP 503", pkgErrors.ErrDirectoryUnavailable)
	processor := &scriptedProcessor{errs: []error{directoryDown, directoryDown, directoryDown}}
	worker := NewWorker(queue, processor, fastRetry(2), logging.NewNoOpLogger(), nil)

	queue.Enqueue(types.Task{TaskIndex: 1})
	startWorker(t, worker)

	assert.Eventually(t, func() bool {
		last := worker.LastTask()
		return last != nil && last.Outcome == "failed"
	}, 2*time.Second, 5*time.Millisecond)

	seen, _ := processor.snapshot()
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, worker.LastTask().Attempts)
	assert.Contains(t, worker.LastTask().Error, "HTTP 503")
}

func TestWorker_SigningFailureIsFinal(t *testing.T) {
	queue := NewTaskQueue(10, logging.NewNoOpLogger(), nil)
	processor := &scriptedProcessor{errs: []error{fmt.Errorf("%w: bad key", pkgErrors.ErrSigning)}}
	worker := NewWorker(queue, processor, fastRetry(5), logging.NewNoOpLogger(), nil)

	queue.Enqueue(types.Task{TaskIndex: 2})
	queue.Enqueue(types.Task{TaskIndex: 3})
	startWorker(t, worker)

	assert.Eventually(t, func() bool {
		last := worker.LastTask()
		return last != nil && last.TaskIndex == 3
	}, 2*time.Second, 5*time.Millisecond)

	seen, _ := processor.snapshot()
	assert.Equal(t, []uint32{2, 3}, seen)
}

func TestTaskQueue_DropsWhenFull(t *testing.T) {
	m := newTestMetrics()
	queue := NewTaskQueue(2, logging.NewNoOpLogger(), m)

	assert.True(t, queue.Enqueue(types.Task{TaskIndex: 1}))
	assert.True(t, queue.Enqueue(types.Task{TaskIndex: 2}))
	assert.False(t, queue.Enqueue(types.Task{TaskIndex: 3}))

	assert.Equal(t, 2, queue.Len())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TasksReceived))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueueDepth))
}

func TestWorker_StopsOnCancel(t *testing.T) {
	queue := NewTaskQueue(1, logging.NewNoOpLogger(), nil)
	worker := NewWorker(queue, &scriptedProcessor{}, nil, logging.NewNoOpLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Nil(t, worker.LastTask())
}
