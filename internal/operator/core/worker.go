package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/trigg3rX/feeshare-avs/internal/operator/metrics"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/retry"
)

// TaskStatus describes the last task the worker finished with.
type TaskStatus struct {
	TaskIndex  uint32    `json:"task_index"`
	Outcome    string    `json:"outcome"`
	Attempts   int       `json:"attempts"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

// Worker drains the queue one task at a time, so at most one response is
// in flight for this operator.
type Worker struct {
	queue       *TaskQueue
	processor   TaskProcessor
	retryConfig *retry.RetryConfig
	logger      logging.Logger
	metrics     *metrics.Metrics

	lastTask atomic.Pointer[TaskStatus]
	retries  sync.WaitGroup
}

// NewWorker uses retryConfig.MaxRetries as the total number of attempts per
// task and retryConfig.DelayForAttempt between them.
func NewWorker(
	queue *TaskQueue,
	processor TaskProcessor,
	retryConfig *retry.RetryConfig,
	logger logging.Logger,
	m *metrics.Metrics,
) *Worker {
	if retryConfig == nil {
		retryConfig = retry.DefaultRetryConfig()
	}
	return &Worker{
		queue:       queue,
		processor:   processor,
		retryConfig: retryConfig,
		logger:      logger,
		metrics:     m,
	}
}

// Run processes tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Task worker started", "queue_capacity", w.queue.Cap())
	defer w.retries.Wait()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Task worker stopped", "pending", w.queue.Len())
			return
		case qt := <-w.queue.tasks:
			w.queue.updateDepth()
			w.handle(ctx, qt)
		}
	}
}

// LastTask returns the status of the last finished task, nil before the first.
func (w *Worker) LastTask() *TaskStatus {
	return w.lastTask.Load()
}

func (w *Worker) handle(ctx context.Context, qt queuedTask) {
	traceID := uuid.New().String()
	logger := w.logger.WithTraceID(traceID).With("task_index", qt.task.TaskIndex, "attempt", qt.attempt)
	logger.Info("Processing task",
		"reward_contract", qt.task.RewardContractAddress.Hex(),
		"app_ids", qt.task.AppIDs,
		"from_block", qt.task.FromBlockNum,
		"to_block", qt.task.ToBlockNum,
	)

	started := time.Now()
	outcome, err := w.processor.Process(ctx, qt.task, logger)
	if err == nil {
		if outcome == OutcomeResponded {
			w.observeSubmission("success", started)
		}
		w.finish(qt, string(outcome), nil)
		return
	}

	kind := pkgErrors.Kind(err)
	if w.metrics != nil {
		w.metrics.TasksFailed.WithLabelValues(kind).Inc()
	}
	if kind == "chain_submission" {
		w.observeSubmission("error", started)
	}

	if pkgErrors.IsRetryable(err) && qt.attempt < w.retryConfig.MaxRetries && ctx.Err() == nil {
		delay := w.retryConfig.DelayForAttempt(qt.attempt)
		logger.Warn("Task attempt failed, retrying", "error", err, "kind", kind, "delay", delay)
		w.scheduleRetry(ctx, queuedTask{task: qt.task, attempt: qt.attempt + 1}, delay)
		return
	}

	logger.Error("Task failed", "error", err, "kind", kind)
	w.finish(qt, "failed", err)
}

func (w *Worker) scheduleRetry(ctx context.Context, qt queuedTask, delay time.Duration) {
	if w.metrics != nil {
		w.metrics.TaskRetries.Inc()
	}
	w.retries.Add(1)
	go func() {
		defer w.retries.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			w.queue.requeue(qt)
		}
	}()
}

func (w *Worker) finish(qt queuedTask, outcome string, err error) {
	status := &TaskStatus{
		TaskIndex:  qt.task.TaskIndex,
		Outcome:    outcome,
		Attempts:   qt.attempt,
		FinishedAt: time.Now().UTC(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	w.lastTask.Store(status)

	if w.metrics != nil {
		w.metrics.TasksProcessed.WithLabelValues(outcome).Inc()
		w.metrics.LastTaskIndex.Set(float64(qt.task.TaskIndex))
	}
}

func (w *Worker) observeSubmission(result string, started time.Time) {
	if w.metrics != nil {
		w.metrics.ObserveSubmission(result, started)
	}
}
