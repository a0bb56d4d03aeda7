package core

import (
	"github.com/trigg3rX/feeshare-avs/internal/operator/metrics"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

type queuedTask struct {
	task    types.Task
	attempt int
}

// TaskQueue is the bounded buffer between event intake and the worker.
// Enqueue never blocks; a full queue drops the task.
type TaskQueue struct {
	tasks   chan queuedTask
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewTaskQueue(size int, logger logging.Logger, m *metrics.Metrics) *TaskQueue {
	if size <= 0 {
		size = 1
	}
	return &TaskQueue{
		tasks:   make(chan queuedTask, size),
		logger:  logger,
		metrics: m,
	}
}

// Enqueue adds a newly observed task. It reports false when the task was dropped.
func (q *TaskQueue) Enqueue(task types.Task) bool {
	if !q.push(queuedTask{task: task, attempt: 1}) {
		return false
	}
	if q.metrics != nil {
		q.metrics.TasksReceived.Inc()
	}
	return true
}

func (q *TaskQueue) requeue(qt queuedTask) bool {
	return q.push(qt)
}

func (q *TaskQueue) push(qt queuedTask) bool {
	select {
	case q.tasks <- qt:
		q.updateDepth()
		return true
	default:
		q.logger.Error("Task queue is full, dropping task",
			"task_index", qt.task.TaskIndex,
			"attempt", qt.attempt,
			"capacity", cap(q.tasks),
		)
		if q.metrics != nil {
			q.metrics.TasksDropped.Inc()
		}
		return false
	}
}

func (q *TaskQueue) Len() int {
	return len(q.tasks)
}

func (q *TaskQueue) Cap() int {
	return cap(q.tasks)
}

func (q *TaskQueue) updateDepth() {
	if q.metrics != nil {
		q.metrics.QueueDepth.Set(float64(len(q.tasks)))
	}
}
