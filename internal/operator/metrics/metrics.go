package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

// Metrics holds the task pipeline metrics of the operator
type Metrics struct {
	TasksReceived      prometheus.Counter
	TasksDropped       prometheus.Counter
	TasksProcessed     *prometheus.CounterVec
	TasksFailed        *prometheus.CounterVec
	TaskRetries        prometheus.Counter
	QueueDepth         prometheus.Gauge
	SubmissionDuration *prometheus.HistogramVec
	ExplorerRequests   *prometheus.CounterVec
	LastTaskIndex      prometheus.Gauge
}

func New(collector *pkgmetrics.Collector) *Metrics {
	mb := pkgmetrics.NewMetricBuilder(collector)
	return &Metrics{
		TasksReceived:  mb.Counter("tasks_received_total", "NewTaskCreated events accepted into the queue"),
		TasksDropped:   mb.Counter("tasks_dropped_total", "NewTaskCreated events dropped because the queue was full"),
		TasksProcessed: mb.CounterVec("tasks_processed_total", "Tasks that reached a terminal state", []string{"outcome"}),
		TasksFailed:    mb.CounterVec("tasks_failed_total", "Failed task attempts by error kind", []string{"kind"}),
		TaskRetries:    mb.Counter("task_retries_total", "Task attempts scheduled for retry"),
		QueueDepth:     mb.Gauge("queue_depth", "Tasks waiting in the queue"),
		SubmissionDuration: mb.HistogramVec(
			"submission_duration_seconds",
			"Time from task dequeue to respondToTask receipt",
			[]string{"result"},
			pkgmetrics.ChainTxBuckets,
		),
		ExplorerRequests: mb.CounterVec("explorer_requests_total", "Block explorer page requests", []string{"outcome"}),
		LastTaskIndex:    mb.Gauge("last_task_index", "Index of the last task that reached a terminal state"),
	}
}

// ObserveExplorerRequest is passed to the explorer client as its request observer.
func (m *Metrics) ObserveExplorerRequest(outcome string) {
	m.ExplorerRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSubmission(result string, started time.Time) {
	m.SubmissionDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}
