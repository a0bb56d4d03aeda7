package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

type Metrics struct {
	Ticks         *prometheus.CounterVec
	TasksCreated  prometheus.Counter
	GroupFailures *prometheus.CounterVec
	TickDuration  *prometheus.HistogramVec
	LastHeadBlock prometheus.Gauge
}

func New(collector *pkgmetrics.Collector) *Metrics {
	mb := pkgmetrics.NewMetricBuilder(collector)
	return &Metrics{
		Ticks:         mb.CounterVec("ticks_total", "Generator ticks by result", []string{"result"}),
		TasksCreated:  mb.Counter("tasks_created_total", "createNewTask transactions confirmed"),
		GroupFailures: mb.CounterVec("group_failures_total", "Reward contract groups whose task could not be created", []string{"kind"}),
		TickDuration:  mb.HistogramVec("tick_duration_seconds", "Duration of a generator tick", []string{"result"}, pkgmetrics.ChainTxBuckets),
		LastHeadBlock: mb.Gauge("last_head_block", "Chain head seen by the last tick"),
	}
}
