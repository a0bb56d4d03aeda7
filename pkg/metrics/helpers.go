package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ChainTxBuckets cover the seconds between sending a transaction and reading
// its receipt on an L2 with ~2s blocks.
var ChainTxBuckets = []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120}

// NewGauge builds an unregistered gauge.
func NewGauge(namespace, subsystem, name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts(opts(namespace, subsystem, name, help)))
}

func opts(namespace, subsystem, name, help string) prometheus.Opts {
	return prometheus.Opts{Namespace: namespace, Subsystem: subsystem, Name: name, Help: help}
}

// MetricBuilder registers the metrics of one binary as
// <namespace>_<service>_<name> on the collector's registry. Registering the
// same name twice panics.
type MetricBuilder struct {
	namespace string
	subsystem string
	collector *Collector
}

func NewMetricBuilder(collector *Collector) *MetricBuilder {
	return &MetricBuilder{
		namespace: collector.namespace,
		subsystem: collector.serviceName,
		collector: collector,
	}
}

func (mb *MetricBuilder) opts(name, help string) prometheus.Opts {
	return opts(mb.namespace, mb.subsystem, name, help)
}

func (mb *MetricBuilder) Counter(name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts(mb.opts(name, help)))
	mb.collector.MustRegister(c)
	return c
}

func (mb *MetricBuilder) CounterVec(name, help string, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts(mb.opts(name, help)), labels)
	mb.collector.MustRegister(c)
	return c
}

func (mb *MetricBuilder) Gauge(name, help string) prometheus.Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts(mb.opts(name, help)))
	mb.collector.MustRegister(g)
	return g
}

// HistogramVec falls back to prometheus.DefBuckets when buckets is nil.
func (mb *MetricBuilder) HistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	o := mb.opts(name, help)
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   buckets,
	}, labels)
	mb.collector.MustRegister(h)
	return h
}
