package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the prometheus registry of one binary
type Collector struct {
	serviceName   string
	namespace     string
	registry      *prometheus.Registry
	commonMetrics *CommonMetrics
	handler       http.Handler
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
	options       CollectorOptions
}

// NewCollector creates a collector whose metrics are named
// <namespace>_<serviceName>_<metric>.
func NewCollector(serviceName string, opts ...Option) *Collector {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	registry := prometheus.NewRegistry()

	collector := &Collector{
		serviceName: serviceName,
		namespace:   options.Namespace,
		registry:    registry,
		stopCh:      make(chan struct{}),
		options:     options,
	}

	if options.EnableCommonMetrics {
		collector.commonMetrics = newCommonMetrics(options.Namespace, serviceName, registry)
	}

	collector.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	})

	return collector
}

// Start begins the background sampling of common metrics
func (c *Collector) Start() {
	if c.commonMetrics == nil {
		return
	}
	c.commonMetrics.UpdateUptime()
	c.every(c.options.UptimeUpdateInterval, c.commonMetrics.UpdateUptime)
	c.every(c.options.SystemMetricsInterval, c.commonMetrics.UpdateSystemMetrics)
}

// Stop ends background sampling. It is safe to call more than once.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

// Handler returns the HTTP handler for the metrics endpoint
func (c *Collector) Handler() http.Handler {
	return c.handler
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ServiceName() string {
	return c.serviceName
}

func (c *Collector) Common() *CommonMetrics {
	return c.commonMetrics
}

func (c *Collector) every(interval time.Duration, fn func()) {
	if interval <= 0 {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fn()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// MustRegister registers custom metrics and panics on conflicts
func (c *Collector) MustRegister(collectors ...prometheus.Collector) {
	c.registry.MustRegister(collectors...)
}

func (c *Collector) Register(collectors ...prometheus.Collector) error {
	for _, collector := range collectors {
		if err := c.registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
