package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// CommonMetrics are exported by every binary
type CommonMetrics struct {
	startTime             time.Time
	UptimeSeconds         prometheus.Gauge
	MemoryUsageBytes      prometheus.Gauge
	HostMemoryUsedPercent prometheus.Gauge
	CPUUsagePercent       prometheus.Gauge
	GoroutinesActive      prometheus.Gauge
	GCDurationSeconds     prometheus.Gauge
}

func newCommonMetrics(namespace, subsystem string, registry *prometheus.Registry) *CommonMetrics {
	cm := &CommonMetrics{
		startTime:             time.Now(),
		UptimeSeconds:         NewGauge(namespace, subsystem, "uptime_seconds", "Time passed since the process started in seconds"),
		MemoryUsageBytes:      NewGauge(namespace, subsystem, "memory_usage_bytes", "Heap bytes allocated by the process"),
		HostMemoryUsedPercent: NewGauge(namespace, subsystem, "host_memory_used_percent", "Used memory of the host in percent"),
		CPUUsagePercent:       NewGauge(namespace, subsystem, "cpu_usage_percent", "Host CPU utilization percentage"),
		GoroutinesActive:      NewGauge(namespace, subsystem, "goroutines_active", "Number of active goroutines"),
		GCDurationSeconds:     NewGauge(namespace, subsystem, "gc_duration_seconds", "Total garbage collection pause duration in seconds"),
	}

	registry.MustRegister(
		cm.UptimeSeconds,
		cm.MemoryUsageBytes,
		cm.HostMemoryUsedPercent,
		cm.CPUUsagePercent,
		cm.GoroutinesActive,
		cm.GCDurationSeconds,
	)

	return cm
}

func (cm *CommonMetrics) UpdateUptime() {
	cm.UptimeSeconds.Set(time.Since(cm.startTime).Seconds())
}

// UpdateSystemMetrics samples runtime and host statistics
func (cm *CommonMetrics) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	cm.MemoryUsageBytes.Set(float64(m.Alloc))
	cm.GoroutinesActive.Set(float64(runtime.NumGoroutine()))
	cm.GCDurationSeconds.Set(float64(m.PauseTotalNs) / 1e9)

	if cpuPercentages, err := cpu.Percent(0, false); err == nil && len(cpuPercentages) > 0 {
		cm.CPUUsagePercent.Set(cpuPercentages[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		cm.HostMemoryUsedPercent.Set(vm.UsedPercent)
	}
}
