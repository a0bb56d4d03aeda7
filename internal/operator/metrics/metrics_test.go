package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

func TestNew_RegistersOperatorMetrics(t *testing.T) {
	collector := pkgmetrics.NewCollector("operator", pkgmetrics.WithCommonMetrics(false))
	m := New(collector)

	m.TasksReceived.Inc()
	m.TasksProcessed.WithLabelValues("responded").Inc()
	m.ObserveExplorerRequest("success")
	m.ObserveExplorerRequest("success")
	m.ObserveSubmission("success", time.Now().Add(-time.Second))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksReceived))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksProcessed.WithLabelValues("responded")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExplorerRequests.WithLabelValues("success")))

	count, err := testutil.GatherAndCount(collector.Registry(), "feeshare_operator_submission_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
