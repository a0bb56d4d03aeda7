package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/feeshare-avs/internal/operator/core"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

type fakeStatus struct {
	last *core.TaskStatus
}

func (f *fakeStatus) OperatorAddress() common.Address {
	return common.HexToAddress("0x00000000000000000000000000000000000000aa")
}
func (f *fakeStatus) QueueDepth() int            { return 3 }
func (f *fakeStatus) QueueCapacity() int         { return 100 }
func (f *fakeStatus) LastTask() *core.TaskStatus { return f.last }
func (f *fakeStatus) StartedAt() time.Time       { return time.Now().Add(-time.Minute) }

func newTestServer(status StatusProvider) *Server {
	collector := pkgmetrics.NewCollector("operator", pkgmetrics.WithCommonMetrics(false))
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_requests_total", Help: "test"})
	collector.MustRegister(counter)
	counter.Inc()

	return NewServer(Config{Port: "0"}, Dependencies{
		Logger:    logging.NewNoOpLogger(),
		Status:    status,
		Collector: collector,
	})
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(&fakeStatus{}), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestStatus(t *testing.T) {
	status := &fakeStatus{last: &core.TaskStatus{TaskIndex: 9, Outcome: "responded", Attempts: 1}}
	rec := get(t, newTestServer(status), "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OperatorAddress string           `json:"operator_address"`
		QueueDepth      int              `json:"queue_depth"`
		LastTask        *core.TaskStatus `json:"last_task"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, status.OperatorAddress().Hex(), body.OperatorAddress)
	assert.Equal(t, 3, body.QueueDepth)
	require.NotNil(t, body.LastTask)
	assert.Equal(t, uint32(9), body.LastTask.TaskIndex)
}

func TestStatus_NotStarted(t *testing.T) {
	srv := NewServer(Config{Port: "0"}, Dependencies{Logger: logging.NewNoOpLogger()})
	rec := get(t, srv, "/status")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetrics(t *testing.T) {
	rec := get(t, newTestServer(&fakeStatus{}), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_requests_total 1")
}
