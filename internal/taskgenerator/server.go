package taskgenerator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trigg3rX/feeshare-avs/internal/operator/api"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

// TickStatus is the outcome of the most recent tick as served by /health.
type TickStatus struct {
	Head       uint64    `json:"head"`
	Groups     int       `json:"groups"`
	Created    int       `json:"created"`
	Failed     int       `json:"failed"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

type statusSource interface {
	LastTick() *TickStatus
	StartedAt() time.Time
}

type metricsServer struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
}

func newMetricsServer(port string, status statusSource, collector *pkgmetrics.Collector, logger logging.Logger) *metricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.LoggerMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"started_at": status.StartedAt(),
			"last_tick":  status.LastTick(),
		})
	})
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	return &metricsServer{
		router: router,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *metricsServer) Start() error {
	s.logger.Info("Starting metrics server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}

func (s *metricsServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
