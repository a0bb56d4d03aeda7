package api

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/trigg3rX/feeshare-avs/internal/operator/core"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// StatusProvider reports the live state of the operator
type StatusProvider interface {
	OperatorAddress() common.Address
	QueueDepth() int
	QueueCapacity() int
	LastTask() *core.TaskStatus
	StartedAt() time.Time
}

type StatusHandler struct {
	logger   logging.Logger
	provider StatusProvider
}

func NewStatusHandler(logger logging.Logger, provider StatusProvider) *StatusHandler {
	return &StatusHandler{
		logger:   logger,
		provider: provider,
	}
}

func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

func (h *StatusHandler) Status(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "operator not started"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"operator_address": h.provider.OperatorAddress().Hex(),
		"queue_depth":      h.provider.QueueDepth(),
		"queue_capacity":   h.provider.QueueCapacity(),
		"last_task":        h.provider.LastTask(),
		"uptime_seconds":   int64(time.Since(h.provider.StartedAt()).Seconds()),
	})
}
