package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker pings an optional backend.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	contentDir string
	index      HealthChecker
}

// NewHealthHandler creates the handler. index is nil when search is not
// configured.
func NewHealthHandler(contentDir string, index HealthChecker) *HealthHandler {
	return &HealthHandler{
		contentDir: contentDir,
		index:      index,
	}
}

// HealthResponse is the probe payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Reports that the process is up, without checking dependencies
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Checks the report directory and, when configured, Typesense
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if info, err := os.Stat(h.contentDir); err == nil && info.IsDir() {
		response.Checks["content"] = "ok"
	} else {
		response.Checks["content"] = "failed"
		response.Status = "not_ready"
		response.Error = "content directory not available"
	}

	if h.index == nil {
		response.Checks["typesense"] = "disabled"
	} else if err := h.index.Health(ctx); err != nil {
		response.Checks["typesense"] = "failed"
		response.Status = "not_ready"
		response.Error = "Typesense not available"
	} else {
		response.Checks["typesense"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
