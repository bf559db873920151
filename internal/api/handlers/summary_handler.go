package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tw-event-radar/radar/internal/models"
)

// SummaryLister reads archived daily summaries.
type SummaryLister interface {
	List(ctx context.Context, limit int) ([]models.DailySummary, error)
}

type SummaryHandler struct {
	archive SummaryLister
}

// NewSummaryHandler creates the handler; a nil archive answers 503.
func NewSummaryHandler(archive SummaryLister) *SummaryHandler {
	return &SummaryHandler{archive: archive}
}

type summaryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=366"`
}

// List godoc
// @Summary Archived daily counters
// @Description Total, new and trending event counts per day, newest first
// @Tags summaries
// @Produce json
// @Param limit query int false "Maximum number of days" default(30)
// @Success 200 {array} models.DailySummary
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/summaries [get]
func (h *SummaryHandler) List(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summary archive is not configured"})
		return
	}

	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	summaries, err := h.archive.List(c.Request.Context(), q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list summaries: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
