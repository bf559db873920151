package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tw-event-radar/radar/internal/typesense"
)

// ReportSearcher runs full-text queries over the daily reports.
type ReportSearcher interface {
	Search(ctx context.Context, q string, page, perPage int) (*typesense.SearchResult, error)
	Health(ctx context.Context) error
}

type SearchHandler struct {
	index ReportSearcher
}

// NewSearchHandler creates the handler; a nil index answers 503.
func NewSearchHandler(index ReportSearcher) *SearchHandler {
	return &SearchHandler{index: index}
}

type searchQuery struct {
	Q       string `form:"q" binding:"required"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// Search godoc
// @Summary Full-text search over the daily reports
// @Tags search
// @Produce json
// @Param q query string true "Search terms"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Results per page" default(10)
// @Success 200 {object} typesense.SearchResult
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	if h.index == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": typesense.ErrDisabled.Error()})
		return
	}

	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	res, err := h.index.Search(c.Request.Context(), q.Q, q.Page, q.PerPage)
	if errors.Is(err, typesense.ErrDisabled) || errors.Is(err, typesense.ErrIndexFailed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
