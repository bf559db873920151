package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tw-event-radar/radar/internal/daily"
)

type DailyHandler struct {
	store *daily.Store
}

func NewDailyHandler(store *daily.Store) *DailyHandler {
	return &DailyHandler{store: store}
}

// DailyListResponse lists the published daily reports.
type DailyListResponse struct {
	Items []daily.Meta `json:"items"`
	Total int          `json:"total"`
}

// List godoc
// @Summary List the daily reports
// @Description Slug, title and date of every report, newest first
// @Tags daily
// @Produce json
// @Success 200 {object} DailyListResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/daily [get]
func (h *DailyHandler) List(c *gin.Context) {
	items, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list daily reports: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, DailyListResponse{Items: items, Total: len(items)})
}

// Latest godoc
// @Summary Latest daily report
// @Tags daily
// @Produce json
// @Success 200 {object} daily.Meta
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/daily/latest [get]
func (h *DailyHandler) Latest(c *gin.Context) {
	latest, err := h.store.Latest()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list daily reports: " + err.Error()})
		return
	}
	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no daily report published yet"})
		return
	}
	c.JSON(http.StatusOK, latest)
}

// Get godoc
// @Summary Rendered daily report
// @Description Report metadata and rendered HTML
// @Tags daily
// @Produce json
// @Param slug path string true "Report slug (YYYY-MM-DD)"
// @Success 200 {object} daily.Document
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/daily/{slug} [get]
func (h *DailyHandler) Get(c *gin.Context) {
	doc, err := h.store.Get(c.Param("slug"))
	switch {
	case errors.Is(err, daily.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, daily.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily report: " + err.Error()})
	default:
		c.JSON(http.StatusOK, doc)
	}
}
