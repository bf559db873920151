package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tw-event-radar/radar/internal/services"
)

type KeywordHandler struct {
	service *services.KeywordService
}

func NewKeywordHandler(service *services.KeywordService) *KeywordHandler {
	return &KeywordHandler{service: service}
}

// Index godoc
// @Summary Monitored keyword catalog
// @Description Keyword categories, catalog version, changelog and per-keyword hit days with first and last seen dates
// @Tags keywords
// @Produce json
// @Success 200 {object} services.KeywordIndex
// @Failure 500 {object} map[string]string
// @Router /api/v1/keywords [get]
func (h *KeywordHandler) Index(c *gin.Context) {
	idx, err := h.service.Index()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build keyword hits: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, idx)
}
