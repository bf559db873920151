package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tw-event-radar/radar/internal/notes"
)

type NotesHandler struct {
	notes *notes.Collection
}

func NewNotesHandler(collection *notes.Collection) *NotesHandler {
	return &NotesHandler{notes: collection}
}

// List godoc
// @Summary Research notes
// @Tags notes
// @Produce json
// @Success 200 {array} notes.Note
// @Router /api/v1/notes [get]
func (h *NotesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.notes.All())
}

// Get godoc
// @Summary Research note by slug
// @Tags notes
// @Produce json
// @Param slug path string true "Note slug"
// @Success 200 {object} notes.Note
// @Failure 404 {object} map[string]string
// @Router /api/v1/notes/{slug} [get]
func (h *NotesHandler) Get(c *gin.Context) {
	note, ok := h.notes.BySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}
