package match

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func (h *Handler) GetMatches(c *gin.Context) {
	result, err := h.service.Matches(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch matches"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetShortlisted(c *gin.Context) {
	rows, err := h.service.Shortlisted(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shortlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": rows})
}
