package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GetMemberList serves the member list as JSON, or as a file download when a
// format query parameter (csv, excel, pdf) is present.
func (h *Handler) GetMemberList(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		rows, err := h.service.MemberList(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch member list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"members": rows, "count": len(rows)})
		return
	}

	data, filename, contentType, err := h.service.ExportMemberList(c.Request.Context(), format, c.GetUint("user_id"), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
