package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicflow/ledger-api/internal/handler"
	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/service/analytics"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

// GetStats computes the dashboard bundle over the records matching the query
// filters. An empty query aggregates everything.
func (h *Handler) GetStats(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	bundle, err := h.service.GetStats(c.Request.Context(), spec)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bundle})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
}
