package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicflow/ledger-api/internal/session"
)

type Handler struct {
	manager *session.Manager
}

func NewHandler(manager *session.Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) StartSession(c *gin.Context) {
	marker := h.manager.Start()
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": marker})
}

func (h *Handler) CheckSession(c *gin.Context) {
	active := h.manager.Active(c.Param("token"))
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"active": active}})
}

func (h *Handler) TouchSession(c *gin.Context) {
	marker, ok := h.manager.Touch(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "session expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": marker})
}

func (h *Handler) EndSession(c *gin.Context) {
	h.manager.End(c.Param("token"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/session")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:token", h.CheckSession)
		sessions.PUT("/:token", h.TouchSession)
		sessions.DELETE("/:token", h.EndSession)
	}
}
