package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicflow/ledger-api/internal/handler"
	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/service/settings"
)

type Handler struct {
	service *settings.Service
}

func NewHandler(service *settings.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": s})
}

func (h *Handler) SaveSettings(c *gin.Context) {
	var s model.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := h.service.SaveSettings(c.Request.Context(), s); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) SaveProfitSplit(c *gin.Context) {
	var req model.ProfitSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	updated, err := h.service.SaveProfitSplit(c.Request.Context(), req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": updated})
}

func (h *Handler) AddDoctor(c *gin.Context) {
	var req model.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := h.service.AddDoctor(c.Request.Context(), req.Name); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func (h *Handler) RemoveDoctor(c *gin.Context) {
	if err := h.service.RemoveDoctor(c.Request.Context(), c.Param("name")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) AddService(c *gin.Context) {
	var req model.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := h.service.AddService(c.Request.Context(), req.Name); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func (h *Handler) RemoveService(c *gin.Context) {
	if err := h.service.RemoveService(c.Request.Context(), c.Param("name")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/settings")
	{
		s.GET("", h.GetSettings)
		s.PUT("", h.SaveSettings)
		s.PUT("/profit", h.SaveProfitSplit)
		s.POST("/doctors", h.AddDoctor)
		s.DELETE("/doctors/:name", h.RemoveDoctor)
		s.POST("/services", h.AddService)
		s.DELETE("/services/:name", h.RemoveService)
	}
}
