package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicflow/ledger-api/internal/handler"
	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/service/export"
)

const contentType = "text/tab-separated-values; charset=utf-8"

type Handler struct {
	service *export.Service
}

func NewHandler(service *export.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ExportBookings(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	body, err := h.service.BookingsTSV(c.Request.Context(), spec)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	attach(c, "bookings", body)
}

func (h *Handler) ExportPatients(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	body, err := h.service.PatientsTSV(c.Request.Context(), spec)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	attach(c, "patients", body)
}

func (h *Handler) ExportReport(c *gin.Context) {
	var spec model.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	body, err := h.service.ReportTSV(c.Request.Context(), spec)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	attach(c, "report", body)
}

func attach(c *gin.Context, name string, body []byte) {
	filename := fmt.Sprintf("%s-%s.xls", name, time.Now().UTC().Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	exports := r.Group("/export")
	{
		exports.GET("/bookings", h.ExportBookings)
		exports.GET("/patients", h.ExportPatients)
		exports.GET("/report", h.ExportReport)
	}
}
