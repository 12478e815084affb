package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicflow/ledger-api/internal/handler"
	"github.com/clinicflow/ledger-api/internal/model"
	"github.com/clinicflow/ledger-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bookings})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req model.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	id := model.BookingID(c.Param("id"))
	if err := h.service.UpdateBooking(c.Request.Context(), id, req); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id := model.BookingID(c.Param("id"))
	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) PrefillPatient(c *gin.Context) {
	id := model.BookingID(c.Param("id"))
	prefill, err := h.service.PrefillPatient(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	if prefill == nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": prefill})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.GET("/:id/prefill", h.PrefillPatient)
	}
}
