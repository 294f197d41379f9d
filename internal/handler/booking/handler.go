package booking

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/booking"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/websites/:id/bookings", h.CreateBooking)
	r.GET("/websites/:id/bookings", h.ListBookings)
	r.GET("/bookings/:id", h.GetBooking)
	r.POST("/bookings/:id/confirm", h.ConfirmBooking)
	r.POST("/bookings/:id/cancel", h.CancelBooking)
	r.POST("/bookings/:id/complete", h.CompleteBooking)
	r.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), websiteID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid booking ID")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, b)
}

func (h *Handler) ListBookings(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	filters := &model.BookingFilters{}
	if raw := c.Query("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.BadRequest(c, "invalid professional_id")
			return
		}
		filters.ProfessionalID = &id
	}
	if status := c.Query("status"); status != "" {
		filters.Status = model.BookingStatus(status)
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(model.DateOnly, raw)
		if err != nil {
			httputil.BadRequest(c, "invalid from date")
			return
		}
		filters.FromDate = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(model.DateOnly, raw)
		if err != nil {
			httputil.BadRequest(c, "invalid to date")
			return
		}
		filters.ToDate = &to
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), websiteID, filters)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, bookings)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid booking ID")
		return
	}

	b, err := h.service.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, b)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid booking ID")
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httputil.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, b)
}

func (h *Handler) CompleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid booking ID")
		return
	}

	b, err := h.service.CompleteBooking(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, b)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}
