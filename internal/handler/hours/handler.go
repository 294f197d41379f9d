package hours

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/hours"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *hours.Service
}

func NewHandler(service *hours.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/websites/:id/weekly-hours", h.PutWeeklyHours)
	r.GET("/websites/:id/weekly-hours", h.ListWeeklyHours)
	r.POST("/websites/:id/hour-slots", h.CreateHourSlot)
	r.GET("/websites/:id/hour-slots", h.ListHourSlots)
	r.PATCH("/hour-slots/:id", h.UpdateHourSlot)
	r.DELETE("/hour-slots/:id", h.DeleteHourSlot)
}

// PutWeeklyHours replaces the weekly rows sent in the body; days not
// mentioned keep their current row.
func (h *Handler) PutWeeklyHours(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req struct {
		Hours []model.PutWeeklyHourRequest `json:"hours" binding:"required,min=1,max=7,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	saved, err := h.service.PutWeeklyHours(c.Request.Context(), websiteID, req.Hours)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, saved)
}

func (h *Handler) ListWeeklyHours(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	rows, err := h.service.ListWeeklyHours(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, rows)
}

func (h *Handler) CreateHourSlot(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.CreateHourSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	slot, err := h.service.CreateHourSlot(c.Request.Context(), websiteID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, slot)
}

func (h *Handler) ListHourSlots(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	slots, err := h.service.ListHourSlots(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, slots)
}

func (h *Handler) UpdateHourSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid hour slot ID")
		return
	}

	var req model.UpdateHourSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	slot, err := h.service.UpdateHourSlot(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, slot)
}

func (h *Handler) DeleteHourSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid hour slot ID")
		return
	}

	if err := h.service.DeleteHourSlot(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}
