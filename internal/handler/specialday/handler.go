package specialday

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/specialday"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *specialday.Service
}

func NewHandler(service *specialday.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/websites/:id/special-days", h.Create)
	r.GET("/websites/:id/special-days", h.List)
	r.GET("/special-days/:id", h.Get)
	r.PATCH("/special-days/:id", h.Update)
	r.DELETE("/special-days/:id", h.Delete)
	r.POST("/special-days/:id/slots", h.CreateSlot)
	r.DELETE("/special-days/:id/slots/:slotId", h.DeleteSlot)
}

func (h *Handler) Create(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.CreateSpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	sd, err := h.service.Create(c.Request.Context(), websiteID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, sd)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid special day ID")
		return
	}

	sd, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, sd)
}

func (h *Handler) List(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	days, err := h.service.ListByWebsite(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, days)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid special day ID")
		return
	}

	var req model.UpdateSpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	sd, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, sd)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid special day ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}

func (h *Handler) CreateSlot(c *gin.Context) {
	specialDayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid special day ID")
		return
	}

	var req model.CreateSpecialDaySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), specialDayID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, slot)
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	specialDayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid special day ID")
		return
	}
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		httputil.BadRequest(c, "invalid slot ID")
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), specialDayID, slotID); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}
