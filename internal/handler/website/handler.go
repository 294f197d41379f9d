package website

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/website"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *website.Service
}

func NewHandler(service *website.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/websites", h.CreateWebsite)
	r.GET("/websites", h.ListWebsites)
	r.GET("/websites/:id", h.GetWebsite)
	r.PATCH("/websites/:id", h.UpdateWebsite)
}

func (h *Handler) CreateWebsite(c *gin.Context) {
	var req model.CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	w, err := h.service.CreateWebsite(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, w)
}

func (h *Handler) GetWebsite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Fall back to slug lookup so public pages can address a
		// website by its URL name.
		w, slugErr := h.service.GetWebsiteBySlug(c.Request.Context(), c.Param("id"))
		if slugErr != nil {
			httputil.Error(c, slugErr)
			return
		}
		httputil.OK(c, w)
		return
	}

	w, err := h.service.GetWebsite(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, w)
}

func (h *Handler) UpdateWebsite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.UpdateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	w, err := h.service.UpdateWebsite(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, w)
}

func (h *Handler) ListWebsites(c *gin.Context) {
	websites, err := h.service.ListWebsites(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, websites)
}
