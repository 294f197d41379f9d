package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/catalog"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/websites/:id/services", h.CreateService)
	r.GET("/websites/:id/services", h.ListServices)
	r.GET("/services/:id", h.GetService)
	r.PATCH("/services/:id", h.UpdateService)
	r.DELETE("/services/:id", h.DeleteService)

	r.POST("/websites/:id/categories", h.CreateCategory)
	r.GET("/websites/:id/categories", h.ListCategories)
	r.DELETE("/categories/:id", h.DeleteCategory)

	r.POST("/websites/:id/professionals", h.CreateProfessional)
	r.GET("/websites/:id/professionals", h.ListProfessionals)
	r.GET("/professionals/:id", h.GetProfessional)
	r.PATCH("/professionals/:id", h.UpdateProfessional)
	r.DELETE("/professionals/:id", h.DeleteProfessional)
}

func (h *Handler) CreateService(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), websiteID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, svc)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid service ID")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid service ID")
		return
	}

	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid service ID")
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}

func (h *Handler) ListServices(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, services)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required,max=120"`
		SortOrder int    `json:"sort_order" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), websiteID, req.Name, req.SortOrder)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	categories, err := h.service.ListCategories(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, categories)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}

func (h *Handler) CreateProfessional(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	var req model.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.CreateProfessional(c.Request.Context(), websiteID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.Created(c, p)
}

func (h *Handler) ListProfessionals(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	professionals, err := h.service.ListProfessionals(c.Request.Context(), websiteID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, professionals)
}

func (h *Handler) GetProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid professional ID")
		return
	}

	p, err := h.service.GetProfessional(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, p)
}

func (h *Handler) UpdateProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid professional ID")
		return
	}

	var req model.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	p, err := h.service.UpdateProfessional(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, p)
}

func (h *Handler) DeleteProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid professional ID")
		return
	}

	if err := h.service.DeleteProfessional(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"deleted": true})
}
