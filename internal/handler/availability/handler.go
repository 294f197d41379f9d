package availability

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/service/availability"
	"github.com/neumorstudio/plantillas-api/pkg/httputil"
)

type Handler struct {
	service *availability.Service
}

func NewHandler(service *availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/websites/:id/availability", h.GetSlots)
	r.GET("/websites/:id/availability/calendar", h.GetCalendar)
}

// GetSlots returns the bookable start times for one date. The services
// chosen by the customer determine how long the slot must be.
func (h *Handler) GetSlots(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	date, err := time.Parse(model.DateOnly, c.Query("date"))
	if err != nil {
		httputil.BadRequest(c, "date is required as YYYY-MM-DD")
		return
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil {
		httputil.BadRequest(c, "invalid service_ids")
		return
	}

	var professionalID *uuid.UUID
	if raw := c.Query("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.BadRequest(c, "invalid professional_id")
			return
		}
		professionalID = &id
	}

	slots, err := h.service.GetSlots(c.Request.Context(), websiteID, date, professionalID, serviceIDs)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{
		"date":  date.Format(model.DateOnly),
		"slots": slots,
	})
}

// GetCalendar returns which dates in [from, to] can be selected at all.
func (h *Handler) GetCalendar(c *gin.Context) {
	websiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, "invalid website ID")
		return
	}

	from, err := time.Parse(model.DateOnly, c.Query("from"))
	if err != nil {
		httputil.BadRequest(c, "from is required as YYYY-MM-DD")
		return
	}
	to, err := time.Parse(model.DateOnly, c.Query("to"))
	if err != nil {
		httputil.BadRequest(c, "to is required as YYYY-MM-DD")
		return
	}

	var professionalID *uuid.UUID
	if raw := c.Query("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.BadRequest(c, "invalid professional_id")
			return
		}
		professionalID = &id
	}

	days, err := h.service.GetCalendar(c.Request.Context(), websiteID, from, to, professionalID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OK(c, gin.H{"days": days})
}

func parseServiceIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
