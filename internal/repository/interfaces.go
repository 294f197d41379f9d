package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

// ErrSlotTaken is returned when a booking insert loses the race for a
// slot: another live booking already holds the same website,
// professional, date and start time.
var ErrSlotTaken = errors.New("slot already booked")

type WebsiteRepository interface {
	Create(ctx context.Context, w *model.Website) error
	Get(ctx context.Context, id uuid.UUID) (*model.Website, error)
	GetBySlug(ctx context.Context, slug string) (*model.Website, error)
	Update(ctx context.Context, w *model.Website) error
	List(ctx context.Context) ([]*model.Website, error)
}

type ProfessionalRepository interface {
	Create(ctx context.Context, p *model.Professional) error
	Get(ctx context.Context, id uuid.UUID) (*model.Professional, error)
	Update(ctx context.Context, p *model.Professional) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Professional, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *model.Service) error
	Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]*model.Service, error)
	Update(ctx context.Context, s *model.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Service, error)

	CreateCategory(ctx context.Context, c *model.ServiceCategory) error
	ListCategories(ctx context.Context, websiteID uuid.UUID) ([]*model.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// HoursRepository covers the two recurring-schedule layers.
type HoursRepository interface {
	UpsertWeeklyHour(ctx context.Context, wh *model.WeeklyHour) error
	ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error)

	CreateHourSlot(ctx context.Context, hs *model.HourSlot) error
	UpdateHourSlot(ctx context.Context, hs *model.HourSlot) error
	DeleteHourSlot(ctx context.Context, id uuid.UUID) error
	GetHourSlot(ctx context.Context, id uuid.UUID) (*model.HourSlot, error)
	ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error)
}

// SpecialDayRepository covers the two date-override layers.
type SpecialDayRepository interface {
	Create(ctx context.Context, sd *model.SpecialDay) error
	Get(ctx context.Context, id uuid.UUID) (*model.SpecialDay, error)
	Update(ctx context.Context, sd *model.SpecialDay) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDay, error)

	CreateSlot(ctx context.Context, s *model.SpecialDaySlot) error
	DeleteSlot(ctx context.Context, id uuid.UUID) error
	ListSlotsByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDaySlot, error)
}

type BookingRepository interface {
	// Create inserts the booking only if no live booking holds the same
	// (website, professional, date, start_time) slot; returns
	// ErrSlotTaken otherwise.
	Create(ctx context.Context, b *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, websiteID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error)
	// ListForDay returns live (pending or confirmed) bookings for a
	// date, optionally narrowed to one professional.
	ListForDay(ctx context.Context, websiteID uuid.UUID, date time.Time, professionalID *uuid.UUID) ([]model.Booking, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}
