package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	"github.com/neumorstudio/plantillas-api/internal/schedule"
	"github.com/neumorstudio/plantillas-api/internal/service/availability"
	"github.com/neumorstudio/plantillas-api/internal/service/event"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
	"github.com/neumorstudio/plantillas-api/pkg/metrics"
)

type Service struct {
	repo     repository.BookingRepository
	services repository.ServiceRepository
	avail    *availability.Service
	events   *event.Service
	metrics  *metrics.Metrics

	now func() time.Time
}

func NewService(
	repo repository.BookingRepository,
	services repository.ServiceRepository,
	avail *availability.Service,
	events *event.Service,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:     repo,
		services: services,
		avail:    avail,
		events:   events,
		metrics:  m,
		now:      time.Now,
	}
}

// WithNow overrides the clock; used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateBooking validates the requested slot against the resolved
// schedule and existing bookings, then inserts conditionally. The
// insert is the authoritative conflict check: two concurrent
// submissions for the same slot cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, websiteID uuid.UUID, req *model.CreateBookingRequest) (*model.Booking, error) {
	date, err := time.Parse(model.DateOnly, req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	today := s.now()
	if date.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, date.Location())) {
		return nil, apperrors.BadRequest("cannot book a past date", nil)
	}

	duration, err := s.totalDuration(ctx, websiteID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	day, err := s.avail.DayScheduleFor(ctx, websiteID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	start := schedule.ParseClock(req.StartTime)
	if !fitsSchedule(day, start, duration) {
		return nil, apperrors.BadRequest("requested time is outside business hours", nil)
	}

	booked, err := s.repo.ListForDay(ctx, websiteID, date, req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if schedule.OverlapsAny(start, start+duration, schedule.BookedIntervals(booked)) {
		if s.metrics != nil {
			s.metrics.BookingConflicts.Inc()
		}
		return nil, apperrors.Conflict("slot is no longer available", nil)
	}

	b := &model.Booking{
		WebsiteID:       websiteID,
		ProfessionalID:  req.ProfessionalID,
		Date:            date,
		StartTime:       schedule.FormatClock(start),
		DurationMinutes: duration,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Note:            req.Note,
		Status:          model.BookingStatusConfirmed,
		ServiceIDs:      req.ServiceIDs,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			if s.metrics != nil {
				s.metrics.BookingConflicts.Inc()
			}
			return nil, apperrors.Conflict("slot is no longer available", err)
		}
		if s.metrics != nil {
			s.metrics.BookingWriteErrors.Inc()
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}
	s.emit(ctx, model.EventBookingCreated, b)
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("booking", err)
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, websiteID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	bookings, err := s.repo.List(ctx, websiteID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ConfirmBooking moves a pending booking to confirmed.
func (s *Service) ConfirmBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("booking", err)
	}
	if b.Status != model.BookingStatusPending {
		return nil, apperrors.Conflict("only pending bookings can be confirmed", nil)
	}

	b.Status = model.BookingStatusConfirmed
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.trackStatus(b.Status)
	s.emit(ctx, model.EventBookingConfirmed, b)
	return b, nil
}

// CancelBooking frees the slot: cancelled bookings no longer count
// against availability.
func (s *Service) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("booking", err)
	}
	if b.Status == model.BookingStatusCancelled {
		return nil, apperrors.Conflict("booking is already cancelled", nil)
	}
	if b.Status == model.BookingStatusCompleted {
		return nil, apperrors.Conflict("cannot cancel a completed booking", nil)
	}

	b.Status = model.BookingStatusCancelled
	b.CancelReason = &reason
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.trackStatus(b.Status)
	s.emit(ctx, model.EventBookingCancelled, b)
	return b, nil
}

// CompleteBooking marks a confirmed booking completed after the visit.
func (s *Service) CompleteBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("booking", err)
	}
	if b.Status != model.BookingStatusConfirmed {
		return nil, apperrors.Conflict("only confirmed bookings can be completed", nil)
	}

	b.Status = model.BookingStatusCompleted
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}

	s.trackStatus(b.Status)
	s.emit(ctx, model.EventBookingCompleted, b)
	return b, nil
}

// DeleteBooking removes a booking record; only cancelled bookings may
// be deleted so history stays intact.
func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return apperrors.NotFound("booking", err)
	}
	if b.Status != model.BookingStatusCancelled {
		return apperrors.Conflict("only cancelled bookings can be deleted", nil)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) totalDuration(ctx context.Context, websiteID uuid.UUID, serviceIDs []uuid.UUID) (int, error) {
	if len(serviceIDs) == 0 {
		return 0, apperrors.BadRequest("at least one service is required", nil)
	}

	services, err := s.services.GetMany(ctx, serviceIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to load services: %w", err)
	}
	if len(services) != len(serviceIDs) {
		return 0, apperrors.BadRequest("unknown service", nil)
	}

	total := 0
	for _, svc := range services {
		if svc.WebsiteID != websiteID {
			return 0, apperrors.BadRequest("service does not belong to website", nil)
		}
		total += svc.DurationMinutes
	}
	if total <= 0 {
		return 0, apperrors.BadRequest("selected services have no duration", nil)
	}
	return total, nil
}

// fitsSchedule reports whether [start, start+duration) lies entirely
// inside one of the day's open intervals.
func fitsSchedule(day schedule.DaySchedule, start, duration int) bool {
	if !day.Open {
		return false
	}
	for _, iv := range day.Intervals {
		if start >= iv.Start && start+duration <= iv.End {
			return true
		}
	}
	return false
}

func (s *Service) trackStatus(status model.BookingStatus) {
	if s.metrics != nil {
		s.metrics.BookingsByStatus.WithLabelValues(string(status)).Inc()
	}
}

// emit records the event in the outbox; losing an event must not fail
// the booking write itself.
func (s *Service) emit(ctx context.Context, eventType string, b *model.Booking) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(ctx, eventType, b); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Str("booking_id", b.ID.String()).
			Msg("failed to emit booking event")
	}
}
