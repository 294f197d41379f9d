package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	"github.com/neumorstudio/plantillas-api/internal/schedule"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
	"github.com/neumorstudio/plantillas-api/pkg/metrics"
)

// CalendarDay is the per-date selectability flag for the booking calendar.
type CalendarDay struct {
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// Service computes bookable slots from configured hours, date overrides
// and live bookings. It is a pure read path: any fetch failure
// propagates as an error (fail closed) rather than degrading to an
// all-open or all-closed guess.
type Service struct {
	websites repository.WebsiteRepository
	hours    repository.HoursRepository
	specials repository.SpecialDayRepository
	bookings repository.BookingRepository
	services repository.ServiceRepository

	cache    *gocache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics

	// now is injected so past-date exclusion is deterministic in tests.
	now func() time.Time
}

func NewService(
	websites repository.WebsiteRepository,
	hours repository.HoursRepository,
	specials repository.SpecialDayRepository,
	bookings repository.BookingRepository,
	services repository.ServiceRepository,
	cacheTTL time.Duration,
	m *metrics.Metrics,
) *Service {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Service{
		websites: websites,
		hours:    hours,
		specials: specials,
		bookings: bookings,
		services: services,
		cache:    gocache.New(cacheTTL, 5*time.Minute),
		cacheTTL: cacheTTL,
		metrics:  m,
		now:      time.Now,
	}
}

// WithNow overrides the clock; used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetSlots returns every candidate start time for the date, with slots
// that collide with live bookings marked disabled. The requested
// services determine the total duration the slot must fit.
func (s *Service) GetSlots(ctx context.Context, websiteID uuid.UUID, date time.Time, professionalID *uuid.UUID, serviceIDs []uuid.UUID) ([]schedule.Slot, error) {
	if s.metrics != nil {
		s.metrics.AvailabilityRequests.Inc()
		timer := prometheus.NewTimer(s.metrics.AvailabilityLatency)
		defer timer.ObserveDuration()
	}

	website, err := s.websites.Get(ctx, websiteID)
	if err != nil {
		return nil, apperrors.NotFound("website", err)
	}

	duration, err := s.totalDuration(ctx, websiteID, serviceIDs)
	if err != nil {
		return nil, err
	}

	sources, err := s.scheduleSources(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	day := schedule.Resolve(date, *sources)
	if !day.Open {
		return []schedule.Slot{}, nil
	}

	booked, err := s.bookings.ListForDay(ctx, websiteID, date, professionalID)
	if err != nil {
		// Fail closed: without booking data an all-available answer
		// risks overbooking.
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	step := website.SlotStepMinutes
	if step <= 0 {
		step = schedule.DefaultStepMinutes
	}

	slots := schedule.GenerateSlots(day, duration, step, schedule.BookedIntervals(booked))
	if s.metrics != nil {
		s.metrics.SlotsGenerated.Observe(float64(len(slots)))
	}
	if slots == nil {
		slots = []schedule.Slot{}
	}
	return slots, nil
}

// GetCalendar returns one selectability flag per date in [from, to].
// A date is selectable iff it is not in the past and resolves open.
func (s *Service) GetCalendar(ctx context.Context, websiteID uuid.UUID, from, to time.Time, _ *uuid.UUID) ([]CalendarDay, error) {
	if to.Before(from) {
		return nil, apperrors.BadRequest("to must not be before from", nil)
	}
	if to.Sub(from) > 93*24*time.Hour {
		return nil, apperrors.BadRequest("calendar range too large", nil)
	}

	sources, err := s.scheduleSources(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	today := s.now()
	var days []CalendarDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := schedule.Resolve(d, *sources)
		days = append(days, CalendarDay{
			Date:     d.Format(model.DateOnly),
			Disabled: !schedule.DaySelectable(d, today, day),
		})
	}
	return days, nil
}

// DayScheduleFor resolves the open intervals for one date; used by the
// booking write path to validate a requested slot.
func (s *Service) DayScheduleFor(ctx context.Context, websiteID uuid.UUID, date time.Time) (schedule.DaySchedule, error) {
	sources, err := s.scheduleSources(ctx, websiteID)
	if err != nil {
		return schedule.DaySchedule{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	return schedule.Resolve(date, *sources), nil
}

// InvalidateSchedule drops the cached hour rows for a website; called
// after settings writes so changes show up immediately.
func (s *Service) InvalidateSchedule(websiteID uuid.UUID) {
	s.cache.Delete(scheduleCacheKey(websiteID))
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

func scheduleCacheKey(websiteID uuid.UUID) string {
	return "schedule:" + websiteID.String()
}

func (s *Service) scheduleSources(ctx context.Context, websiteID uuid.UUID) (*schedule.Sources, error) {
	key := scheduleCacheKey(websiteID)
	if cached, ok := s.cache.Get(key); ok {
		if s.metrics != nil {
			s.metrics.ScheduleCacheHits.Inc()
		}
		return cached.(*schedule.Sources), nil
	}
	if s.metrics != nil {
		s.metrics.ScheduleCacheMisses.Inc()
	}

	weekly, err := s.hours.ListWeeklyHours(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly hours: %w", err)
	}
	slots, err := s.hours.ListHourSlots(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour slots: %w", err)
	}
	specialDays, err := s.specials.ListByWebsite(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list special days: %w", err)
	}
	specialSlots, err := s.specials.ListSlotsByWebsite(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list special day slots: %w", err)
	}

	sources := &schedule.Sources{
		Weekly:       weekly,
		WeeklySlots:  slots,
		SpecialDays:  specialDays,
		SpecialSlots: specialSlots,
	}
	s.cache.Set(key, sources, s.cacheTTL)
	return sources, nil
}
