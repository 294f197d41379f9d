package hours

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	"github.com/neumorstudio/plantillas-api/internal/schedule"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
)

// Invalidator drops cached schedule rows after a settings write.
type Invalidator interface {
	InvalidateSchedule(websiteID uuid.UUID)
}

// Service manages the recurring-hours settings: the single weekly row
// per day plus the split-shift hour slots that supersede it.
type Service struct {
	repo        repository.HoursRepository
	invalidator Invalidator
}

func NewService(repo repository.HoursRepository, invalidator Invalidator) *Service {
	return &Service{repo: repo, invalidator: invalidator}
}

func (s *Service) PutWeeklyHours(ctx context.Context, websiteID uuid.UUID, reqs []model.PutWeeklyHourRequest) ([]model.WeeklyHour, error) {
	seen := make(map[int]bool, len(reqs))
	for _, req := range reqs {
		if seen[req.DayOfWeek] {
			return nil, apperrors.BadRequest(fmt.Sprintf("duplicate day_of_week %d", req.DayOfWeek), nil)
		}
		seen[req.DayOfWeek] = true
		if req.IsOpen {
			if err := validateRange(req.OpenTime, req.CloseTime); err != nil {
				return nil, err
			}
		}
	}

	for _, req := range reqs {
		wh := &model.WeeklyHour{
			WebsiteID: websiteID,
			DayOfWeek: req.DayOfWeek,
			IsOpen:    req.IsOpen,
			OpenTime:  req.OpenTime,
			CloseTime: req.CloseTime,
		}
		if err := s.repo.UpsertWeeklyHour(ctx, wh); err != nil {
			return nil, fmt.Errorf("failed to save weekly hours: %w", err)
		}
	}

	s.invalidate(websiteID)
	return s.repo.ListWeeklyHours(ctx, websiteID)
}

func (s *Service) ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error) {
	return s.repo.ListWeeklyHours(ctx, websiteID)
}

func (s *Service) CreateHourSlot(ctx context.Context, websiteID uuid.UUID, req *model.CreateHourSlotRequest) (*model.HourSlot, error) {
	if err := validateRange(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListHourSlots(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour slots: %w", err)
	}
	openMin := schedule.ParseClock(req.OpenTime)
	closeMin := schedule.ParseClock(req.CloseTime)
	for _, hs := range existing {
		if hs.DayOfWeek != req.DayOfWeek || !hs.IsActive {
			continue
		}
		if schedule.OverlapsAny(openMin, closeMin, []schedule.Interval{{
			Start: schedule.ParseClock(hs.OpenTime),
			End:   schedule.ParseClock(hs.CloseTime),
		}}) {
			return nil, apperrors.Conflict("hour slot overlaps an existing slot for that day", nil)
		}
	}

	hs := &model.HourSlot{
		WebsiteID: websiteID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := s.repo.CreateHourSlot(ctx, hs); err != nil {
		return nil, fmt.Errorf("failed to create hour slot: %w", err)
	}

	s.invalidate(websiteID)
	return hs, nil
}

func (s *Service) UpdateHourSlot(ctx context.Context, id uuid.UUID, req *model.UpdateHourSlotRequest) (*model.HourSlot, error) {
	hs, err := s.repo.GetHourSlot(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("hour slot", err)
	}

	if req.OpenTime != nil {
		hs.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		hs.CloseTime = *req.CloseTime
	}
	if req.SortOrder != nil {
		hs.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		hs.IsActive = *req.IsActive
	}

	if err := validateRange(hs.OpenTime, hs.CloseTime); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateHourSlot(ctx, hs); err != nil {
		return nil, fmt.Errorf("failed to update hour slot: %w", err)
	}

	s.invalidate(hs.WebsiteID)
	return hs, nil
}

func (s *Service) DeleteHourSlot(ctx context.Context, id uuid.UUID) error {
	hs, err := s.repo.GetHourSlot(ctx, id)
	if err != nil {
		return apperrors.NotFound("hour slot", err)
	}
	if err := s.repo.DeleteHourSlot(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hour slot: %w", err)
	}
	s.invalidate(hs.WebsiteID)
	return nil
}

func (s *Service) ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error) {
	return s.repo.ListHourSlots(ctx, websiteID)
}

func (s *Service) invalidate(websiteID uuid.UUID) {
	if s.invalidator != nil {
		s.invalidator.InvalidateSchedule(websiteID)
	}
}

func validateRange(openTime, closeTime string) error {
	if schedule.ParseClock(openTime) >= schedule.ParseClock(closeTime) {
		return apperrors.BadRequest("open_time must be before close_time", nil)
	}
	return nil
}
