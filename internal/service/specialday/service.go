package specialday

import (
	"context"
	"fmt"
	"time"

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

// Service manages per-date schedule overrides and their split-shift
// slots. One override per website per date; the repository enforces
// the uniqueness.
type Service struct {
	repo        repository.SpecialDayRepository
	invalidator Invalidator
}

func NewService(repo repository.SpecialDayRepository, invalidator Invalidator) *Service {
	return &Service{repo: repo, invalidator: invalidator}
}

func (s *Service) Create(ctx context.Context, websiteID uuid.UUID, req *model.CreateSpecialDayRequest) (*model.SpecialDay, error) {
	date, err := time.Parse(model.DateOnly, req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}
	if req.IsOpen {
		if err := validateRange(req.OpenTime, req.CloseTime); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.ListByWebsite(ctx, websiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list special days: %w", err)
	}
	for _, sd := range existing {
		if schedule.SameDate(sd.Date, date) {
			return nil, apperrors.Conflict("an override for that date already exists", nil)
		}
	}

	sd := &model.SpecialDay{
		WebsiteID: websiteID,
		Date:      date,
		IsOpen:    req.IsOpen,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Note:      req.Note,
	}
	if err := s.repo.Create(ctx, sd); err != nil {
		return nil, fmt.Errorf("failed to create special day: %w", err)
	}

	s.invalidate(websiteID)
	return sd, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.SpecialDay, error) {
	sd, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("special day", err)
	}
	return sd, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSpecialDayRequest) (*model.SpecialDay, error) {
	sd, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("special day", err)
	}

	if req.IsOpen != nil {
		sd.IsOpen = *req.IsOpen
	}
	if req.OpenTime != nil {
		sd.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		sd.CloseTime = *req.CloseTime
	}
	if req.Note != nil {
		sd.Note = *req.Note
	}

	if sd.IsOpen {
		if err := validateRange(sd.OpenTime, sd.CloseTime); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, sd); err != nil {
		return nil, fmt.Errorf("failed to update special day: %w", err)
	}

	s.invalidate(sd.WebsiteID)
	return sd, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	sd, err := s.repo.Get(ctx, id)
	if err != nil {
		return apperrors.NotFound("special day", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete special day: %w", err)
	}
	s.invalidate(sd.WebsiteID)
	return nil
}

func (s *Service) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDay, error) {
	return s.repo.ListByWebsite(ctx, websiteID)
}

// CreateSlot adds a split-shift interval to an open special day. Any
// slot rows supersede the parent's single open range.
func (s *Service) CreateSlot(ctx context.Context, specialDayID uuid.UUID, req *model.CreateSpecialDaySlotRequest) (*model.SpecialDaySlot, error) {
	sd, err := s.repo.Get(ctx, specialDayID)
	if err != nil {
		return nil, apperrors.NotFound("special day", err)
	}
	if !sd.IsOpen {
		return nil, apperrors.BadRequest("cannot add slots to a closed day", nil)
	}
	if err := validateRange(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	slot := &model.SpecialDaySlot{
		SpecialDayID: specialDayID,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		SortOrder:    req.SortOrder,
	}
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create special day slot: %w", err)
	}

	s.invalidate(sd.WebsiteID)
	return slot, nil
}

func (s *Service) DeleteSlot(ctx context.Context, specialDayID, slotID uuid.UUID) error {
	sd, err := s.repo.Get(ctx, specialDayID)
	if err != nil {
		return apperrors.NotFound("special day", err)
	}
	if err := s.repo.DeleteSlot(ctx, slotID); err != nil {
		return fmt.Errorf("failed to delete special day slot: %w", err)
	}
	s.invalidate(sd.WebsiteID)
	return nil
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
