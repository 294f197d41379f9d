package website

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
)

type Service struct {
	repo repository.WebsiteRepository
}

func NewService(repo repository.WebsiteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateWebsite(ctx context.Context, req *model.CreateWebsiteRequest) (*model.Website, error) {
	if existing, err := s.repo.GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, apperrors.Conflict("slug already in use", nil)
	}

	w := &model.Website{
		Name:            req.Name,
		Slug:            req.Slug,
		Timezone:        req.Timezone,
		SlotStepMinutes: req.SlotStepMinutes,
		Status:          "active",
	}
	if w.Timezone == "" {
		w.Timezone = "UTC"
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create website: %w", err)
	}
	return w, nil
}

func (s *Service) GetWebsite(ctx context.Context, id uuid.UUID) (*model.Website, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("website", err)
	}
	return w, nil
}

func (s *Service) GetWebsiteBySlug(ctx context.Context, slug string) (*model.Website, error) {
	w, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.NotFound("website", err)
	}
	return w, nil
}

func (s *Service) UpdateWebsite(ctx context.Context, id uuid.UUID, req *model.UpdateWebsiteRequest) (*model.Website, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("website", err)
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Timezone != nil {
		w.Timezone = *req.Timezone
	}
	if req.SlotStepMinutes != nil {
		w.SlotStepMinutes = *req.SlotStepMinutes
	}
	if req.Status != nil {
		w.Status = *req.Status
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to update website: %w", err)
	}
	return w, nil
}

func (s *Service) ListWebsites(ctx context.Context) ([]*model.Website, error) {
	return s.repo.List(ctx)
}
