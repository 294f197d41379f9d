package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
	apperrors "github.com/neumorstudio/plantillas-api/pkg/errors"
)

// Service manages the bookable offering: services, their categories and
// the professionals who perform them.
type Service struct {
	services      repository.ServiceRepository
	professionals repository.ProfessionalRepository
}

func NewService(services repository.ServiceRepository, professionals repository.ProfessionalRepository) *Service {
	return &Service{services: services, professionals: professionals}
}

func (s *Service) CreateService(ctx context.Context, websiteID uuid.UUID, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		WebsiteID:       websiteID,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Status:          "active",
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("service", err)
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("service", err)
	}

	if req.CategoryID != nil {
		svc.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		svc.PriceCents = *req.PriceCents
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.services.Get(ctx, id); err != nil {
		return apperrors.NotFound("service", err)
	}
	return s.services.Delete(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, websiteID uuid.UUID) ([]*model.Service, error) {
	return s.services.ListByWebsite(ctx, websiteID)
}

func (s *Service) CreateCategory(ctx context.Context, websiteID uuid.UUID, name string, sortOrder int) (*model.ServiceCategory, error) {
	c := &model.ServiceCategory{
		WebsiteID: websiteID,
		Name:      name,
		SortOrder: sortOrder,
	}
	if err := s.services.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, websiteID uuid.UUID) ([]*model.ServiceCategory, error) {
	return s.services.ListCategories(ctx, websiteID)
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.services.DeleteCategory(ctx, id)
}

func (s *Service) CreateProfessional(ctx context.Context, websiteID uuid.UUID, req *model.CreateProfessionalRequest) (*model.Professional, error) {
	p := &model.Professional{
		WebsiteID: websiteID,
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		IsActive:  true,
	}
	if err := s.professionals.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	return p, nil
}

func (s *Service) GetProfessional(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	p, err := s.professionals.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("professional", err)
	}
	return p, nil
}

func (s *Service) UpdateProfessional(ctx context.Context, id uuid.UUID, req *model.UpdateProfessionalRequest) (*model.Professional, error) {
	p, err := s.professionals.Get(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("professional", err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.professionals.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	return p, nil
}

func (s *Service) DeleteProfessional(ctx context.Context, id uuid.UUID) error {
	if _, err := s.professionals.Get(ctx, id); err != nil {
		return apperrors.NotFound("professional", err)
	}
	return s.professionals.Delete(ctx, id)
}

func (s *Service) ListProfessionals(ctx context.Context, websiteID uuid.UUID) ([]*model.Professional, error) {
	return s.professionals.ListByWebsite(ctx, websiteID)
}
