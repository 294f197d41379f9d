package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func (r *serviceRepository) Create(ctx context.Context, s *model.Service) error {
	query := `
		INSERT INTO services (
			id, website_id, category_id, name, description,
			duration_minutes, price_cents, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.WebsiteID, s.CategoryID, s.Name, s.Description,
		s.DurationMinutes, s.PriceCents, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, website_id, category_id, name, description,
			   duration_minutes, price_cents, status, created_at, updated_at
		FROM services
		WHERE id = $1
	`
	var s model.Service
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &s, nil
}

func (r *serviceRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]*model.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, website_id, category_id, name, description,
			   duration_minutes, price_cents, status, created_at, updated_at
		FROM services
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build services query: %w", err)
	}

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, s *model.Service) error {
	query := `
		UPDATE services
		SET category_id = $1, name = $2, description = $3,
			duration_minutes = $4, price_cents = $5, status = $6, updated_at = $7
		WHERE id = $8
	`
	s.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		s.CategoryID, s.Name, s.Description,
		s.DurationMinutes, s.PriceCents, s.Status, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service not found")
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service not found")
	}
	return nil
}

func (r *serviceRepository) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Service, error) {
	query := `
		SELECT id, website_id, category_id, name, description,
			   duration_minutes, price_cents, status, created_at, updated_at
		FROM services
		WHERE website_id = $1
		ORDER BY name ASC
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) CreateCategory(ctx context.Context, c *model.ServiceCategory) error {
	query := `
		INSERT INTO service_categories (id, website_id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.WebsiteID, c.Name, c.SortOrder, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service category: %w", err)
	}
	return nil
}

func (r *serviceRepository) ListCategories(ctx context.Context, websiteID uuid.UUID) ([]*model.ServiceCategory, error) {
	query := `
		SELECT id, website_id, name, sort_order, created_at, updated_at
		FROM service_categories
		WHERE website_id = $1
		ORDER BY sort_order ASC, name ASC
	`
	var categories []*model.ServiceCategory
	if err := r.db.SelectContext(ctx, &categories, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list service categories: %w", err)
	}
	return categories, nil
}

func (r *serviceRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM service_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service category not found")
	}
	return nil
}
