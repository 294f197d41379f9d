package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func (r *professionalRepository) Create(ctx context.Context, p *model.Professional) error {
	query := `
		INSERT INTO professionals (
			id, website_id, name, email, bio, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.WebsiteID, p.Name, p.Email, p.Bio, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *professionalRepository) Get(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	query := `
		SELECT id, website_id, name, email, bio, is_active, created_at, updated_at
		FROM professionals
		WHERE id = $1
	`
	var p model.Professional
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	return &p, nil
}

func (r *professionalRepository) Update(ctx context.Context, p *model.Professional) error {
	query := `
		UPDATE professionals
		SET name = $1, email = $2, bio = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`
	p.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.Bio, p.IsActive, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("professional not found")
	}
	return nil
}

func (r *professionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM professionals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("professional not found")
	}
	return nil
}

func (r *professionalRepository) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*model.Professional, error) {
	query := `
		SELECT id, website_id, name, email, bio, is_active, created_at, updated_at
		FROM professionals
		WHERE website_id = $1
		ORDER BY name ASC
	`
	var professionals []*model.Professional
	if err := r.db.SelectContext(ctx, &professionals, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return professionals, nil
}
