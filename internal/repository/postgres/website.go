package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func (r *websiteRepository) Create(ctx context.Context, w *model.Website) error {
	query := `
		INSERT INTO websites (
			id, name, slug, timezone, slot_step_minutes, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	w.ID = uuid.New()
	w.CreatedAt = time.Now()
	w.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, w.Slug, w.Timezone, w.SlotStepMinutes, w.Status,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create website: %w", err)
	}
	return nil
}

func (r *websiteRepository) Get(ctx context.Context, id uuid.UUID) (*model.Website, error) {
	query := `
		SELECT id, name, slug, timezone, slot_step_minutes, status,
			   created_at, updated_at
		FROM websites
		WHERE id = $1
	`
	var w model.Website
	if err := r.db.GetContext(ctx, &w, query, id); err != nil {
		return nil, fmt.Errorf("failed to get website: %w", err)
	}
	return &w, nil
}

func (r *websiteRepository) GetBySlug(ctx context.Context, slug string) (*model.Website, error) {
	query := `
		SELECT id, name, slug, timezone, slot_step_minutes, status,
			   created_at, updated_at
		FROM websites
		WHERE slug = $1
	`
	var w model.Website
	if err := r.db.GetContext(ctx, &w, query, slug); err != nil {
		return nil, fmt.Errorf("failed to get website by slug: %w", err)
	}
	return &w, nil
}

func (r *websiteRepository) Update(ctx context.Context, w *model.Website) error {
	query := `
		UPDATE websites
		SET name = $1, timezone = $2, slot_step_minutes = $3, status = $4, updated_at = $5
		WHERE id = $6
	`
	w.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		w.Name, w.Timezone, w.SlotStepMinutes, w.Status, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update website: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("website not found")
	}
	return nil
}

func (r *websiteRepository) List(ctx context.Context) ([]*model.Website, error) {
	query := `
		SELECT id, name, slug, timezone, slot_step_minutes, status,
			   created_at, updated_at
		FROM websites
		ORDER BY created_at ASC
	`
	var websites []*model.Website
	if err := r.db.SelectContext(ctx, &websites, query); err != nil {
		return nil, fmt.Errorf("failed to list websites: %w", err)
	}
	return websites, nil
}
