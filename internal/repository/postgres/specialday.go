package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func (r *specialDayRepository) Create(ctx context.Context, sd *model.SpecialDay) error {
	query := `
		INSERT INTO special_days (
			id, website_id, date, is_open, open_time, close_time, note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	sd.ID = uuid.New()
	sd.CreatedAt = time.Now()
	sd.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		sd.ID, sd.WebsiteID, sd.Date, sd.IsOpen, sd.OpenTime, sd.CloseTime, sd.Note,
		sd.CreatedAt, sd.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create special day: %w", err)
	}
	return nil
}

func (r *specialDayRepository) Get(ctx context.Context, id uuid.UUID) (*model.SpecialDay, error) {
	query := `
		SELECT id, website_id, date, is_open, open_time, close_time, note,
			   created_at, updated_at
		FROM special_days
		WHERE id = $1
	`
	var sd model.SpecialDay
	if err := r.db.GetContext(ctx, &sd, query, id); err != nil {
		return nil, fmt.Errorf("failed to get special day: %w", err)
	}
	return &sd, nil
}

func (r *specialDayRepository) Update(ctx context.Context, sd *model.SpecialDay) error {
	query := `
		UPDATE special_days
		SET is_open = $1, open_time = $2, close_time = $3, note = $4, updated_at = $5
		WHERE id = $6
	`
	sd.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		sd.IsOpen, sd.OpenTime, sd.CloseTime, sd.Note, sd.UpdatedAt, sd.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update special day: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("special day not found")
	}
	return nil
}

func (r *specialDayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM special_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete special day: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("special day not found")
	}
	return nil
}

func (r *specialDayRepository) ListByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDay, error) {
	query := `
		SELECT id, website_id, date, is_open, open_time, close_time, note,
			   created_at, updated_at
		FROM special_days
		WHERE website_id = $1
		ORDER BY date ASC
	`
	var days []model.SpecialDay
	if err := r.db.SelectContext(ctx, &days, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list special days: %w", err)
	}
	return days, nil
}

func (r *specialDayRepository) CreateSlot(ctx context.Context, s *model.SpecialDaySlot) error {
	query := `
		INSERT INTO special_day_slots (
			id, special_day_id, open_time, close_time, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.SpecialDayID, s.OpenTime, s.CloseTime, s.SortOrder,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create special day slot: %w", err)
	}
	return nil
}

func (r *specialDayRepository) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM special_day_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete special day slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("special day slot not found")
	}
	return nil
}

func (r *specialDayRepository) ListSlotsByWebsite(ctx context.Context, websiteID uuid.UUID) ([]model.SpecialDaySlot, error) {
	query := `
		SELECT s.id, s.special_day_id, s.open_time, s.close_time, s.sort_order,
			   s.created_at, s.updated_at
		FROM special_day_slots s
		JOIN special_days sd ON sd.id = s.special_day_id
		WHERE sd.website_id = $1
		ORDER BY s.sort_order ASC
	`
	var slots []model.SpecialDaySlot
	if err := r.db.SelectContext(ctx, &slots, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list special day slots: %w", err)
	}
	return slots, nil
}
