package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
)

func (r *hoursRepository) UpsertWeeklyHour(ctx context.Context, wh *model.WeeklyHour) error {
	query := `
		INSERT INTO weekly_hours (
			id, website_id, day_of_week, is_open, open_time, close_time,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (website_id, day_of_week) DO UPDATE
		SET is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = EXCLUDED.updated_at
	`
	if wh.ID == uuid.Nil {
		wh.ID = uuid.New()
	}
	now := time.Now()
	if wh.CreatedAt.IsZero() {
		wh.CreatedAt = now
	}
	wh.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		wh.ID, wh.WebsiteID, wh.DayOfWeek, wh.IsOpen, wh.OpenTime, wh.CloseTime,
		wh.CreatedAt, wh.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert weekly hour: %w", err)
	}
	return nil
}

func (r *hoursRepository) ListWeeklyHours(ctx context.Context, websiteID uuid.UUID) ([]model.WeeklyHour, error) {
	query := `
		SELECT id, website_id, day_of_week, is_open, open_time, close_time,
			   created_at, updated_at
		FROM weekly_hours
		WHERE website_id = $1
		ORDER BY day_of_week ASC
	`
	var hours []model.WeeklyHour
	if err := r.db.SelectContext(ctx, &hours, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list weekly hours: %w", err)
	}
	return hours, nil
}

func (r *hoursRepository) CreateHourSlot(ctx context.Context, hs *model.HourSlot) error {
	query := `
		INSERT INTO hour_slots (
			id, website_id, day_of_week, open_time, close_time,
			sort_order, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	hs.ID = uuid.New()
	hs.CreatedAt = time.Now()
	hs.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		hs.ID, hs.WebsiteID, hs.DayOfWeek, hs.OpenTime, hs.CloseTime,
		hs.SortOrder, hs.IsActive, hs.CreatedAt, hs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create hour slot: %w", err)
	}
	return nil
}

func (r *hoursRepository) UpdateHourSlot(ctx context.Context, hs *model.HourSlot) error {
	query := `
		UPDATE hour_slots
		SET open_time = $1, close_time = $2, sort_order = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`
	hs.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		hs.OpenTime, hs.CloseTime, hs.SortOrder, hs.IsActive, hs.UpdatedAt, hs.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hour slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("hour slot not found")
	}
	return nil
}

func (r *hoursRepository) DeleteHourSlot(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hour_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hour slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("hour slot not found")
	}
	return nil
}

func (r *hoursRepository) GetHourSlot(ctx context.Context, id uuid.UUID) (*model.HourSlot, error) {
	query := `
		SELECT id, website_id, day_of_week, open_time, close_time,
			   sort_order, is_active, created_at, updated_at
		FROM hour_slots
		WHERE id = $1
	`
	var hs model.HourSlot
	if err := r.db.GetContext(ctx, &hs, query, id); err != nil {
		return nil, fmt.Errorf("failed to get hour slot: %w", err)
	}
	return &hs, nil
}

func (r *hoursRepository) ListHourSlots(ctx context.Context, websiteID uuid.UUID) ([]model.HourSlot, error) {
	query := `
		SELECT id, website_id, day_of_week, open_time, close_time,
			   sort_order, is_active, created_at, updated_at
		FROM hour_slots
		WHERE website_id = $1
		ORDER BY day_of_week ASC, sort_order ASC
	`
	var slots []model.HourSlot
	if err := r.db.SelectContext(ctx, &slots, query, websiteID); err != nil {
		return nil, fmt.Errorf("failed to list hour slots: %w", err)
	}
	return slots, nil
}
