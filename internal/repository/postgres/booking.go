package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neumorstudio/plantillas-api/internal/model"
	"github.com/neumorstudio/plantillas-api/internal/repository"
)

// Create inserts the booking with a conditional insert: the partial
// unique index on (website_id, professional_id, date, start_time) for
// live statuses makes concurrent submissions for the same slot lose at
// the storage layer instead of double-booking.
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, website_id, professional_id, date, start_time,
			duration_minutes, customer_name, customer_email, customer_phone,
			note, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING
	`
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		b.ID, b.WebsiteID, b.ProfessionalID, b.Date, b.StartTime,
		b.DurationMinutes, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.Note, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrSlotTaken
	}

	for _, serviceID := range b.ServiceIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO booking_services (booking_id, service_id) VALUES ($1, $2)`,
			b.ID, serviceID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach booking service: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, website_id, professional_id, date, start_time,
			   duration_minutes, customer_name, customer_email, customer_phone,
			   note, status, cancel_reason, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	serviceIDs, err := r.listServiceIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	b.ServiceIDs = serviceIDs
	return &b, nil
}

func (r *bookingRepository) listServiceIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		`SELECT service_id FROM booking_services WHERE booking_id = $1`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking services: %w", err)
	}
	return ids, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *model.Booking) error {
	query := `
		UPDATE bookings
		SET date = $1, start_time = $2, duration_minutes = $3,
			status = $4, cancel_reason = $5, note = $6, updated_at = $7
		WHERE id = $8
	`
	b.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		b.Date, b.StartTime, b.DurationMinutes,
		b.Status, b.CancelReason, b.Note, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking not found")
	}
	return nil
}

func (r *bookingRepository) List(ctx context.Context, websiteID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	query := `
		SELECT id, website_id, professional_id, date, start_time,
			   duration_minutes, customer_name, customer_email, customer_phone,
			   note, status, cancel_reason, created_at, updated_at
		FROM bookings
		WHERE website_id = $1
	`
	args := []interface{}{websiteID}
	argCount := 2

	if filters != nil {
		if filters.ProfessionalID != nil {
			query += fmt.Sprintf(" AND professional_id = $%d", argCount)
			args = append(args, *filters.ProfessionalID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
		if filters.FromDate != nil {
			query += fmt.Sprintf(" AND date >= $%d", argCount)
			args = append(args, *filters.FromDate)
			argCount++
		}
		if filters.ToDate != nil {
			query += fmt.Sprintf(" AND date <= $%d", argCount)
			args = append(args, *filters.ToDate)
			argCount++
		}
	}

	query += " ORDER BY date ASC, start_time ASC"

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListForDay returns the live bookings that occupy slots on the given
// date. When professionalID is nil, bookings across all professionals
// are returned, including unassigned ones.
func (r *bookingRepository) ListForDay(ctx context.Context, websiteID uuid.UUID, date time.Time, professionalID *uuid.UUID) ([]model.Booking, error) {
	query := `
		SELECT id, website_id, professional_id, date, start_time,
			   duration_minutes, customer_name, customer_email, customer_phone,
			   note, status, cancel_reason, created_at, updated_at
		FROM bookings
		WHERE website_id = $1
		AND date = $2
		AND status IN ('pending', 'confirmed')
	`
	args := []interface{}{websiteID, date}

	if professionalID != nil {
		query += " AND (professional_id = $3 OR professional_id IS NULL)"
		args = append(args, *professionalID)
	}

	query += " ORDER BY start_time ASC"

	var bookings []model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings for day: %w", err)
	}
	return bookings, nil
}
