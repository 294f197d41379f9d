package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Occupies reports whether a booking in this status holds its slot.
// Cancelled and completed bookings free the slot.
func (s BookingStatus) Occupies() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Booking struct {
	Base
	WebsiteID       uuid.UUID     `db:"website_id" json:"website_id"`
	ProfessionalID  *uuid.UUID    `db:"professional_id" json:"professional_id,omitempty"`
	Date            time.Time     `db:"date" json:"date"`
	StartTime       string        `db:"start_time" json:"start_time"`
	DurationMinutes int           `db:"duration_minutes" json:"duration_minutes"`
	CustomerName    string        `db:"customer_name" json:"customer_name"`
	CustomerEmail   string        `db:"customer_email" json:"customer_email"`
	CustomerPhone   string        `db:"customer_phone" json:"customer_phone,omitempty"`
	Note            string        `db:"note" json:"note,omitempty"`
	Status          BookingStatus `db:"status" json:"status"`
	CancelReason    *string       `db:"cancel_reason" json:"cancel_reason,omitempty"`
	ServiceIDs      []uuid.UUID   `db:"-" json:"service_ids,omitempty"`
}

type CreateBookingRequest struct {
	ProfessionalID *uuid.UUID  `json:"professional_id"`
	Date           string      `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime      string      `json:"start_time" binding:"required,max=5"`
	ServiceIDs     []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	CustomerName   string      `json:"customer_name" binding:"required,max=120"`
	CustomerEmail  string      `json:"customer_email" binding:"required,email"`
	CustomerPhone  string      `json:"customer_phone" binding:"omitempty,max=32"`
	Note           string      `json:"note" binding:"omitempty,max=1000"`
}

type BookingFilters struct {
	ProfessionalID *uuid.UUID
	Status         BookingStatus
	FromDate       *time.Time
	ToDate         *time.Time
}
