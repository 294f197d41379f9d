package model

import "github.com/google/uuid"

type ServiceCategory struct {
	Base
	WebsiteID uuid.UUID `db:"website_id" json:"website_id"`
	Name      string    `db:"name" json:"name"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
}

type Service struct {
	Base
	WebsiteID       uuid.UUID  `db:"website_id" json:"website_id"`
	CategoryID      *uuid.UUID `db:"category_id" json:"category_id,omitempty"`
	Name            string     `db:"name" json:"name"`
	Description     string     `db:"description" json:"description,omitempty"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64      `db:"price_cents" json:"price_cents"`
	Status          string     `db:"status" json:"status"`
}

type CreateServiceRequest struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Name            string     `json:"name" binding:"required,max=120"`
	Description     string     `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int64      `json:"price_cents" binding:"min=0"`
}

type UpdateServiceRequest struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Name            *string    `json:"name" binding:"omitempty,max=120"`
	Description     *string    `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
	PriceCents      *int64     `json:"price_cents" binding:"omitempty,min=0"`
	Status          *string    `json:"status" binding:"omitempty,oneof=active archived"`
}
