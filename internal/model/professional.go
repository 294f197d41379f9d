package model

import "github.com/google/uuid"

type Professional struct {
	Base
	WebsiteID uuid.UUID `db:"website_id" json:"website_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email,omitempty"`
	Bio       string    `db:"bio" json:"bio,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}

type CreateProfessionalRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"omitempty,email"`
	Bio   string `json:"bio" binding:"omitempty,max=2000"`
}

type UpdateProfessionalRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Bio      *string `json:"bio" binding:"omitempty,max=2000"`
	IsActive *bool   `json:"is_active"`
}
