package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecialDay overrides the recurring schedule for one exact calendar
// date: a holiday closure, custom event hours, or a one-off shift.
// At most one row per website per date.
type SpecialDay struct {
	Base
	WebsiteID uuid.UUID `db:"website_id" json:"website_id"`
	Date      time.Time `db:"date" json:"date"`
	IsOpen    bool      `db:"is_open" json:"is_open"`
	OpenTime  string    `db:"open_time" json:"open_time"`
	CloseTime string    `db:"close_time" json:"close_time"`
	Note      string    `db:"note" json:"note,omitempty"`
}

// SpecialDaySlot is the split-shift variant for a special day. When any
// rows exist they take precedence over the parent's single range.
type SpecialDaySlot struct {
	Base
	SpecialDayID uuid.UUID `db:"special_day_id" json:"special_day_id"`
	OpenTime     string    `db:"open_time" json:"open_time"`
	CloseTime    string    `db:"close_time" json:"close_time"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
}

type CreateSpecialDayRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time" binding:"required_if=IsOpen true,omitempty,max=5"`
	CloseTime string `json:"close_time" binding:"required_if=IsOpen true,omitempty,max=5"`
	Note      string `json:"note" binding:"omitempty,max=500"`
}

type UpdateSpecialDayRequest struct {
	IsOpen    *bool   `json:"is_open"`
	OpenTime  *string `json:"open_time" binding:"omitempty,max=5"`
	CloseTime *string `json:"close_time" binding:"omitempty,max=5"`
	Note      *string `json:"note" binding:"omitempty,max=500"`
}

type CreateSpecialDaySlotRequest struct {
	OpenTime  string `json:"open_time" binding:"required,max=5"`
	CloseTime string `json:"close_time" binding:"required,max=5"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}
