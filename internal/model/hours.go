package model

import "github.com/google/uuid"

// WeeklyHour is the default recurring schedule: at most one row per
// weekday per website. Days of week use the Monday=0 convention.
type WeeklyHour struct {
	Base
	WebsiteID uuid.UUID `db:"website_id" json:"website_id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"`
	IsOpen    bool      `db:"is_open" json:"is_open"`
	OpenTime  string    `db:"open_time" json:"open_time"`
	CloseTime string    `db:"close_time" json:"close_time"`
}

// HourSlot is one contiguous open sub-interval within a weekday,
// enabling split shifts. When any active rows exist for a day they
// supersede the WeeklyHour row for that day entirely.
type HourSlot struct {
	Base
	WebsiteID uuid.UUID `db:"website_id" json:"website_id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"`
	OpenTime  string    `db:"open_time" json:"open_time"`
	CloseTime string    `db:"close_time" json:"close_time"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}

type PutWeeklyHourRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time" binding:"required_if=IsOpen true,omitempty,max=5"`
	CloseTime string `json:"close_time" binding:"required_if=IsOpen true,omitempty,max=5"`
}

type CreateHourSlotRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time" binding:"required,max=5"`
	CloseTime string `json:"close_time" binding:"required,max=5"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

type UpdateHourSlotRequest struct {
	OpenTime  *string `json:"open_time" binding:"omitempty,max=5"`
	CloseTime *string `json:"close_time" binding:"omitempty,max=5"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
	IsActive  *bool   `json:"is_active"`
}
