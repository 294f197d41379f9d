package model

type Website struct {
	Base
	Name            string    `db:"name" json:"name"`
	Slug            string    `db:"slug" json:"slug"`
	Timezone        string    `db:"timezone" json:"timezone"`
	SlotStepMinutes int       `db:"slot_step_minutes" json:"slot_step_minutes"`
	Status          string    `db:"status" json:"status"`
}

type CreateWebsiteRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Slug            string `json:"slug" binding:"required,max=120"`
	Timezone        string `json:"timezone" binding:"omitempty,max=64"`
	SlotStepMinutes int    `json:"slot_step_minutes" binding:"omitempty,min=5,max=120"`
}

type UpdateWebsiteRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=120"`
	Timezone        *string `json:"timezone" binding:"omitempty,max=64"`
	SlotStepMinutes *int    `json:"slot_step_minutes" binding:"omitempty,min=5,max=120"`
	Status          *string `json:"status" binding:"omitempty,oneof=active suspended"`
}
