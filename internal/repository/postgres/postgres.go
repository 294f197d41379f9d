package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/neumorstudio/plantillas-api/internal/repository"
)

type websiteRepository struct {
	db *sqlx.DB
}

type professionalRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type hoursRepository struct {
	db *sqlx.DB
}

type specialDayRepository struct {
	db *sqlx.DB
}

type bookingRepository struct {
	db *sqlx.DB
}

type outboxRepository struct {
	db *sqlx.DB
}

func NewWebsiteRepository(db *sqlx.DB) repository.WebsiteRepository {
	return &websiteRepository{db: db}
}

func NewProfessionalRepository(db *sqlx.DB) repository.ProfessionalRepository {
	return &professionalRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewHoursRepository(db *sqlx.DB) repository.HoursRepository {
	return &hoursRepository{db: db}
}

func NewSpecialDayRepository(db *sqlx.DB) repository.SpecialDayRepository {
	return &specialDayRepository{db: db}
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func NewOutboxRepository(db *sqlx.DB) repository.OutboxRepository {
	return &outboxRepository{db: db}
}
