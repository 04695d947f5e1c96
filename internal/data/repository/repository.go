package repository

import (
	"gatetogether/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
	Counter CounterRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Counter: NewCounterRepository(db, log),
	}
}
