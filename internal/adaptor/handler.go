package adaptor

import (
	"gatetogether/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Checkin *CheckinHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Checkin: NewCheckinHandler(service.Checkin, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}
