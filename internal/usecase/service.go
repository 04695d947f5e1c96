package usecase

import (
	"time"

	"gatetogether/internal/data/repository"
	"gatetogether/pkg/mailer"
	"gatetogether/pkg/token"
	"gatetogether/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Checkin CheckinService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	issuer := token.NewIssuer(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryDays)*24*time.Hour,
	)
	dispatcher := mailer.NewSMTPDispatcher(config.Email, log)

	return &Service{
		Booking: NewBookingService(repo, issuer, dispatcher, config, log),
		Checkin: NewCheckinService(repo, issuer, log),
		Admin:   NewAdminService(repo, log),
	}
}
