package usecase

import (
	"context"
	"fmt"
	"time"

	"gatetogether/internal/data/repository"
	"gatetogether/internal/dto/response"
	"gatetogether/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckinService interface {
	CheckIn(ctx context.Context, tokenStr string) (*response.CheckinData, error)
}

type checkinService struct {
	repo   *repository.Repository
	issuer *token.Issuer
	log    *zap.Logger
}

func NewCheckinService(repo *repository.Repository, issuer *token.Issuer, log *zap.Logger) CheckinService {
	return &checkinService{
		repo:   repo,
		issuer: issuer,
		log:    log.With(zap.String("service", "checkin")),
	}
}

// CheckIn validates a presented token, resolves it to a booking and performs
// the idempotent check-in transition. Re-scanning an already checked-in
// ticket succeeds and reports the original check-in time.
func (s *checkinService) CheckIn(ctx context.Context, tokenStr string) (*response.CheckinData, error) {
	// 1. Token must be present
	if tokenStr == "" {
		return nil, fmt.Errorf("token required")
	}

	// 2. Token must verify; callers only ever see the generic message
	claims, err := s.issuer.Verify(tokenStr)
	if err != nil {
		s.log.Warn("Check-in token rejected", zap.Error(err))
		return nil, fmt.Errorf("invalid or expired token")
	}

	bookingID, err := uuid.Parse(claims.BookingID)
	if err != nil {
		s.log.Warn("Check-in token carries malformed booking id",
			zap.String("booking_id", claims.BookingID))
		return nil, fmt.Errorf("invalid or expired token")
	}

	// 3. Claims must resolve to a stored booking. Absence is a distinct
	// outcome from a bad token so the client can branch.
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to resolve booking for check-in",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to process check-in")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	// 4. Stored token, when present, must match the presented one byte for
	// byte. Guards against stale tokens should rotation ever be added.
	if booking.QRToken != nil && *booking.QRToken != tokenStr {
		s.log.Warn("Check-in token mismatch",
			zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("invalid or expired token")
	}

	// 5/6. Atomic conditional transition; a no-op when already checked in
	booking, err = s.repo.Booking.MarkCheckedIn(ctx, bookingID, time.Now())
	if err != nil {
		s.log.Error("Failed to mark checked in",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to process check-in")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	s.log.Info("Check-in accepted",
		zap.String("booking_id", bookingID.String()),
		zap.String("email", booking.Email),
		zap.Bool("checked_in", booking.CheckedIn),
	)

	return response.CheckinToResponse(booking), nil
}
