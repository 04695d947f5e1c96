package usecase

import (
	"context"
	"fmt"

	"gatetogether/internal/data/entity"
	"gatetogether/internal/data/repository"
	"gatetogether/internal/dto/request"
	"gatetogether/internal/dto/response"
	"gatetogether/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListBookings(ctx context.Context, page, perPage int) (*response.BookingListResponse, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// ListBookings returns bookings newest first with a total count
func (s *adminService) ListBookings(ctx context.Context, page, perPage int) (*response.BookingListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	bookings, err := s.repo.Booking.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = response.BookingToResponse(b)
	}

	return &response.BookingListResponse{
		Bookings: items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}

func (s *adminService) UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.UpdatePaymentStatus(ctx, id, entity.PaymentStatus(req.PaymentStatus))
	if err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update payment status")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	s.log.Info("Payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.PaymentStatus),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}
