package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gatetogether/internal/data/entity"
	"gatetogether/internal/data/repository"
	"gatetogether/internal/dto/request"
	"gatetogether/internal/dto/response"
	"gatetogether/pkg/mailer"
	"gatetogether/pkg/qr"
	"gatetogether/pkg/token"
	"gatetogether/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	CheckEmail(ctx context.Context, email string) (*response.CheckEmailResponse, error)
	LookupByEmail(ctx context.Context, email string) (*response.LookupResponse, error)
}

type bookingService struct {
	repo       *repository.Repository
	issuer     *token.Issuer
	dispatcher mailer.Dispatcher
	config     *utils.Config
	log        *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	issuer *token.Issuer,
	dispatcher mailer.Dispatcher,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:       repo,
		issuer:     issuer,
		dispatcher: dispatcher,
		config:     config,
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := utils.NormalizeEmail(req.Email)

	// 2. Reserve a sequence value for the ticket number. A later duplicate
	// conflict leaves a gap in the numbering; gaps are fine.
	seq, err := s.repo.Counter.Next(ctx, entity.CounterBooking)
	if err != nil {
		s.log.Error("Failed to allocate sequence", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to allocate ticket number")
	}

	ticketNumber := utils.FormatTicketNumber(
		s.config.Ticket.Prefix,
		time.Now().Year(),
		seq,
		s.config.Ticket.SeqWidth,
	)

	// 3. Create the booking. Duplicate email is caught by the store's
	// unique index, not by a pre-check.
	now := time.Now()
	booking := &entity.Booking{
		ID:               uuid.New(),
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Email:            email,
		Phone:            req.Phone,
		EnrollmentNumber: req.EnrollmentNumber,
		CampusBus:        req.CampusBus,
		Boarding:         req.Boarding,
		PaymentStatus:    entity.PaymentStatusPending,
		TicketNumber:     &ticketNumber,
		CheckedIn:        false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Warn("Duplicate registration attempt", zap.String("email", email))
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create booking")
	}

	// 4. Issue the check-in token and attach it. If attaching fails the
	// booking stays tokenless (qr_token IS NULL) for reconciliation; the
	// attendee is not registered twice.
	signed, err := s.issuer.Issue(booking.ID, email)
	if err != nil {
		s.log.Error("Failed to issue check-in token",
			zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to issue ticket")
	}

	if err := s.repo.Booking.AttachToken(ctx, booking.ID, signed); err != nil {
		s.log.Error("Failed to attach check-in token",
			zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to issue ticket")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("ticket_number", ticketNumber),
		zap.String("email", email),
	)

	// 5. Render and deliver the ticket, best-effort. The booking is durable
	// at this point; nothing below can undo it.
	resp := &response.CreateBookingResponse{
		BookingID:    booking.ID.String(),
		TicketNumber: ticketNumber,
		EmailSent:    true,
	}

	if err := s.deliverTicket(ctx, booking, signed); err != nil {
		s.log.Error("Failed to deliver ticket email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("email", email),
		)
		resp.EmailSent = false
		resp.Message = "Booking created but the ticket email could not be sent. Use the lookup by email to retrieve your ticket."
	}

	return resp, nil
}

// deliverTicket renders the QR, composes the email and dispatches it
func (s *bookingService) deliverTicket(ctx context.Context, booking *entity.Booking, signed string) error {
	checkinURL := fmt.Sprintf("%s/checkin?token=%s", s.config.App.BaseURL, signed)

	png, err := qr.Render(checkinURL, qr.DefaultSize)
	if err != nil {
		return fmt.Errorf("render qr: %w", err)
	}

	payload, err := composeTicketMail(booking, png, checkinURL)
	if err != nil {
		return fmt.Errorf("compose ticket mail: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.Email.TimeoutSeconds)*time.Second)
	defer cancel()

	return s.dispatcher.Send(sendCtx, payload)
}

func (s *bookingService) CheckEmail(ctx context.Context, email string) (*response.CheckEmailResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("validation failed: email is required")
	}

	booking, err := s.repo.Booking.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}

	return &response.CheckEmailResponse{Exists: booking != nil}, nil
}

func (s *bookingService) LookupByEmail(ctx context.Context, email string) (*response.LookupResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("validation failed: email is required")
	}

	booking, err := s.repo.Booking.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		s.log.Error("Failed to look up booking", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to look up booking")
	}

	// Legitimate absence is not an error
	if booking == nil {
		return &response.LookupResponse{Found: false}, nil
	}

	return &response.LookupResponse{
		Found: true,
		Data:  response.AttendeeToResponse(booking),
	}, nil
}
