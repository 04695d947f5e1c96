package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gatetogether/internal/data/entity"
	"gatetogether/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned by Create when the email already has a
// booking. Uniqueness is enforced by the store's unique index, not by a
// read-then-write check, so two concurrent registrations cannot both win.
var ErrDuplicateEmail = errors.New("email already registered")

const pgUniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Booking, error)
	AttachToken(ctx context.Context, id uuid.UUID, token string) error
	MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, firstname, lastname, email, phone, enrollment_number,
	       campus_bus, boarding, payment_status, ticket_number, qr_token,
	       checked_in, checked_in_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Firstname,
		&booking.Lastname,
		&booking.Email,
		&booking.Phone,
		&booking.EnrollmentNumber,
		&booking.CampusBus,
		&booking.Boarding,
		&booking.PaymentStatus,
		&booking.TicketNumber,
		&booking.QRToken,
		&booking.CheckedIn,
		&booking.CheckedInAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts a new booking record
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, firstname, lastname, email, phone, enrollment_number,
		                      campus_bus, boarding, payment_status, ticket_number,
		                      checked_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Firstname,
		booking.Lastname,
		booking.Email,
		booking.Phone,
		booking.EnrollmentNumber,
		booking.CampusBus,
		booking.Boarding,
		booking.PaymentStatus,
		booking.TicketNumber,
		booking.CheckedIn,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("create booking for %s: %w", booking.Email, ErrDuplicateEmail)
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking for %s: %w", booking.Email, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE email = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find booking by email %s: %w", email, err)
	}

	return booking, nil
}

// FindAll retrieves a paginated list of bookings, newest first
func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// UpdatePaymentStatus sets the payment flag and returns the updated record,
// or nil when the booking does not exist
func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET payment_status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + bookingColumns + `
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, status, time.Now()))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update payment status for %s: %w", id.String(), err)
	}

	return booking, nil
}

// AttachToken stores the signed check-in token on the booking. Only a
// tokenless record is written to, so an issued token is never replaced.
func (r *bookingRepository) AttachToken(ctx context.Context, id uuid.UUID, token string) error {
	query := `
		UPDATE bookings
		SET qr_token = $2, updated_at = $3
		WHERE id = $1 AND qr_token IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, token, time.Now())
	if err != nil {
		r.log.Error("Failed to attach token",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("attach token to booking %s: %w", id.String(), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attach token to booking %s: booking not found or token already set", id.String())
	}

	return nil
}

// MarkCheckedIn performs the idempotent check-in transition. The UPDATE only
// fires while checked_in is still false, so under concurrent scans exactly
// one caller writes checked_in_at; everyone then reads the settled row.
func (r *bookingRepository) MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET checked_in = TRUE, checked_in_at = $2, updated_at = $2
		WHERE id = $1 AND checked_in = FALSE
	`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		r.log.Error("Failed to mark checked in",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("mark booking %s checked in: %w", id.String(), err)
	}

	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	return booking, nil
}
