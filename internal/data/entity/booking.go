package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking is one attendee's registration record. Email is the natural key;
// QRToken is written once after token issuance and never changes afterwards.
type Booking struct {
	ID               uuid.UUID     `db:"id"`
	Firstname        string        `db:"firstname"`
	Lastname         string        `db:"lastname"`
	Email            string        `db:"email"`
	Phone            string        `db:"phone"`
	EnrollmentNumber string        `db:"enrollment_number"`
	CampusBus        bool          `db:"campus_bus"`
	Boarding         bool          `db:"boarding"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	TicketNumber     *string       `db:"ticket_number"`
	QRToken          *string       `db:"qr_token"`
	CheckedIn        bool          `db:"checked_in"`
	CheckedInAt      *time.Time    `db:"checked_in_at"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}
