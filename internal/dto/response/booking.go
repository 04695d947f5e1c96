package response

import (
	"time"

	"gatetogether/internal/data/entity"
)

// CreateBookingResponse reports the registration outcome. EmailSent is false
// when the ticket email could not be delivered; the booking itself is still
// created and the caller can route the attendee to a lookup/resend flow.
type CreateBookingResponse struct {
	BookingID    string `json:"booking_id"`
	TicketNumber string `json:"ticket_number"`
	EmailSent    bool   `json:"email_sent"`
	Message      string `json:"message,omitempty"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// AttendeeResponse is the public view of a booking: everything except the
// internal id. The token is included so an attendee whose ticket email never
// arrived can recover the QR through the lookup flow.
type AttendeeResponse struct {
	Firstname        string               `json:"firstname"`
	Lastname         string               `json:"lastname"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	EnrollmentNumber string               `json:"enrollmentnumber,omitempty"`
	CampusBus        bool                 `json:"campusbus"`
	Boarding         bool                 `json:"boarding"`
	PaymentStatus    entity.PaymentStatus `json:"paymentStatus"`
	TicketNumber     string               `json:"ticketNumber,omitempty"`
	QRToken          string               `json:"qrToken,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type LookupResponse struct {
	Found bool              `json:"found"`
	Data  *AttendeeResponse `json:"data,omitempty"`
}

// BookingResponse is the admin view including internal id and states
type BookingResponse struct {
	ID               string               `json:"id"`
	Firstname        string               `json:"firstname"`
	Lastname         string               `json:"lastname"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	EnrollmentNumber string               `json:"enrollmentnumber,omitempty"`
	CampusBus        bool                 `json:"campusbus"`
	Boarding         bool                 `json:"boarding"`
	PaymentStatus    entity.PaymentStatus `json:"paymentStatus"`
	TicketNumber     string               `json:"ticketNumber,omitempty"`
	CheckedIn        bool                 `json:"checkedIn"`
	CheckedInAt      *time.Time           `json:"checkedInAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// Helper converters

func AttendeeToResponse(b *entity.Booking) *AttendeeResponse {
	resp := &AttendeeResponse{
		Firstname:        b.Firstname,
		Lastname:         b.Lastname,
		Email:            b.Email,
		Phone:            b.Phone,
		EnrollmentNumber: b.EnrollmentNumber,
		CampusBus:        b.CampusBus,
		Boarding:         b.Boarding,
		PaymentStatus:    b.PaymentStatus,
		CreatedAt:        b.CreatedAt,
	}
	if b.TicketNumber != nil {
		resp.TicketNumber = *b.TicketNumber
	}
	if b.QRToken != nil {
		resp.QRToken = *b.QRToken
	}
	return resp
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID.String(),
		Firstname:        b.Firstname,
		Lastname:         b.Lastname,
		Email:            b.Email,
		Phone:            b.Phone,
		EnrollmentNumber: b.EnrollmentNumber,
		CampusBus:        b.CampusBus,
		Boarding:         b.Boarding,
		PaymentStatus:    b.PaymentStatus,
		CheckedIn:        b.CheckedIn,
		CheckedInAt:      b.CheckedInAt,
		CreatedAt:        b.CreatedAt,
	}
	if b.TicketNumber != nil {
		resp.TicketNumber = *b.TicketNumber
	}
	return resp
}
