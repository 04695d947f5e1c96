package response

import (
	"time"

	"gatetogether/internal/data/entity"
)

// CheckinData is the attendee-safe snapshot returned on an accepted scan.
// CheckedInAt always reports the original check-in time, also on re-scans.
type CheckinData struct {
	Firstname     string               `json:"firstname"`
	Lastname      string               `json:"lastname"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
	CheckedIn     bool                 `json:"checkedIn"`
	CheckedInAt   *time.Time           `json:"checkedInAt"`
}

func CheckinToResponse(b *entity.Booking) *CheckinData {
	return &CheckinData{
		Firstname:     b.Firstname,
		Lastname:      b.Lastname,
		Email:         b.Email,
		Phone:         b.Phone,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		CheckedIn:     b.CheckedIn,
		CheckedInAt:   b.CheckedInAt,
	}
}
