package usecase

import (
	"testing"
	"time"

	"gatetogether/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeTicketMail(t *testing.T) {
	ticketNumber := "GT2026-000042"
	booking := &entity.Booking{
		ID:           uuid.New(),
		Firstname:    "Asha",
		Lastname:     "Patel",
		Email:        "asha@x.com",
		TicketNumber: &ticketNumber,
		CreatedAt:    time.Now(),
	}
	png := []byte{0x89, 'P', 'N', 'G'}
	checkinURL := "https://gate.example.com/checkin?token=abc.def.ghi"

	payload, err := composeTicketMail(booking, png, checkinURL)
	require.NoError(t, err)

	assert.Equal(t, "asha@x.com", payload.To)
	assert.Equal(t, booking.ID.String(), payload.BookingID)
	assert.Equal(t, ticketMailSubject, payload.Subject)
	assert.Equal(t, png, payload.ImagePNG)

	// HTML references the embedded image by CID and carries the fallback link
	assert.Contains(t, payload.HTML, "cid:"+ticketMailCID)
	assert.Contains(t, payload.HTML, ticketNumber)
	assert.Contains(t, payload.HTML, checkinURL)
	assert.Contains(t, payload.HTML, "Hi Asha")

	// Plain-text part keeps the bare link for clients that strip images
	assert.Contains(t, payload.Text, checkinURL)
	assert.Contains(t, payload.Text, ticketNumber)
}

func TestComposeTicketMail_FallbackName(t *testing.T) {
	booking := &entity.Booking{
		ID:    uuid.New(),
		Email: "anon@x.com",
	}

	payload, err := composeTicketMail(booking, nil, "https://gate.example.com/checkin?token=t")
	require.NoError(t, err)

	assert.Contains(t, payload.HTML, "Hi Guest")
	assert.Contains(t, payload.Text, "Hi Guest")
}
