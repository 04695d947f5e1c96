package wire

import (
	"gatetogether/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/booking - Register an attendee and email the QR ticket
	r.Post("/api/booking", bookingHandler.CreateBooking)

	// GET /api/booking/check-email - Fast existence check for the form
	r.Get("/api/booking/check-email", bookingHandler.CheckEmail)

	// GET /api/booking/lookup - Retrieve a booking by email (no internal id)
	r.Get("/api/booking/lookup", bookingHandler.Lookup)
}
