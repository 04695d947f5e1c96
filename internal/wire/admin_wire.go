package wire

import (
	"gatetogether/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler) {
	// Admin surface; access control is handled outside this service
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// GET /api/admin/bookings - List all bookings, newest first
		r.Get("/", adminHandler.ListBookings)

		// PUT /api/admin/bookings/{id} - Toggle payment status
		r.Put("/{id}", adminHandler.UpdatePaymentStatus)
	})
}
