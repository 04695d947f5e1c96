package wire

import (
	"gatetogether/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckin(r chi.Router, checkinHandler *adaptor.CheckinHandler) {
	// GET /api/checkin?token= - Scanned QR lands here; check-in happens on scan
	r.Get("/api/checkin", checkinHandler.CheckIn)
}
