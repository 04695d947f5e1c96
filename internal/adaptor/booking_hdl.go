package adaptor

import (
	"encoding/json"
	"net/http"

	"gatetogether/internal/dto/request"
	"gatetogether/internal/usecase"
	"gatetogether/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	// A failed email delivery is still a created booking; the flag in the
	// payload tells the client to offer the resend/lookup path.
	utils.ResponseCreated(w, "success", booking)
}

// CheckEmail handles GET /api/booking/check-email?email=
func (h *BookingHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	result, err := h.service.CheckEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "check email")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// Lookup handles GET /api/booking/lookup?email=
func (h *BookingHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	result, err := h.service.LookupByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "lookup booking")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
