package adaptor

import (
	"net/http"

	"gatetogether/internal/usecase"
	"gatetogether/pkg/utils"

	"go.uber.org/zap"
)

type CheckinHandler struct {
	service usecase.CheckinService
	log     *zap.Logger
}

func NewCheckinHandler(service usecase.CheckinService, log *zap.Logger) *CheckinHandler {
	return &CheckinHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkin")),
	}
}

// CheckIn handles GET /api/checkin?token=
func (h *CheckinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	data, err := h.service.CheckIn(r.Context(), token)
	if err != nil {
		handleServiceError(w, h.log, err, "check in")
		return
	}

	utils.ResponseSuccess(w, "Booking found", data)
}
