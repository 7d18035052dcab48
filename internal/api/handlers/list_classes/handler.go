package list_classes

import (
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
)

type Handler struct {
	service ClassesService
	logger  Logger
}

func NewHandler(service ClassesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /classes - Failed to list classes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /classes - Classes retrieved successfully: count=%d", len(result.Classes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
