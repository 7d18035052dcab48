package get_packages

import (
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
)

type Handler struct {
	service MembershipsService
	logger  Logger
}

func NewHandler(service MembershipsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/memberships/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Packages(r.Context())
	if err != nil {
		h.logger.Error("GET /memberships/packages - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /memberships/packages - Packages retrieved successfully: count=%d", len(result.Packages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
