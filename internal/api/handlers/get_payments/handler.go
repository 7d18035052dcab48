package get_payments

import (
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
)

const msgUnauthorized = "пользователь не аутентифицирован"

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

// Handle GET /api/v1/user/profile/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("GET /user/profile/payments - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Payments(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /user/profile/payments - Failed to get payments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /user/profile/payments - Payments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
