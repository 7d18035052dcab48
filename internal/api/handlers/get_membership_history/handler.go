package get_membership_history

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

// Handle GET /api/v1/user/profile/membership/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("GET /user/profile/membership/history - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /user/profile/membership/history - Failed to get history: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /user/profile/membership/history - History retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Memberships))
	handlers.RespondJSON(w, http.StatusOK, result)
}
