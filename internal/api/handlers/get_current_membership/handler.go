package get_current_membership

import (
	"errors"
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/service/memberships"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgNoMembership = "действующий абонемент не найден"
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

// Handle GET /api/v1/user/profile/membership
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("GET /user/profile/membership - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Current(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrNoCurrentMembership):
			h.logger.Warn("GET /user/profile/membership - No current membership: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoMembership)

		default:
			h.logger.Error("GET /user/profile/membership - Failed to get membership: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /user/profile/membership - Membership retrieved successfully: user_id=%d, membership_id=%d",
		userID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
