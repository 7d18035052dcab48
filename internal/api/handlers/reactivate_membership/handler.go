package reactivate_membership

import (
	"errors"
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/service/memberships"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgForbidden    = "восстановление абонемента доступно только участникам"
	msgNoMembership = "действующий абонемент не найден"
	msgNotCancelled = "абонемент не был отменён"
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

// Handle POST /api/v1/user/profile/membership/reactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /user/profile/membership/reactivate - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Reactivate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrForbidden):
			h.logger.Warn("POST /user/profile/membership/reactivate - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, memberships.ErrNoCurrentMembership):
			h.logger.Warn("POST /user/profile/membership/reactivate - No current membership: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoMembership)

		case errors.Is(err, memberships.ErrNotCancelled):
			h.logger.Warn("POST /user/profile/membership/reactivate - Membership not cancelled: user_id=%d", userID)
			handlers.RespondConflict(w, msgNotCancelled)

		default:
			h.logger.Error("POST /user/profile/membership/reactivate - Failed to reactivate membership: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/profile/membership/reactivate - Membership reactivated successfully: user_id=%d, membership_id=%d",
		userID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
