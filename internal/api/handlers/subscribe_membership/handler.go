package subscribe_membership

import (
	"errors"
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/service/memberships"
)

const (
	msgUnauthorized      = "пользователь не аутентифицирован"
	msgInvalidBody       = "некорректное тело запроса"
	msgForbidden         = "оформление абонемента доступно только участникам"
	msgPackageNotFound   = "тарифный пакет не найден"
	msgAlreadySubscribed = "у вас уже есть действующий абонемент"
	msgValidation        = "некорректные данные запроса"
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

// Handle POST /api/v1/user/profile/membership/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /user/profile/membership/subscribe - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/profile/membership/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Subscribe(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrForbidden):
			h.logger.Warn("POST /user/profile/membership/subscribe - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, memberships.ErrPackageNotFound):
			h.logger.Warn("POST /user/profile/membership/subscribe - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, memberships.ErrAlreadySubscribed):
			h.logger.Warn("POST /user/profile/membership/subscribe - Already subscribed: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadySubscribed)

		case errors.Is(err, memberships.ErrInvalidInput):
			h.logger.Warn("POST /user/profile/membership/subscribe - Validation error: user_id=%d, error=%v",
				userID, err)
			handlers.RespondBadRequest(w, msgValidation)

		default:
			h.logger.Error("POST /user/profile/membership/subscribe - Failed to subscribe: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/profile/membership/subscribe - Subscribed successfully: user_id=%d, membership_id=%d",
		userID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
