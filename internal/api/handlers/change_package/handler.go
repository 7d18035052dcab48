package change_package

import (
	"errors"
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/service/memberships"
)

const (
	msgUnauthorized    = "пользователь не аутентифицирован"
	msgInvalidBody     = "некорректное тело запроса"
	msgForbidden       = "смена пакета доступна только участникам"
	msgPackageNotFound = "тарифный пакет не найден"
	msgNoMembership    = "действующий абонемент не найден"
	msgValidation      = "некорректные данные запроса"
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

// Handle POST /api/v1/user/profile/membership/change-package
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /user/profile/membership/change-package - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ChangePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/profile/membership/change-package - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.ChangePackage(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrForbidden):
			h.logger.Warn("POST /user/profile/membership/change-package - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, memberships.ErrPackageNotFound):
			h.logger.Warn("POST /user/profile/membership/change-package - Package not found: package_id=%d",
				req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, memberships.ErrNoCurrentMembership):
			h.logger.Warn("POST /user/profile/membership/change-package - No current membership: user_id=%d", userID)
			handlers.RespondConflict(w, msgNoMembership)

		case errors.Is(err, memberships.ErrInvalidInput):
			h.logger.Warn("POST /user/profile/membership/change-package - Validation error: user_id=%d, error=%v",
				userID, err)
			handlers.RespondBadRequest(w, msgValidation)

		default:
			h.logger.Error("POST /user/profile/membership/change-package - Failed to change package: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/profile/membership/change-package - Package changed successfully: user_id=%d, next_package_id=%d",
		userID, req.PackageID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
