package create_class

import (
	"errors"
	"net/http"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/service/classes"
	"github.com/fitclub/booking-service/internal/service/classes/models"
)

const (
	msgUnauthorized    = "пользователь не аутентифицирован"
	msgInvalidBody     = "некорректное тело запроса"
	msgAccessDenied    = "создание занятий доступно только персоналу"
	msgTrainerNotFound = "тренер не найден"
	msgValidation      = "некорректные данные занятия"
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

// Handle POST /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /classes - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /classes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrAccessDenied):
			h.logger.Warn("POST /classes - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, classes.ErrTrainerNotFound):
			h.logger.Warn("POST /classes - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, classes.ErrInvalidInput):
			h.logger.Warn("POST /classes - Validation error: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgValidation)

		default:
			h.logger.Error("POST /classes - Failed to create class: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes - Class created successfully: class_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
