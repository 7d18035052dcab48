package book_training

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	createTrainingBooking "github.com/fitclub/booking-service/internal/usecase/create_training_booking"
)

const (
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidBody        = "некорректное тело запроса"
	msgForbidden          = "запись на тренировку доступна только участникам клуба"
	msgTrainerNotFound    = "тренер не найден"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgStartTimeInPast    = "время начала не может быть в прошлом"
	msgUserDoubleBooked   = "у вас уже есть запись на это время"
	msgTrainerUnavailable = "тренер занят в это время"
	msgValidation         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateTrainingBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTrainingBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trainers/{trainerId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /trainers/{id}/book - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/book - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req BookTrainingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, trainerID))
	if err != nil {
		switch {
		case errors.Is(err, createTrainingBooking.ErrForbidden):
			h.logger.Warn("POST /trainers/{id}/book - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createTrainingBooking.ErrTrainerNotFound):
			h.logger.Warn("POST /trainers/{id}/book - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createTrainingBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /trainers/{id}/book - Invalid time range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createTrainingBooking.ErrStartTimeInPast):
			h.logger.Warn("POST /trainers/{id}/book - Start time in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, createTrainingBooking.ErrUserDoubleBooked):
			h.logger.Warn("POST /trainers/{id}/book - User double booked: user_id=%d", userID)
			handlers.RespondConflict(w, msgUserDoubleBooked)

		case errors.Is(err, createTrainingBooking.ErrTrainerUnavailable):
			h.logger.Warn("POST /trainers/{id}/book - Trainer unavailable: trainer_id=%d", trainerID)
			handlers.RespondConflict(w, msgTrainerUnavailable)

		case errors.Is(err, createTrainingBooking.ErrInvalidInput):
			h.logger.Warn("POST /trainers/{id}/book - Validation error: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgValidation)

		default:
			h.logger.Error("POST /trainers/{id}/book - Failed to create booking: user_id=%d, trainer_id=%d, error=%v",
				userID, trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers/{id}/book - Booking created successfully: booking_id=%d, user_id=%d, trainer_id=%d",
		result.ID, userID, trainerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
