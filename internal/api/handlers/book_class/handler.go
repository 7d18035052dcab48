package book_class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitclub/booking-service/internal/api/handlers"
	"github.com/fitclub/booking-service/internal/api/middleware"
	createClassBooking "github.com/fitclub/booking-service/internal/usecase/create_class_booking"
)

const (
	msgUnauthorized      = "пользователь не аутентифицирован"
	msgInvalidClassID    = "некорректный ID занятия"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden         = "запись на занятие доступна только участникам клуба"
	msgClassNotFound     = "занятие не найдено"
	msgClassNotScheduled = "занятие не проводится в этот день"
	msgDateInPast        = "дата занятия не может быть в прошлом"
	msgDuplicateBooking  = "вы уже записаны на это занятие"
	msgClassFull         = "все места на занятие заняты"
	msgValidation        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateClassBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateClassBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/classes/{classId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.logger.Error("POST /classes/{id}/book - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	classID, err := strconv.ParseInt(vars["classId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /classes/{id}/book - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	var req BookClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /classes/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, classID)
	if err != nil {
		h.logger.Warn("POST /classes/{id}/book - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createClassBooking.ErrForbidden):
			h.logger.Warn("POST /classes/{id}/book - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createClassBooking.ErrClassNotFound):
			h.logger.Warn("POST /classes/{id}/book - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, createClassBooking.ErrClassNotScheduled):
			h.logger.Warn("POST /classes/{id}/book - Class not scheduled on date: class_id=%d", classID)
			handlers.RespondBadRequest(w, msgClassNotScheduled)

		case errors.Is(err, createClassBooking.ErrInvalidDate):
			h.logger.Warn("POST /classes/{id}/book - Date in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createClassBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /classes/{id}/book - Duplicate booking: user_id=%d, class_id=%d", userID, classID)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createClassBooking.ErrClassFull):
			h.logger.Warn("POST /classes/{id}/book - Class is full: class_id=%d", classID)
			handlers.RespondConflict(w, msgClassFull)

		case errors.Is(err, createClassBooking.ErrInvalidInput):
			h.logger.Warn("POST /classes/{id}/book - Validation error: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgValidation)

		default:
			h.logger.Error("POST /classes/{id}/book - Failed to create booking: user_id=%d, class_id=%d, error=%v",
				userID, classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/{id}/book - Booking created successfully: booking_id=%d, user_id=%d, class_id=%d",
		result.ID, userID, classID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
