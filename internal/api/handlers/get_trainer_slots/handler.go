package get_trainer_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitclub/booking-service/internal/api/handlers"
	getTrainerSlots "github.com/fitclub/booking-service/internal/usecase/get_trainer_slots"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTrainerNotFound  = "тренер не найден"
)

type Handler struct {
	useCase GetTrainerSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTrainerSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	trainerIDStr := vars["trainerId"]
	trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /trainers/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(trainerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTrainerSlots.ErrTrainerNotFound):
			h.logger.Warn("GET /trainers/{id}/availability - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, getTrainerSlots.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/availability - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /trainers/{id}/availability - Failed to get slots: trainer_id=%d, error=%v",
				trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/availability - Slots retrieved successfully: trainer_id=%d, slots_count=%d",
		trainerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
