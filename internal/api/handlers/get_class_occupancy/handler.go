package get_class_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitclub/booking-service/internal/api/handlers"
	getClassOccupancy "github.com/fitclub/booking-service/internal/usecase/get_class_occupancy"
)

const (
	msgInvalidClassID = "некорректный ID занятия"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgClassNotFound  = "занятие не найдено"
)

type Handler struct {
	useCase GetClassOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetClassOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes/{classId}/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	classIDStr := vars["classId"]
	classID, err := strconv.ParseInt(classIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /classes/{id}/availability/{date} - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(classID, vars["date"])
	if err != nil {
		h.logger.Warn("GET /classes/{id}/availability/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getClassOccupancy.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id}/availability/{date} - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, getClassOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /classes/{id}/availability/{date} - Invalid input: class_id=%d, error=%v", classID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /classes/{id}/availability/{date} - Failed to get occupancy: class_id=%d, error=%v",
				classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id}/availability/{date} - Occupancy retrieved successfully: class_id=%d, booked=%d/%d",
		classID, result.Occupancy.Booked, result.Occupancy.Capacity)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
