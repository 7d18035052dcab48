package create_training_booking

import (
	"fmt"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTimeRange проверяет порядок времён и что начало ещё не прошло
func validateTimeRange(start, end, now time.Time) error {
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}

	if start.Before(now) {
		return ErrStartTimeInPast
	}

	return nil
}
