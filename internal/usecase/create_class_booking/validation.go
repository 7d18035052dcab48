package create_class_booking

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

	if req.ClassID <= 0 {
		return fmt.Errorf("%w: classID must be positive", ErrInvalidInput)
	}

	if req.ClassDate.IsZero() {
		return fmt.Errorf("%w: classDate is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что день занятия не в прошлом
func validateDate(day time.Time, now time.Time) error {
	if day.Before(domain.DayStart(now)) {
		return ErrInvalidDate
	}
	return nil
}
