package get_class_occupancy

import (
	"context"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GroupClass, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountConfirmedForOccurrence(ctx context.Context, classID int64, date time.Time) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
