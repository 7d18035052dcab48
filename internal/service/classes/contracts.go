package classes

import (
	"context"

	"github.com/fitclub/booking-service/internal/domain"
)

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	Create(ctx context.Context, class *domain.GroupClass) (*domain.GroupClass, error)
	List(ctx context.Context) ([]*domain.GroupClass, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetTrainerProfile(ctx context.Context, userID int64) (*domain.TrainerProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
