package memberships

import (
	"context"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) (*domain.Membership, error)
	GetCurrentByUserID(ctx context.Context, userID int64, now time.Time) (*domain.Membership, error)
	GetHistoryByUserID(ctx context.Context, userID int64) ([]*domain.Membership, error)
	Update(ctx context.Context, membership *domain.Membership) error
	GetPackageByID(ctx context.Context, id int64) (*domain.MembershipPackage, error)
	ListPackages(ctx context.Context) ([]*domain.MembershipPackage, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
