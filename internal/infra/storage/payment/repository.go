package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о платеже
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("user_id", "membership_id", "amount", "status", "description").
		Values(p.UserID, p.MembershipID, p.Amount, p.Status, p.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// ListByUserID получает платежи пользователя, новые первыми
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"membership_id",
		"amount",
		"status",
		"description",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var (
			p         domain.Payment
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.MembershipID,
			&p.Amount,
			&p.Status,
			&p.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUserID - scan row: %v", ErrScanRow, err)
		}
		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
