package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с запланированными уведомлениями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запланированное уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "booking_id", "type", "status", "scheduled_for").
		Values(n.UserID, n.BookingID, n.Type, n.Status, n.ScheduledFor).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// CancelByBookingID отменяет ещё не отправленные уведомления бронирования.
// Отмена бронирования делает его напоминания неактуальными
func (r *Repository) CancelByBookingID(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("status", domain.NotificationStatusCancelled).
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.NotificationStatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelByBookingID - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelByBookingID - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ListPendingDue получает уведомления, срок которых наступил
func (r *Repository) ListPendingDue(ctx context.Context, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"booking_id",
		"type",
		"status",
		"scheduled_for",
		"created_at",
	).
		From("notifications").
		Where(squirrel.Eq{"status": domain.NotificationStatusPending}).
		Where(squirrel.LtOrEq{"scheduled_for": squirrel.Expr("NOW()")}).
		OrderBy("scheduled_for ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var (
			n         domain.Notification
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.BookingID,
			&n.Type,
			&n.Status,
			&n.ScheduledFor,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingDue - scan row: %v", ErrScanRow, err)
		}
		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingDue - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkSent помечает уведомление отправленным
func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, domain.NotificationStatusSent)
}

// MarkFailed помечает уведомление неотправленным
func (r *Repository) MarkFailed(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, domain.NotificationStatusFailed)
}

func (r *Repository) setStatus(ctx context.Context, id int64, status domain.NotificationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: setStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: setStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: setStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
