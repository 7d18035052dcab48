package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/psqlbuilder"
)

// Имена ограничений из migrations/0001_init.sql
// По ним нарушение на границе хранилища превращается в конкретный конфликт
const (
	constraintUniqueClassBooking    = "uniq_confirmed_class_booking"
	constraintTrainerOverlap        = "excl_trainer_training_overlap"
	constraintMemberTrainingOverlap = "excl_member_training_overlap"
)

const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"type",
	"status",
	"group_class_id",
	"class_date",
	"trainer_id",
	"start_time",
	"end_time",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушения ограничений целостности транслируются в доменные конфликты:
// - uniq_confirmed_class_booking → ErrDuplicateClassBooking
// - excl_trainer_training_overlap → ErrTrainerSlotTaken
// - excl_member_training_overlap → ErrMemberSlotTaken
// Предварительные проверки в usecase остаются основным путём отказа,
// ограничения закрывают гонку check-then-insert между конкурентными запросами
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		groupClassID sql.NullInt64
		classDate    sql.NullTime
		trainerID    sql.NullInt64
		startTime    sql.NullTime
		endTime      sql.NullTime
		notes        sql.NullString
	)

	if b.GroupClass != nil {
		groupClassID = sql.NullInt64{Int64: b.GroupClass.GroupClassID, Valid: true}
		classDate = sql.NullTime{Time: b.GroupClass.ClassDate, Valid: true}
	}
	if b.Training != nil {
		trainerID = sql.NullInt64{Int64: b.Training.TrainerID, Valid: true}
		startTime = sql.NullTime{Time: b.Training.StartTime, Valid: true}
		endTime = sql.NullTime{Time: b.Training.EndTime, Valid: true}
		if b.Training.Notes != nil {
			notes = sql.NullString{String: *b.Training.Notes, Valid: true}
		}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"type",
			"status",
			"group_class_id",
			"class_date",
			"trainer_id",
			"start_time",
			"end_time",
			"notes",
		).
		Values(
			b.UserID,
			b.Type,
			b.Status,
			groupClassID,
			classDate,
			trainerID,
			startTime,
			endTime,
			notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if conflictErr := mapConstraintViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List получает бронирования по фильтру
// Сортировка: сначала более поздние по времени создания
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC, id DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.GroupClassID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"group_class_id": *filter.GroupClassID})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ClassDate != nil {
		day := domain.DayStart(*filter.ClassDate)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"class_date": day}).
			Where(squirrel.Lt{"class_date": day.AddDate(0, 0, 1)})
	}
	// Пересечение полуоткрытых интервалов: start < overlapEnd AND end > overlapStart
	if filter.OverlapStart != nil && filter.OverlapEnd != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_time": *filter.OverlapEnd}).
			Where(squirrel.Gt{"end_time": *filter.OverlapStart})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountConfirmedForOccurrence подсчитывает confirmed-бронирования
// конкретного занятия (classID, день date)
func (r *Repository) CountConfirmedForOccurrence(ctx context.Context, classID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DayStart(date)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"group_class_id": classID,
			"status":         domain.BookingStatusConfirmed,
		}).
		Where(squirrel.GtOrEq{"class_date": day}).
		Where(squirrel.Lt{"class_date": day.AddDate(0, 0, 1)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedForOccurrence - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConfirmedForOccurrence - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingStatusCancelled).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapConstraintViolation превращает нарушение ограничения целостности в
// соответствующий конфликт; возвращает nil для прочих ошибок
func mapConstraintViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	if pqErr.Code != pqUniqueViolation && pqErr.Code != pqExclusionViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintUniqueClassBooking:
		return ErrDuplicateClassBooking
	case constraintTrainerOverlap:
		return ErrTrainerSlotTaken
	case constraintMemberTrainingOverlap:
		return ErrMemberSlotTaken
	default:
		return nil
	}
}

// scanBooking сканирует одну строку в доменную модель, собирая вариантные
// группы полей по типу бронирования
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var (
		b            domain.Booking
		groupClassID sql.NullInt64
		classDate    sql.NullTime
		trainerID    sql.NullInt64
		startTime    sql.NullTime
		endTime      sql.NullTime
		notes        sql.NullString
		cancelledAt  sql.NullTime
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := scan(
		&b.ID,
		&b.UserID,
		&b.Type,
		&b.Status,
		&groupClassID,
		&classDate,
		&trainerID,
		&startTime,
		&endTime,
		&notes,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if b.Type == domain.BookingTypeGroupClass && groupClassID.Valid {
		b.GroupClass = &domain.GroupClassDetails{
			GroupClassID: groupClassID.Int64,
			ClassDate:    domain.DayStart(classDate.Time),
		}
	}
	if b.Type == domain.BookingTypePersonalTraining && trainerID.Valid {
		details := &domain.TrainingDetails{
			TrainerID: trainerID.Int64,
			StartTime: startTime.Time,
			EndTime:   endTime.Time,
		}
		if notes.Valid {
			details.Notes = &notes.String
		}
		b.Training = details
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
