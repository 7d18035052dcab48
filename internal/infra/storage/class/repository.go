package class

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с групповыми занятиями и их расписанием
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает занятие вместе со слотами еженедельного расписания
// Вставку шаблона и слотов следует выполнять в одной транзакции
// (usecase оборачивает вызов в txManager.Do)
func (r *Repository) Create(ctx context.Context, c *domain.GroupClass) (*domain.GroupClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("group_classes").
		Columns("name", "description", "capacity", "trainer_id").
		Values(c.Name, c.Description, c.Capacity, c.TrainerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	for i := range c.Schedule {
		slot := c.Schedule[i]

		query, args, err := psqlbuilder.Insert("class_schedule_slots").
			Columns("group_class_id", "day_of_week", "start_time", "end_time").
			Values(c.ID, slot.DayOfWeek, slot.StartTime, slot.EndTime).
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build slot insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert schedule slot: %v", ErrExecQuery, err)
		}
	}

	return c, nil
}

// GetByID получает занятие по ID вместе с расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GroupClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"capacity",
		"trainer_id",
		"created_at",
		"updated_at",
	).
		From("group_classes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClass(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class: %v", ErrScanRow, err)
	}

	schedule, err := r.loadSchedule(ctx, executor, c.ID)
	if err != nil {
		return nil, err
	}
	c.Schedule = schedule

	return c, nil
}

// List получает все занятия с расписаниями
func (r *Repository) List(ctx context.Context) ([]*domain.GroupClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"capacity",
		"trainer_id",
		"created_at",
		"updated_at",
	).
		From("group_classes").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	classes := make([]*domain.GroupClass, 0)
	for rows.Next() {
		c, err := scanClass(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	for _, c := range classes {
		schedule, err := r.loadSchedule(ctx, executor, c.ID)
		if err != nil {
			return nil, err
		}
		c.Schedule = schedule
	}

	return classes, nil
}

// loadSchedule загружает слоты еженедельного расписания занятия
func (r *Repository) loadSchedule(ctx context.Context, executor dbmetrics.DBExecutor, classID int64) ([]domain.ScheduleSlot, error) {
	query, args, err := psqlbuilder.Select("day_of_week", "start_time", "end_time").
		From("class_schedule_slots").
		Where(squirrel.Eq{"group_class_id": classID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make([]domain.ScheduleSlot, 0)
	for rows.Next() {
		var slot domain.ScheduleSlot
		if err := rows.Scan(&slot.DayOfWeek, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, fmt.Errorf("%w: loadSchedule - scan slot: %v", ErrScanRow, err)
		}
		schedule = append(schedule, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadSchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

func scanClass(scan func(dest ...interface{}) error) (*domain.GroupClass, error) {
	var (
		c           domain.GroupClass
		description sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err := scan(
		&c.ID,
		&c.Name,
		&description,
		&c.Capacity,
		&c.TrainerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		c.Description = &description.String
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
