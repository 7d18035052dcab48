package membership

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/psqlbuilder"
)

var membershipColumns = []string{
	"id",
	"user_id",
	"package_id",
	"status",
	"start_date",
	"end_date",
	"auto_renew",
	"next_package_id",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с абонементами и тарифными пакетами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый абонемент
func (r *Repository) Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var nextPackageID sql.NullInt64
	if m.NextPackageID != nil {
		nextPackageID = sql.NullInt64{Int64: *m.NextPackageID, Valid: true}
	}

	query, args, err := psqlbuilder.Insert("memberships").
		Columns("user_id", "package_id", "status", "start_date", "end_date", "auto_renew", "next_package_id").
		Values(m.UserID, m.PackageID, m.Status, m.StartDate, m.EndDate, m.AutoRenew, nextPackageID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает абонемент по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMembership(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan membership: %v", ErrScanRow, err)
	}

	return m, nil
}

// GetCurrentByUserID получает действующий абонемент пользователя.
// Действующим считается не истекший по дате абонемент в статусе
// active или cancelled (отмена сохраняет доступ до конца периода).
// Текущий абонемент нигде не денормализован, он всегда вычисляется этим запросом
func (r *Repository) GetCurrentByUserID(ctx context.Context, userID int64, now time.Time) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"status": []domain.MembershipStatus{
			domain.MembershipStatusActive,
			domain.MembershipStatusCancelled,
		}}).
		Where(squirrel.GtOrEq{"end_date": now}).
		OrderBy("end_date DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrentByUserID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMembership(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrentByUserID - scan membership: %v", ErrScanRow, err)
	}

	return m, nil
}

// GetHistoryByUserID получает все абонементы пользователя, новые первыми
func (r *Repository) GetHistoryByUserID(ctx context.Context, userID int64) ([]*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHistoryByUserID - scan row: %v", ErrScanRow, err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByUserID - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}

// Update обновляет статус, дату отмены и следующий пакет абонемента
func (r *Repository) Update(ctx context.Context, m *domain.Membership) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var nextPackageID sql.NullInt64
	if m.NextPackageID != nil {
		nextPackageID = sql.NullInt64{Int64: *m.NextPackageID, Valid: true}
	}
	var cancelledAt sql.NullTime
	if m.CancelledAt != nil {
		cancelledAt = sql.NullTime{Time: *m.CancelledAt, Valid: true}
	}

	query, args, err := psqlbuilder.Update("memberships").
		Set("status", m.Status).
		Set("auto_renew", m.AutoRenew).
		Set("next_package_id", nextPackageID).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

// GetPackageByID получает тарифный пакет по ID
func (r *Repository) GetPackageByID(ctx context.Context, id int64) (*domain.MembershipPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price").
		From("membership_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.MembershipPackage
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Price)
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - scan package: %v", ErrScanRow, err)
	}

	return &p, nil
}

// ListPackages получает каталог тарифных пакетов
func (r *Repository) ListPackages(ctx context.Context) ([]*domain.MembershipPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price").
		From("membership_packages").
		OrderBy("price ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.MembershipPackage, 0)
	for rows.Next() {
		var p domain.MembershipPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("%w: ListPackages - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPackages - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

func scanMembership(scan func(dest ...interface{}) error) (*domain.Membership, error) {
	var (
		m             domain.Membership
		nextPackageID sql.NullInt64
		cancelledAt   sql.NullTime
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := scan(
		&m.ID,
		&m.UserID,
		&m.PackageID,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.AutoRenew,
		&nextPackageID,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if nextPackageID.Valid {
		m.NextPackageID = &nextPackageID.Int64
	}
	if cancelledAt.Valid {
		m.CancelledAt = &cancelledAt.Time
	}
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}
