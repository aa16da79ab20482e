package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/dbmetrics"
	"github.com/patitas-app/availability-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с блокировками расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, exc *domain.AvailabilityException) (*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_exceptions").
		Columns(
			"business_id",
			"exception_type",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"is_all_day",
			"reason",
		).
		Values(
			exc.BusinessID,
			exc.Type,
			exc.StartDate,
			exc.EndDate,
			exc.StartTime,
			exc.EndTime,
			exc.IsAllDay,
			exc.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return exc, nil
}

// GetByBusinessAndRange получает блокировки бизнеса, пересекающие диапазон дат
// [startDate, endDate] включительно
func (r *Repository) GetByBusinessAndRange(ctx context.Context, businessID int64, startDate, endDate time.Time) ([]domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"exception_type",
		"start_date",
		"end_date",
		"start_time",
		"end_time",
		"is_all_day",
		"reason",
		"created_at",
		"updated_at",
	).
		From("availability_exceptions").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.LtOrEq{"start_date": endDate}).
		Where(squirrel.GtOrEq{"end_date": startDate}).
		OrderBy("start_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.AvailabilityException, 0)
	for rows.Next() {
		var exc domain.AvailabilityException
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.BusinessID,
			&exc.Type,
			&exc.StartDate,
			&exc.EndDate,
			&exc.StartTime,
			&exc.EndTime,
			&exc.IsAllDay,
			&exc.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusinessAndRange - scan exception: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time
		exc.UpdatedAt = updatedAt.Time
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndRange - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// Delete удаляет блокировку бизнеса
func (r *Repository) Delete(ctx context.Context, businessID, exceptionID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_exceptions").
		Where(squirrel.Eq{"id": exceptionID, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}
