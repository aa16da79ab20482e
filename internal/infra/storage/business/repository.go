package business

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/dbmetrics"
	"github.com/patitas-app/availability-service/pkg/psqlbuilder"
	"github.com/patitas-app/availability-service/pkg/types"
)

// Repository репозиторий для работы с бизнесами, их расписанием и настройками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес вместе с недельным расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"owner_user_id",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var biz domain.Business
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&biz.ID,
		&biz.Name,
		&biz.OwnerUserID,
		&biz.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	biz.CreatedAt = createdAt.Time
	biz.UpdatedAt = updatedAt.Time

	hours, err := r.getWeeklyHours(ctx, id)
	if err != nil {
		return nil, err
	}
	biz.Hours = hours

	return &biz, nil
}

// getWeeklyHours читает расписание бизнеса в 7-элементный массив по дням недели
// Дни без строки в БД остаются закрытыми (нулевое значение DayHours с Closed=false
// не проходит Window(), так как оба времени отсутствуют)
func (r *Repository) getWeeklyHours(ctx context.Context, businessID int64) (domain.WeeklyHours, error) {
	var week domain.WeeklyHours

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return week, fmt.Errorf("%w: getWeeklyHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return week, fmt.Errorf("%w: getWeeklyHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var openTime, closeTime *types.TimeString
		var isClosed bool

		if err := rows.Scan(&weekday, &openTime, &closeTime, &isClosed); err != nil {
			return week, fmt.Errorf("%w: getWeeklyHours - scan row: %v", ErrScanRow, err)
		}

		if weekday < 0 || weekday > 6 {
			continue
		}

		week[weekday] = domain.DayHours{
			Open:   openTime,
			Close:  closeTime,
			Closed: isClosed,
		}
	}

	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: getWeeklyHours - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// ReplaceWeeklyHours полностью заменяет недельное расписание бизнеса
func (r *Repository) ReplaceWeeklyHours(ctx context.Context, businessID int64, week domain.WeeklyHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("business_id", "weekday", "open_time", "close_time", "is_closed")

	for weekday, day := range week {
		insertBuilder = insertBuilder.Values(businessID, weekday, day.Open, day.Close, day.Closed)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSettings получает настройки записи бизнеса
func (r *Repository) GetSettings(ctx context.Context, businessID int64) (*domain.AppointmentSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"slot_duration_minutes",
		"buffer_time_minutes",
		"max_appointments_per_slot",
		"min_booking_notice_hours",
		"max_booking_advance_days",
		"created_at",
		"updated_at",
	).
		From("appointment_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.AppointmentSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.BusinessID,
		&settings.SlotDurationMinutes,
		&settings.BufferTimeMinutes,
		&settings.MaxAppointmentsPerSlot,
		&settings.MinBookingNoticeHours,
		&settings.MaxBookingAdvanceDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// UpsertSettings создает или обновляет настройки записи бизнеса
func (r *Repository) UpsertSettings(ctx context.Context, settings *domain.AppointmentSettings) (*domain.AppointmentSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_settings").
		Columns(
			"business_id",
			"slot_duration_minutes",
			"buffer_time_minutes",
			"max_appointments_per_slot",
			"min_booking_notice_hours",
			"max_booking_advance_days",
		).
		Values(
			settings.BusinessID,
			settings.SlotDurationMinutes,
			settings.BufferTimeMinutes,
			settings.MaxAppointmentsPerSlot,
			settings.MinBookingNoticeHours,
			settings.MaxBookingAdvanceDays,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			buffer_time_minutes = EXCLUDED.buffer_time_minutes,
			max_appointments_per_slot = EXCLUDED.max_appointments_per_slot,
			min_booking_notice_hours = EXCLUDED.min_booking_notice_hours,
			max_booking_advance_days = EXCLUDED.max_booking_advance_days,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
