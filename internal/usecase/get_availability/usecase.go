package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patitas-app/availability-service/internal/availability"
	"github.com/patitas-app/availability-service/internal/domain"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
)

// UseCase use case построения отчёта о доступности слотов по диапазону дат
type UseCase struct {
	businessRepo    BusinessRepository
	exceptionRepo   ExceptionRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	exceptionRepo ExceptionRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		exceptionRepo:   exceptionRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: business=%d, start=%s, duration=%d",
		req.BusinessID, req.StartDate.Format(domain.DateFormat), req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес с недельным расписанием
	biz, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailability: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailability: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем настройки записи: без настроек расчёт невозможен,
	// дефолты не подставляются
	settings, err := uc.businessRepo.GetSettings(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailability: settings for business id=%d not found", req.BusinessID)
			return nil, ErrSettingsNotFound
		}
		uc.logger.Error("GetAvailability: failed to get settings for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if err := validateSettings(settings); err != nil {
		uc.logger.Warn("GetAvailability: settings validation failed for business id=%d: %v", req.BusinessID, err)
		return nil, err
	}

	// 4. Приводим время и даты к таймзоне бизнеса
	loc := biz.Location()
	now := uc.timeProvider.Now().In(loc)
	startDate := dateInLocation(req.StartDate, loc)

	endDate := startDate.AddDate(0, 0, DefaultRangeDays)
	if req.EndDate != nil {
		endDate = dateInLocation(*req.EndDate, loc)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}

	// 5. Ограничиваем диапазон окном предварительной записи
	// Окно применяется здесь, на стороне вызывающего кода: сам расчёт
	// доступности про max_booking_advance_days ничего не знает
	maxDate := dateInLocation(now, loc).AddDate(0, 0, settings.MaxBookingAdvanceDays)
	if startDate.After(maxDate) {
		uc.logger.Warn("GetAvailability: start date %s is beyond the %d-day advance window",
			startDate.Format(domain.DateFormat), settings.MaxBookingAdvanceDays)
		return nil, fmt.Errorf("%w: can only view %d days in advance", ErrDateTooFarInFuture, settings.MaxBookingAdvanceDays)
	}
	if endDate.After(maxDate) {
		endDate = maxDate
	}

	// 6. Получаем блокировки, пересекающие диапазон
	exceptions, err := uc.exceptionRepo.GetByBusinessAndRange(ctx, req.BusinessID, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 7. Получаем активные записи диапазона (отменённые отфильтрует репозиторий,
	// расчёт дополнительно перепроверит статусы)
	filter := domain.BusinessAppointmentsFilter{
		BusinessID:      req.BusinessID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Строим отчёт по дням
	days := availability.CalculateAvailability(
		startDate,
		endDate,
		biz.Hours,
		*settings,
		req.ServiceDurationMinutes,
		exceptions,
		appointments,
		now,
	)

	uc.logger.Info("GetAvailability: built report for business=%d, %d days, range %s..%s",
		req.BusinessID, len(days), startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	return &Response{
		BusinessID:             req.BusinessID,
		StartDate:              startDate,
		EndDate:                endDate,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Days:                   days,
	}, nil
}

// dateInLocation переинтерпретирует дату в указанной таймзоне (время обнуляется)
func dateInLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
