package validate_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patitas-app/availability-service/internal/availability"
	"github.com/patitas-app/availability-service/internal/domain"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
)

// UseCase use case финальной проверки одного слота перед бронированием.
// Проверка пересчитывает сетку дня заново теми же правилами, что и отчёт о
// доступности. Гонку одновременных бронирований она не закрывает, это
// ответственность сериализуемой транзакции в usecase создания записи.
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

// Execute выполняет use case проверки слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateSlot: business=%d, date=%s, time=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес и настройки
	biz, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("ValidateSlot: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("ValidateSlot: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	settings, err := uc.businessRepo.GetSettings(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrSettingsNotFound) {
			uc.logger.Warn("ValidateSlot: settings for business id=%d not found", req.BusinessID)
			return nil, ErrSettingsNotFound
		}
		uc.logger.Error("ValidateSlot: failed to get settings for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if err := validateSettings(settings); err != nil {
		uc.logger.Warn("ValidateSlot: settings validation failed for business id=%d: %v", req.BusinessID, err)
		return nil, err
	}

	// 3. Приводим дату и текущее время к таймзоне бизнеса
	loc := biz.Location()
	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 4. Проверяем окно предварительной записи (ответственность вызывающего
	// кода, не расчёта)
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, settings.MaxBookingAdvanceDays)
	if date.After(maxDate) {
		uc.logger.Warn("ValidateSlot: date %s is beyond the %d-day advance window",
			date.Format(domain.DateFormat), settings.MaxBookingAdvanceDays)
		return nil, fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, settings.MaxBookingAdvanceDays)
	}

	// 5. Получаем блокировки и активные записи этой даты
	exceptions, err := uc.exceptionRepo.GetByBusinessAndRange(ctx, req.BusinessID, date, date)
	if err != nil {
		uc.logger.Error("ValidateSlot: failed to get exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	filter := domain.BusinessAppointmentsFilter{
		BusinessID:      req.BusinessID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ValidateSlot: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Проверяем кандидата против пересчитанной сетки дня
	check := availability.IsSlotAvailable(
		date,
		req.StartTime,
		biz.Hours,
		*settings,
		req.ServiceDurationMinutes,
		exceptions,
		appointments,
		now,
	)

	uc.logger.Info("ValidateSlot: business=%d, date=%s, time=%s -> available=%t reason=%q",
		req.BusinessID, date.Format(domain.DateFormat), req.StartTime, check.Available, check.Reason)

	return &Response{
		Available:              check.Available,
		Reason:                 check.Reason,
		BusinessID:             req.BusinessID,
		Date:                   date,
		StartTime:              req.StartTime,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
	}, nil
}
