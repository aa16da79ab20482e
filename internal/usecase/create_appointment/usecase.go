package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patitas-app/availability-service/internal/availability"
	"github.com/patitas-app/availability-service/internal/domain"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
)

// UseCase use case создания записи на груминг.
// Проверка доступности слота и вставка записи идут в одной сериализуемой
// транзакции: выборка записей дня берет FOR UPDATE, поэтому два конкурентных
// бронирования одного слота не пройдут проверку вместимости одновременно.
type UseCase struct {
	businessRepo    BusinessRepository
	exceptionRepo   ExceptionRepository
	appointmentRepo AppointmentRepository
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	exceptionRepo ExceptionRepository,
	appointmentRepo AppointmentRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		exceptionRepo:   exceptionRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%d, customer=%d, date=%s, time=%s",
		req.BusinessID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес и настройки (вне транзакции, расписание меняется редко)
	biz, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	settings, err := uc.businessRepo.GetSettings(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrSettingsNotFound) {
			uc.logger.Warn("CreateAppointment: settings for business id=%d not found", req.BusinessID)
			return nil, ErrSettingsNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get settings for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if err := validateSettings(settings); err != nil {
		uc.logger.Warn("CreateAppointment: settings validation failed for business id=%d: %v", req.BusinessID, err)
		return nil, err
	}

	loc := biz.Location()
	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 3. Окно предварительной записи
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, settings.MaxBookingAdvanceDays)
	if date.After(maxDate) {
		uc.logger.Warn("CreateAppointment: date %s is beyond the %d-day advance window",
			date.Format(domain.DateFormat), settings.MaxBookingAdvanceDays)
		return nil, fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, settings.MaxBookingAdvanceDays)
	}

	endTime, err := req.StartTime.AddMinutes(req.ServiceDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}

	var created *domain.Appointment

	// 4. Проверяем слот и вставляем запись атомарно
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exceptions, err := uc.exceptionRepo.GetByBusinessAndRange(txCtx, req.BusinessID, date, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
		}

		// Выборка на одну дату внутри транзакции блокирует строки дня (FOR UPDATE)
		filter := domain.BusinessAppointmentsFilter{
			BusinessID:      req.BusinessID,
			StartDate:       &date,
			EndDate:         &date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

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
		if !check.Available {
			return slotCheckError(check.Reason)
		}

		appt := &domain.Appointment{
			BusinessID:      req.BusinessID,
			CustomerID:      req.CustomerID,
			Date:            date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: req.ServiceDurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     req.ServiceName,
			PetName:         req.PetName,
			PetBreed:        req.PetBreed,
			Notes:           req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if txErr != nil {
		uc.logger.Warn("CreateAppointment: business=%d, date=%s, time=%s rejected: %v",
			req.BusinessID, date.Format(domain.DateFormat), req.StartTime, txErr)
		return nil, txErr
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for business=%d, customer=%d",
		created.ID, req.BusinessID, req.CustomerID)

	return &Response{Appointment: created}, nil
}

// slotCheckError транслирует вердикт расчёта доступности в ошибку usecase
func slotCheckError(reason string) error {
	switch reason {
	case domain.ReasonSlotFull:
		return ErrSlotNotAvailable
	case domain.ReasonBlocked:
		return ErrSlotBlocked
	case domain.ReasonTooSoon:
		return ErrTooSoonToBook
	case domain.ReasonInvalidTimeSlot:
		return ErrInvalidTimeSlot
	default:
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, reason)
	}
}
