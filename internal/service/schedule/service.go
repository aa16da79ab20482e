package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
	exceptionRepo "github.com/patitas-app/availability-service/internal/infra/storage/exception"
	"github.com/patitas-app/availability-service/internal/service/schedule/models"
)

// exceptionHorizonDays горизонт выдачи блокировок в публичном расписании
const exceptionHorizonDays = 365

// Service сервис для управления расписанием бизнеса
type Service struct {
	businessRepo  BusinessRepository
	exceptionRepo ExceptionRepository
	txManager     TxManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	businessRepo BusinessRepository,
	exceptionRepo ExceptionRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		businessRepo:  businessRepo,
		exceptionRepo: exceptionRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetSchedule возвращает расписание бизнеса: часы работы, настройки записи
// и блокировки на ближайший год
// Публичный метод - доступен всем
func (s *Service) GetSchedule(ctx context.Context, businessID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for business=%d", businessID)

	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetSchedule: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetSchedule: repository error for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	// Настройки опциональны в ответе: бизнес мог ещё не настроить запись
	settings, err := s.businessRepo.GetSettings(ctx, businessID)
	if err != nil && !errors.Is(err, businessRepo.ErrSettingsNotFound) {
		s.logger.Error("GetSchedule: failed to get settings for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get settings: %v", ErrInternal, err)
	}

	loc := biz.Location()
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	horizon := today.AddDate(0, 0, exceptionHorizonDays)

	exceptions, err := s.exceptionRepo.GetByBusinessAndRange(ctx, businessID, today, horizon)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get exceptions for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get exceptions: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for business=%d, %d exceptions", businessID, len(exceptions))
	return &models.ScheduleResponse{
		BusinessID: biz.ID,
		Timezone:   biz.Timezone,
		Hours:      models.FromDomainWeek(biz.Hours),
		Settings:   models.FromDomainSettings(settings),
		Exceptions: models.FromDomainExceptionList(exceptions),
	}, nil
}

// UpdateSchedule полностью заменяет недельное расписание и настройки записи
// Замена часов и настроек идёт в одной транзакции
// Доступно только владельцу бизнеса
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for business=%d by user=%d", req.BusinessID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	week, err := req.ToDomainWeek()
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid hours for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	settings := req.ToDomainSettings()
	if err := s.validateSettings(settings); err != nil {
		s.logger.Warn("UpdateSchedule: invalid settings for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.businessRepo.ReplaceWeeklyHours(txCtx, req.BusinessID, week); err != nil {
			return fmt.Errorf("%w: UpdateSchedule - replace hours: %v", ErrInternal, err)
		}
		if _, err := s.businessRepo.UpsertSettings(txCtx, settings); err != nil {
			return fmt.Errorf("%w: UpdateSchedule - upsert settings: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Error("UpdateSchedule: transaction failed for business=%d: %v", req.BusinessID, txErr)
		return nil, txErr
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for business=%d", req.BusinessID)
	return s.GetSchedule(ctx, req.BusinessID)
}

// CreateException создает блокировку расписания
// Доступно только владельцу бизнеса
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating exception for business=%d, %s..%s by user=%d",
		req.BusinessID, req.StartDate, req.EndDate, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	exc, err := req.ToDomainException()
	if err != nil {
		s.logger.Warn("CreateException: invalid exception for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.exceptionRepo.Create(ctx, exc)
	if err != nil {
		s.logger.Error("CreateException: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: successfully created exception id=%d for business=%d", created.ID, req.BusinessID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет блокировку расписания
// Доступно только владельцу бизнеса
func (s *Service) DeleteException(ctx context.Context, businessID, exceptionID, userID int64) error {
	s.logger.Info("DeleteException: deleting exception id=%d for business=%d by user=%d", exceptionID, businessID, userID)

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return err
	}

	if err := s.exceptionRepo.Delete(ctx, businessID, exceptionID); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found for business=%d", exceptionID, businessID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%d: %v", exceptionID, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d for business=%d", exceptionID, businessID)
	return nil
}

// Вспомогательные методы

// checkOwnerAccess проверяет, что пользователь является владельцем бизнеса
func (s *Service) checkOwnerAccess(ctx context.Context, businessID int64, userID int64) error {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrInternal, err)
	}

	if !biz.IsOwnedBy(userID) {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of business=%d", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}

// validateSettings валидирует настройки записи
func (s *Service) validateSettings(settings *domain.AppointmentSettings) error {
	if settings.SlotDurationMinutes < domain.MinSlotDurationMinutes || settings.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot_duration_minutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if settings.BufferTimeMinutes < domain.MinBufferTimeMinutes || settings.BufferTimeMinutes > domain.MaxBufferTimeMinutes {
		return fmt.Errorf("%w: buffer_time_minutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferTimeMinutes, domain.MaxBufferTimeMinutes)
	}

	if settings.MaxAppointmentsPerSlot < domain.MinAppointmentsPerSlot || settings.MaxAppointmentsPerSlot > domain.MaxAppointmentsPerSlotLimit {
		return fmt.Errorf("%w: max_appointments_per_slot must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentsPerSlot, domain.MaxAppointmentsPerSlotLimit)
	}

	if settings.MinBookingNoticeHours < domain.MinNoticeHours || settings.MinBookingNoticeHours > domain.MaxNoticeHours {
		return fmt.Errorf("%w: min_booking_notice_hours must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeHours, domain.MaxNoticeHours)
	}

	if settings.MaxBookingAdvanceDays < domain.MinAdvanceDays || settings.MaxBookingAdvanceDays > domain.MaxAdvanceDays {
		return fmt.Errorf("%w: max_booking_advance_days must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceDays, domain.MaxAdvanceDays)
	}

	return nil
}
