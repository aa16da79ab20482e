package schedule

import (
	"context"
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	ReplaceWeeklyHours(ctx context.Context, businessID int64, week domain.WeeklyHours) error
	GetSettings(ctx context.Context, businessID int64) (*domain.AppointmentSettings, error)
	UpsertSettings(ctx context.Context, settings *domain.AppointmentSettings) (*domain.AppointmentSettings, error)
}

// ExceptionRepository интерфейс репозитория блокировок
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.AvailabilityException) (*domain.AvailabilityException, error)
	GetByBusinessAndRange(ctx context.Context, businessID int64, startDate, endDate time.Time) ([]domain.AvailabilityException, error)
	Delete(ctx context.Context, businessID, exceptionID int64) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
