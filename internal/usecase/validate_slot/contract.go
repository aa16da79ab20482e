package validate_slot

import (
	"context"
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetSettings(ctx context.Context, businessID int64) (*domain.AppointmentSettings, error)
}

// ExceptionRepository интерфейс репозитория блокировок
type ExceptionRepository interface {
	GetByBusinessAndRange(ctx context.Context, businessID int64, startDate, endDate time.Time) ([]domain.AvailabilityException, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
