package get_availability

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
)

// DefaultRangeDays длина диапазона по умолчанию, если end_date не указан
const DefaultRangeDays = 30

// Request модель запроса отчёта о доступности
type Request struct {
	BusinessID             int64      // ID бизнеса
	StartDate              time.Time  // Начало диапазона (обязательно)
	EndDate                *time.Time // Конец диапазона (опционально, по умолчанию StartDate + 30 дней)
	ServiceDurationMinutes int        // Длительность услуги в минутах
}

// Response модель ответа с отчётом по дням
type Response struct {
	BusinessID             int64
	StartDate              time.Time
	EndDate                time.Time // Фактический конец диапазона после дефолта и ограничения окна записи
	ServiceDurationMinutes int
	Days                   []domain.DayAvailability
}
