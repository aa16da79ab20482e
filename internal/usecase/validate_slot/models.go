package validate_slot

import (
	"time"

	"github.com/patitas-app/availability-service/pkg/types"
)

// Request модель запроса проверки одного слота
type Request struct {
	BusinessID             int64            // ID бизнеса
	Date                   time.Time        // Дата записи (без времени)
	StartTime              types.TimeString // Время начала слота (например, "10:00")
	ServiceDurationMinutes int              // Длительность услуги в минутах
}

// Response модель ответа проверки слота
type Response struct {
	Available              bool
	Reason                 string // Пустая строка для доступного слота
	BusinessID             int64
	Date                   time.Time
	StartTime              types.TimeString
	ServiceDurationMinutes int
}
