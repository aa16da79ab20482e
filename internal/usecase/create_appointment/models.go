package create_appointment

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/types"
)

// Request модель запроса создания записи
type Request struct {
	BusinessID             int64            // ID бизнеса
	CustomerID             int64            // ID клиента (из заголовка авторизации)
	Date                   time.Time        // Дата записи (без времени)
	StartTime              types.TimeString // Время начала слота
	ServiceDurationMinutes int              // Длительность услуги в минутах
	ServiceName            string           // Название услуги
	PetName                *string          // Кличка питомца (опционально)
	PetBreed               *string          // Порода питомца (опционально)
	Notes                  *string          // Пожелания клиента (опционально)
}

// Response модель ответа создания записи
type Response struct {
	Appointment *domain.Appointment
}
