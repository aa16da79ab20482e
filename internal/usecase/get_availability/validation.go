package get_availability

import (
	"fmt"

	"github.com/patitas-app/availability-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: service_duration must be positive", ErrInvalidInput)
	}

	return nil
}

// validateSettings проверяет, что конфигурация слотов пригодна для расчёта
// Неположительный шаг сетки считается ошибкой конфигурации, а не повод молча вернуть
// пустой результат
func validateSettings(settings *domain.AppointmentSettings) error {
	if settings.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot_duration_minutes must be positive, got %d",
			ErrInvalidSlotConfig, settings.SlotDurationMinutes)
	}

	if settings.BufferTimeMinutes < 0 {
		return fmt.Errorf("%w: buffer_time_minutes must not be negative, got %d",
			ErrInvalidSlotConfig, settings.BufferTimeMinutes)
	}

	if settings.MaxAppointmentsPerSlot < 1 {
		return fmt.Errorf("%w: max_appointments_per_slot must be at least 1, got %d",
			ErrInvalidSlotConfig, settings.MaxAppointmentsPerSlot)
	}

	if settings.MaxBookingAdvanceDays < 1 {
		return fmt.Errorf("%w: max_booking_advance_days must be at least 1, got %d",
			ErrInvalidSlotConfig, settings.MaxBookingAdvanceDays)
	}

	return nil
}
