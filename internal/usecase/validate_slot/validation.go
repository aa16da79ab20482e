package validate_slot

import (
	"fmt"

	"github.com/patitas-app/availability-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointment_date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: service_duration must be positive", ErrInvalidInput)
	}

	return nil
}

// validateSettings проверяет, что конфигурация слотов пригодна для расчёта
func validateSettings(settings *domain.AppointmentSettings) error {
	if settings.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot_duration_minutes must be positive, got %d",
			ErrInvalidSlotConfig, settings.SlotDurationMinutes)
	}

	if settings.MaxAppointmentsPerSlot < 1 {
		return fmt.Errorf("%w: max_appointments_per_slot must be at least 1, got %d",
			ErrInvalidSlotConfig, settings.MaxAppointmentsPerSlot)
	}

	return nil
}
