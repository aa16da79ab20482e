package validate_slot

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	validateSlot "github.com/patitas-app/availability-service/internal/usecase/validate_slot"
	"github.com/patitas-app/availability-service/pkg/types"
)

// ValidateSlotRequest HTTP request model
type ValidateSlotRequest struct {
	BusinessID      int64  `json:"business_id"`
	AppointmentDate string `json:"appointment_date"` // "2025-10-15"
	StartTime       string `json:"start_time"`       // "10:00"
	ServiceDuration int    `json:"service_duration"` // Минуты
}

// ValidateSlotResponse HTTP response model
type ValidateSlotResponse struct {
	Available       bool   `json:"available"`
	Reason          string `json:"reason,omitempty"`
	BusinessID      int64  `json:"business_id"`
	AppointmentDate string `json:"appointment_date"`
	StartTime       string `json:"start_time"`
	ServiceDuration int    `json:"service_duration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateSlotRequest) ToUseCaseRequest() (*validateSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &validateSlot.Request{
		BusinessID:             r.BusinessID,
		Date:                   date,
		StartTime:              startTime,
		ServiceDurationMinutes: r.ServiceDuration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSlot.Response) *ValidateSlotResponse {
	return &ValidateSlotResponse{
		Available:       resp.Available,
		Reason:          resp.Reason,
		BusinessID:      resp.BusinessID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		ServiceDuration: resp.ServiceDurationMinutes,
	}
}
