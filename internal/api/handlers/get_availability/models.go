package get_availability

import (
	"github.com/patitas-app/availability-service/internal/domain"
	getAvailability "github.com/patitas-app/availability-service/internal/usecase/get_availability"
)

// TimeSlotResponse один слот сетки дня
type TimeSlotResponse struct {
	Time           string `json:"time"` // "10:00"
	Available      bool   `json:"available"`
	ConflictsCount int    `json:"conflicts_count"`
	Reason         string `json:"reason,omitempty"`
}

// DayAvailabilityResponse отчёт о доступности одной даты
type DayAvailabilityResponse struct {
	Date           string             `json:"date"` // "2025-10-15"
	IsOpen         bool               `json:"is_open"`
	Slots          []TimeSlotResponse `json:"slots"`
	TotalAvailable int                `json:"total_available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BusinessID      int64                     `json:"business_id"`
	StartDate       string                    `json:"start_date"`
	EndDate         string                    `json:"end_date"`
	ServiceDuration int                       `json:"service_duration"`
	Availability    []DayAvailabilityResponse `json:"availability"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailabilityResponse, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]TimeSlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = TimeSlotResponse{
				Time:           slot.Time.String(),
				Available:      slot.Available,
				ConflictsCount: slot.ConflictsCount,
				Reason:         slot.Reason,
			}
		}
		days[i] = DayAvailabilityResponse{
			Date:           day.Date.Format(domain.DateFormat),
			IsOpen:         day.IsOpen,
			Slots:          slots,
			TotalAvailable: day.TotalAvailable,
		}
	}

	return &AvailabilityResponse{
		BusinessID:      resp.BusinessID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		ServiceDuration: resp.ServiceDurationMinutes,
		Availability:    days,
	}
}
