package create_appointment

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	createAppointment "github.com/patitas-app/availability-service/internal/usecase/create_appointment"
	"github.com/patitas-app/availability-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BusinessID      int64   `json:"business_id"`
	AppointmentDate string  `json:"appointment_date"` // "2025-10-15"
	StartTime       string  `json:"start_time"`       // "10:00"
	ServiceDuration int     `json:"service_duration"` // Минуты
	ServiceName     string  `json:"service_name"`
	PetName         *string `json:"pet_name,omitempty"`
	PetBreed        *string `json:"pet_breed,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	BusinessID      int64   `json:"business_id"`
	CustomerID      int64   `json:"customer_id"`
	AppointmentDate string  `json:"appointment_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"service_name"`
	PetName         *string `json:"pet_name,omitempty"`
	PetBreed        *string `json:"pet_breed,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:             r.BusinessID,
		CustomerID:             customerID,
		Date:                   date,
		StartTime:              startTime,
		ServiceDurationMinutes: r.ServiceDuration,
		ServiceName:            r.ServiceName,
		PetName:                r.PetName,
		PetBreed:               r.PetBreed,
		Notes:                  r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment
	return &AppointmentResponse{
		ID:              appt.ID,
		BusinessID:      appt.BusinessID,
		CustomerID:      appt.CustomerID,
		AppointmentDate: appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		EndTime:         appt.EndTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		PetName:         appt.PetName,
		PetBreed:        appt.PetBreed,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
