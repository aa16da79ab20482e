package create_exception

import "github.com/patitas-app/availability-service/internal/service/schedule/models"

// CreateExceptionRequest HTTP request model
type CreateExceptionRequest struct {
	Type      string  `json:"exception_type"` // block, vacation, break, custom
	StartDate string  `json:"start_date"`     // "2025-10-15"
	EndDate   string  `json:"end_date"`       // "2025-10-20"
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	IsAllDay  bool    `json:"is_all_day"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateExceptionRequest) ToServiceRequest(businessID, userID int64) *models.CreateExceptionRequest {
	return &models.CreateExceptionRequest{
		BusinessID: businessID,
		UserID:     userID,
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		IsAllDay:   r.IsAllDay,
		Reason:     r.Reason,
	}
}
