package update_schedule

import "github.com/patitas-app/availability-service/internal/service/schedule/models"

// UpdateScheduleRequest HTTP request model
// Hours индексируется по дню недели: элемент 0 соответствует воскресенью
type UpdateScheduleRequest struct {
	Hours    [7]models.DayHoursInput `json:"hours"`
	Settings models.SettingsInput    `json:"settings"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(businessID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		BusinessID: businessID,
		UserID:     userID,
		Hours:      r.Hours,
		Settings:   r.Settings,
	}
}
