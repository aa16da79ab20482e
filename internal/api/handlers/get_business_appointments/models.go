package get_business_appointments

import (
	"strconv"
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
func ToServiceRequest(businessID, userID int64, startDateStr, endDateStr, statusStr, includeInactiveStr string) (*models.GetBusinessAppointmentsRequest, error) {
	req := &models.GetBusinessAppointmentsRequest{
		BusinessID: businessID,
		UserID:     userID,
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
