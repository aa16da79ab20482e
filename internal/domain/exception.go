package domain

import (
	"time"

	"github.com/patitas-app/availability-service/pkg/types"
)

// ExceptionType classifies a blackout period. Informational only: every
// type blocks slots the same way.
type ExceptionType string

const (
	ExceptionBlock    ExceptionType = "block"
	ExceptionVacation ExceptionType = "vacation"
	ExceptionBreak    ExceptionType = "break"
	ExceptionCustom   ExceptionType = "custom"
)

// AvailabilityException represents a business-declared blackout period
// overriding the normal opening hours.
// All-day exceptions block the whole date range and ignore the time fields;
// timed exceptions block only their time sub-interval on each covered date.
type AvailabilityException struct {
	ID         int64
	BusinessID int64
	Type       ExceptionType
	StartDate  time.Time // Inclusive
	EndDate    time.Time // Inclusive
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	IsAllDay   bool
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CoversDate returns true if the exception's date range includes the date
func (e *AvailabilityException) CoversDate(date time.Time) bool {
	day := dateOnly(date)
	return !day.Before(dateOnly(e.StartDate)) && !day.After(dateOnly(e.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
