package domain

import (
	"time"

	"github.com/patitas-app/availability-service/pkg/types"
)

// Business represents a pet-grooming business
type Business struct {
	ID          int64
	Name        string
	OwnerUserID int64  // User who manages the schedule and appointments
	Timezone    string // IANA name, e.g. "Europe/Madrid"
	Hours       WeeklyHours
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID manages this business
func (b *Business) IsOwnedBy(userID int64) bool {
	return b.OwnerUserID == userID
}

// Location resolves the business timezone, falling back to UTC
func (b *Business) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayHours describes the opening window for one weekday.
// A closed day carries no open/close times; an open day must carry both.
type DayHours struct {
	Open   *types.TimeString
	Close  *types.TimeString
	Closed bool
}

// Window resolves the day into an explicit open interval.
// ok is false for closed days and for misconfigured days (missing times or
// open >= close), so callers never have to distinguish those by nil checks.
func (d DayHours) Window() (open, close types.TimeString, ok bool) {
	if d.Closed || d.Open == nil || d.Close == nil {
		return "", "", false
	}
	if !(*d.Open).IsBefore(*d.Close) {
		return "", "", false
	}
	return *d.Open, *d.Close, true
}

// WeeklyHours holds one DayHours per weekday, indexed by time.Weekday
// (Sunday = 0). No locale-dependent day names are involved anywhere.
type WeeklyHours [7]DayHours

// ForDate returns the hours for the weekday of the given date
func (w WeeklyHours) ForDate(date time.Time) DayHours {
	return w[date.Weekday()]
}
