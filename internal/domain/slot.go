package domain

import (
	"time"

	"github.com/patitas-app/availability-service/pkg/types"
)

// Slot unavailability reasons. These are API contract values consumed by
// the booking UI, not free-form diagnostics.
const (
	ReasonTooSoon         = "too soon to book"
	ReasonBlocked         = "blocked by business"
	ReasonSlotFull        = "slot full"
	ReasonInvalidTimeSlot = "invalid time slot"
)

// TimeSlot is one candidate appointment start time on the fixed grid,
// annotated with whether it can be booked and why not.
type TimeSlot struct {
	Time           types.TimeString
	Available      bool
	ConflictsCount int
	Reason         string // Empty for available slots
}

// DayAvailability is the availability report for one calendar date
type DayAvailability struct {
	Date           time.Time
	IsOpen         bool
	Slots          []TimeSlot
	TotalAvailable int
}

// SlotCheck is the authoritative answer for a single candidate slot
type SlotCheck struct {
	Available bool
	Reason    string
}
