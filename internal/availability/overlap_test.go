package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/ptr"
	"github.com/patitas-app/availability-service/pkg/types"
)

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"slot starts inside", 690, 720, 680, 700, true},
		{"slot ends inside", 690, 720, 710, 740, true},
		{"slot contains interval", 690, 780, 700, 720, true},
		{"interval contains slot", 700, 720, 690, 780, true},
		{"touching before", 690, 720, 660, 690, false},
		{"touching after", 690, 720, 720, 750, false},
		{"disjoint", 690, 720, 800, 860, false},
		{"identical", 690, 720, 690, 720, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intervalsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestIsBlockedByException_DateRange(t *testing.T) {
	start := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionVacation,
			StartDate: start,
			EndDate:   end,
			IsAllDay:  true,
		},
	}

	// Покрытые даты (границы включительно)
	for i := 0; i < 3; i++ {
		date := start.AddDate(0, 0, i)
		assert.True(t, isBlockedByException(date, 600, 660, exceptions), "date %s must be blocked", date)
	}

	// Даты вне диапазона
	assert.False(t, isBlockedByException(start.AddDate(0, 0, -1), 600, 660, exceptions))
	assert.False(t, isBlockedByException(end.AddDate(0, 0, 1), 600, 660, exceptions))
}

func TestIsBlockedByException_TimedIgnoresNonOverlap(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionBreak,
			StartDate: date,
			EndDate:   date,
			StartTime: ptr.Ptr(types.TimeString("13:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
		},
	}

	assert.True(t, isBlockedByException(date, 13*60+30, 14*60+30, exceptions))
	assert.False(t, isBlockedByException(date, 14*60, 15*60, exceptions), "touching the break end is not overlap")
	assert.False(t, isBlockedByException(date, 9*60, 10*60, exceptions))
}

func TestIsBlockedByException_TimedWithoutTimesBlocksNothing(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionCustom,
			StartDate: date,
			EndDate:   date,
			IsAllDay:  false,
		},
	}

	assert.False(t, isBlockedByException(date, 600, 660, exceptions))
}

func TestCountOverlappingAppointments_FiltersByDateAndStatus(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	appointments := []*domain.Appointment{
		appointmentAt(date, "10:00", "11:00"),
		appointmentAt(otherDate, "10:00", "11:00"),
	}
	cancelled := appointmentAt(date, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByBusiness
	appointments = append(appointments, cancelled)

	count := countOverlappingAppointments(date, 10*60, 11*60, appointments)
	assert.Equal(t, 1, count)
}

func TestCountOverlappingAppointments_RecoversEndFromDuration(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	broken := appointmentAt(date, "10:00", "10:00")
	broken.DurationMinutes = 60

	count := countOverlappingAppointments(date, 10*60+30, 11*60+30, []*domain.Appointment{broken})
	assert.Equal(t, 1, count)
}
