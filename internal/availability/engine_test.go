package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/types"
	"github.com/patitas-app/availability-service/pkg/ptr"
)

// monday 2025-11-03, sunday 2025-11-09
var (
	testMonday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
)

func openDay(open, close string) domain.DayHours {
	return domain.DayHours{
		Open:  ptr.Ptr(types.TimeString(open)),
		Close: ptr.Ptr(types.TimeString(close)),
	}
}

func closedDay() domain.DayHours {
	return domain.DayHours{Closed: true}
}

// weekdaysNineToFive: Mon-Fri 09:00-17:00, weekend closed
func weekdaysNineToFive() domain.WeeklyHours {
	var week domain.WeeklyHours
	week[time.Sunday] = closedDay()
	week[time.Saturday] = closedDay()
	for wd := time.Monday; wd <= time.Friday; wd++ {
		week[wd] = openDay("09:00", "17:00")
	}
	return week
}

func defaultSettings() domain.AppointmentSettings {
	return domain.AppointmentSettings{
		SlotDurationMinutes:    30,
		BufferTimeMinutes:      0,
		MaxAppointmentsPerSlot: 1,
		MinBookingNoticeHours:  0,
		MaxBookingAdvanceDays:  30,
	}
}

func appointmentAt(date time.Time, start, end string) *domain.Appointment {
	return &domain.Appointment{
		BusinessID: 1,
		Date:       date,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Status:     domain.StatusConfirmed,
	}
}

// longAgo: времени на подготовку всегда достаточно
var longAgo = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateTimeSlots_FullyOpenDay(t *testing.T) {
	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)

	// 09:00 ... 16:00: последний слот, чей конец (17:00) не превышает закрытие
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("16:00"), slots[len(slots)-1].Time)

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s should be available", slot.Time)
		assert.Empty(t, slot.Reason)
		assert.Zero(t, slot.ConflictsCount)
	}
}

func TestGenerateTimeSlots_GridSpacingAndOrder(t *testing.T) {
	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	require.NotEmpty(t, slots)

	prev, err := slots[0].Time.Minutes()
	require.NoError(t, err)
	for _, slot := range slots[1:] {
		cur, err := slot.Time.Minutes()
		require.NoError(t, err)
		assert.Equal(t, 30, cur-prev, "slots must be exactly slot_duration apart")
		prev = cur
	}
}

func TestGenerateTimeSlots_NoSlotPastClosing(t *testing.T) {
	settings := defaultSettings()
	settings.BufferTimeMinutes = 15

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), settings, 60, nil, nil, longAgo)
	require.NotEmpty(t, slots)

	closeMinutes := 17 * 60
	for _, slot := range slots {
		start, err := slot.Time.Minutes()
		require.NoError(t, err)
		assert.LessOrEqual(t, start+60+15, closeMinutes,
			"effective end of slot %s must not exceed closing", slot.Time)
	}
	// 15:30 последний старт сетки, чей эффективный конец (16:45) помещается
	assert.Equal(t, types.TimeString("15:30"), slots[len(slots)-1].Time)
}

func TestGenerateTimeSlots_ClosedDay(t *testing.T) {
	slots := GenerateTimeSlots(testSunday, weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_MisconfiguredHours(t *testing.T) {
	week := weekdaysNineToFive()
	// open >= close: деградация до пустого списка, не ошибка
	week[time.Monday] = openDay("17:00", "09:00")

	slots := GenerateTimeSlots(testMonday, week, defaultSettings(), 60, nil, nil, longAgo)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_NonPositiveSlotDuration(t *testing.T) {
	settings := defaultSettings()
	settings.SlotDurationMinutes = 0

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), settings, 60, nil, nil, longAgo)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_ExistingAppointmentConflicts(t *testing.T) {
	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, appointments, longAgo)
	require.NotEmpty(t, slots)

	bySlot := make(map[types.TimeString]domain.TimeSlot)
	for _, slot := range slots {
		bySlot[slot.Time] = slot
	}

	// Слоты с интервалом услуги 60 минут, пересекающие [10:00, 11:00)
	for _, timeStr := range []string{"09:30", "10:00", "10:30"} {
		slot := bySlot[types.TimeString(timeStr)]
		assert.False(t, slot.Available, "slot %s overlaps the appointment", timeStr)
		assert.Equal(t, domain.ReasonSlotFull, slot.Reason)
		assert.Equal(t, 1, slot.ConflictsCount)
	}

	// Граничащие слоты свободны
	for _, timeStr := range []string{"09:00", "11:00"} {
		slot := bySlot[types.TimeString(timeStr)]
		assert.True(t, slot.Available, "slot %s only touches the appointment boundary", timeStr)
		assert.Zero(t, slot.ConflictsCount)
	}
}

func TestGenerateTimeSlots_CapacityCeilingIsStrict(t *testing.T) {
	settings := defaultSettings()
	settings.MaxAppointmentsPerSlot = 2

	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), settings, 60, nil, appointments, longAgo)

	for _, slot := range slots {
		if slot.Time == "10:00" {
			// Одна запись из двух мест, слот ещё доступен
			assert.True(t, slot.Available)
			assert.Equal(t, 1, slot.ConflictsCount)
		}
	}
}

func TestGenerateTimeSlots_CancelledAppointmentsIgnored(t *testing.T) {
	cancelled := appointmentAt(testMonday, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByCustomer
	noShow := appointmentAt(testMonday, "10:00", "11:00")
	noShow.Status = domain.StatusNoShow

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil,
		[]*domain.Appointment{cancelled, noShow}, longAgo)

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s must ignore inactive appointments", slot.Time)
		assert.Zero(t, slot.ConflictsCount)
	}
}

func TestGenerateTimeSlots_AllDayException(t *testing.T) {
	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionVacation,
			StartDate: testMonday,
			EndDate:   testMonday,
			IsAllDay:  true,
		},
	}
	// Записи есть, но причина блокировки важнее подсчёта конфликтов
	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, exceptions, appointments, longAgo)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonBlocked, slot.Reason)
		assert.Zero(t, slot.ConflictsCount)
	}
}

func TestGenerateTimeSlots_TimedException(t *testing.T) {
	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionBreak,
			StartDate: testMonday,
			EndDate:   testMonday,
			StartTime: ptr.Ptr(types.TimeString("13:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
		},
	}

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 30, exceptions, nil, longAgo)

	for _, slot := range slots {
		switch slot.Time {
		case "13:00", "13:30":
			assert.False(t, slot.Available, "slot %s falls inside the break", slot.Time)
			assert.Equal(t, domain.ReasonBlocked, slot.Reason)
		case "12:30":
			// Слот 12:30-13:00 граничит с перерывом, не пересекается
			assert.True(t, slot.Available)
		case "14:00":
			assert.True(t, slot.Available)
		}
	}
}

func TestGenerateTimeSlots_ExceptionOtherDate(t *testing.T) {
	tuesday := testMonday.AddDate(0, 0, 1)
	exceptions := []domain.AvailabilityException{
		{
			Type:      domain.ExceptionBlock,
			StartDate: tuesday,
			EndDate:   tuesday,
			IsAllDay:  true,
		},
	}

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, exceptions, nil, longAgo)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateTimeSlots_NoticeWindow(t *testing.T) {
	settings := defaultSettings()
	settings.MinBookingNoticeHours = 24

	// Понедельник 08:00: до вторника 08:00 бронировать нельзя, то есть весь день
	now := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), settings, 60, nil, nil, now)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.False(t, slot.Available)
		assert.Equal(t, domain.ReasonTooSoon, slot.Reason)
	}
}

func TestGenerateTimeSlots_NoticeWindowPartialDay(t *testing.T) {
	settings := defaultSettings()
	settings.MinBookingNoticeHours = 2

	// Понедельник 09:30: слоты раньше 11:30 too soon, остальные доступны
	now := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

	slots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), settings, 30, nil, nil, now)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		minutes, err := slot.Time.Minutes()
		require.NoError(t, err)
		if minutes < 11*60+30 {
			assert.False(t, slot.Available, "slot %s is inside the notice window", slot.Time)
			assert.Equal(t, domain.ReasonTooSoon, slot.Reason)
		} else {
			assert.True(t, slot.Available, "slot %s is outside the notice window", slot.Time)
		}
	}
}

func TestCalculateAvailability_SingleDayMatchesGenerator(t *testing.T) {
	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	days := CalculateAvailability(testMonday, testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, appointments, longAgo)
	require.Len(t, days, 1)

	expected := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, appointments, longAgo)
	assert.True(t, days[0].IsOpen)
	assert.Equal(t, expected, days[0].Slots)
}

func TestCalculateAvailability_RangeHasOneEntryPerDate(t *testing.T) {
	start := testMonday
	end := testMonday.AddDate(0, 0, 6) // Mon..Sun

	days := CalculateAvailability(start, end, weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	require.Len(t, days, 7)

	for i, day := range days {
		assert.Equal(t, start.AddDate(0, 0, i), day.Date, "dates must be ascending with no gaps")
	}

	// Суббота и воскресенье закрыты, но присутствуют в отчёте
	saturday := days[5]
	sunday := days[6]
	assert.False(t, saturday.IsOpen)
	assert.Empty(t, saturday.Slots)
	assert.Zero(t, saturday.TotalAvailable)
	assert.False(t, sunday.IsOpen)
	assert.Empty(t, sunday.Slots)
	assert.Zero(t, sunday.TotalAvailable)
}

func TestCalculateAvailability_TotalAvailableCountsOnlyAvailable(t *testing.T) {
	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	days := CalculateAvailability(testMonday, testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, appointments, longAgo)
	require.Len(t, days, 1)

	// 15 слотов, из них 3 пересекают запись 10:00-11:00
	assert.Equal(t, 12, days[0].TotalAvailable)
}

func TestIsSlotAvailable_OnGrid(t *testing.T) {
	check := IsSlotAvailable(testMonday, "09:00", weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	assert.True(t, check.Available)
	assert.Empty(t, check.Reason)
}

func TestIsSlotAvailable_OffGrid(t *testing.T) {
	// 09:15 никогда не генерируется на 30-минутной сетке от 09:00
	check := IsSlotAvailable(testMonday, "09:15", weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	assert.False(t, check.Available)
	assert.Equal(t, domain.ReasonInvalidTimeSlot, check.Reason)
}

func TestIsSlotAvailable_ReturnsGeneratorVerdictVerbatim(t *testing.T) {
	appointments := []*domain.Appointment{
		appointmentAt(testMonday, "10:00", "11:00"),
	}

	check := IsSlotAvailable(testMonday, "10:00", weekdaysNineToFive(), defaultSettings(), 60, nil, appointments, longAgo)
	assert.False(t, check.Available)
	assert.Equal(t, domain.ReasonSlotFull, check.Reason)
}

func TestIsSlotAvailable_ClosedDay(t *testing.T) {
	check := IsSlotAvailable(testSunday, "10:00", weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	assert.False(t, check.Available)
	assert.Equal(t, domain.ReasonInvalidTimeSlot, check.Reason)
}

func TestGenerateTimeSlots_BufferShortensDay(t *testing.T) {
	withBuffer := defaultSettings()
	withBuffer.BufferTimeMinutes = 30

	noBufferSlots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), defaultSettings(), 60, nil, nil, longAgo)
	bufferSlots := GenerateTimeSlots(testMonday, weekdaysNineToFive(), withBuffer, 60, nil, nil, longAgo)

	// Буфер входит в эффективный конец: последний старт сдвигается раньше
	require.NotEmpty(t, bufferSlots)
	assert.Len(t, bufferSlots, len(noBufferSlots)-1)
	assert.Equal(t, types.TimeString("15:30"), bufferSlots[len(bufferSlots)-1].Time)
}
