package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes    = 30
	DefaultBufferTimeMinutes      = 0
	DefaultMaxAppointmentsPerSlot = 1
	DefaultMinBookingNoticeHours  = 1
	DefaultMaxBookingAdvanceDays  = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinBufferTimeMinutes        = 0
	MaxBufferTimeMinutes        = 240 // 4 hours
	MinAppointmentsPerSlot      = 1
	MaxAppointmentsPerSlotLimit = 50
	MinNoticeHours              = 0
	MaxNoticeHours              = 168 // 1 week
	MinAdvanceDays              = 1
	MaxAdvanceDays              = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте конфликтов доступности
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByCustomer,
	StatusCancelledByBusiness,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
