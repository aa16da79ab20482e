package domain

import "time"

// AppointmentSettings represents the booking configuration of a business.
// Configured once by the business owner, read-only for availability
// calculations.
type AppointmentSettings struct {
	ID                     int64
	BusinessID             int64
	SlotDurationMinutes    int // Fixed grid step between slot start times
	BufferTimeMinutes      int // Idle gap reserved after each service
	MaxAppointmentsPerSlot int // Concurrent-capacity ceiling per overlapping interval
	MinBookingNoticeHours  int // Minimum lead time before a slot may be booked
	MaxBookingAdvanceDays  int // Upper bound on how far ahead callers may query
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// AllowsParallelAppointments returns true if more than one appointment may
// occupy the same interval
func (s *AppointmentSettings) AllowsParallelAppointments() bool {
	return s.MaxAppointmentsPerSlot > 1
}

// HasBuffer returns true if a cleanup gap is reserved after each service
func (s *AppointmentSettings) HasBuffer() bool {
	return s.BufferTimeMinutes > 0
}
