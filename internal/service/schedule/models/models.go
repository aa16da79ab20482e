package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/types"
)

var (
	// ErrInvalidDayHours возвращается при некорректном дневном расписании
	ErrInvalidDayHours = errors.New("invalid day hours")

	// ErrInvalidExceptionType возвращается при некорректном типе блокировки
	ErrInvalidExceptionType = errors.New("invalid exception type")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// DayHoursInput расписание одного дня недели
// Открытый день несёт оба времени, у закрытого только флаг
type DayHoursInput struct {
	Open   *string `json:"open,omitempty"`  // "09:00"
	Close  *string `json:"close,omitempty"` // "18:00"
	Closed bool    `json:"closed"`
}

// SettingsInput настройки записи бизнеса
type SettingsInput struct {
	SlotDurationMinutes    int `json:"slot_duration_minutes"`
	BufferTimeMinutes      int `json:"buffer_time_minutes"`
	MaxAppointmentsPerSlot int `json:"max_appointments_per_slot"`
	MinBookingNoticeHours  int `json:"min_booking_notice_hours"`
	MaxBookingAdvanceDays  int `json:"max_booking_advance_days"`
}

// UpdateScheduleRequest запрос на полную замену расписания и настроек бизнеса
// Hours индексируется по time.Weekday: элемент 0 соответствует воскресенью
type UpdateScheduleRequest struct {
	BusinessID int64            `json:"business_id"`
	UserID     int64            `json:"user_id"`
	Hours      [7]DayHoursInput `json:"hours"`
	Settings   SettingsInput    `json:"settings"`
}

// ToDomainWeek конвертирует недельное расписание в domain модель с валидацией
func (r *UpdateScheduleRequest) ToDomainWeek() (domain.WeeklyHours, error) {
	var week domain.WeeklyHours

	for weekday, day := range r.Hours {
		if day.Closed {
			week[weekday] = domain.DayHours{Closed: true}
			continue
		}

		if day.Open == nil || day.Close == nil {
			return week, fmt.Errorf("%w: weekday %d: open day requires both open and close", ErrInvalidDayHours, weekday)
		}

		open, err := types.NewTimeStringFromString(*day.Open)
		if err != nil {
			return week, fmt.Errorf("%w: weekday %d: %v", ErrInvalidDayHours, weekday, err)
		}
		close, err := types.NewTimeStringFromString(*day.Close)
		if err != nil {
			return week, fmt.Errorf("%w: weekday %d: %v", ErrInvalidDayHours, weekday, err)
		}
		if !open.IsBefore(close) {
			return week, fmt.Errorf("%w: weekday %d: open %s must be before close %s", ErrInvalidDayHours, weekday, open, close)
		}

		week[weekday] = domain.DayHours{Open: &open, Close: &close}
	}

	return week, nil
}

// ToDomainSettings конвертирует настройки в domain модель
func (r *UpdateScheduleRequest) ToDomainSettings() *domain.AppointmentSettings {
	return &domain.AppointmentSettings{
		BusinessID:             r.BusinessID,
		SlotDurationMinutes:    r.Settings.SlotDurationMinutes,
		BufferTimeMinutes:      r.Settings.BufferTimeMinutes,
		MaxAppointmentsPerSlot: r.Settings.MaxAppointmentsPerSlot,
		MinBookingNoticeHours:  r.Settings.MinBookingNoticeHours,
		MaxBookingAdvanceDays:  r.Settings.MaxBookingAdvanceDays,
	}
}

// CreateExceptionRequest запрос на создание блокировки расписания
type CreateExceptionRequest struct {
	BusinessID int64   `json:"business_id"`
	UserID     int64   `json:"user_id"`
	Type       string  `json:"exception_type"` // block, vacation, break, custom
	StartDate  string  `json:"start_date"`     // "2025-10-15"
	EndDate    string  `json:"end_date"`       // "2025-10-20"
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	IsAllDay   bool    `json:"is_all_day"`
	Reason     *string `json:"reason,omitempty"`
}

// ToDomainException конвертирует запрос в domain модель с валидацией
func (r *CreateExceptionRequest) ToDomainException() (*domain.AvailabilityException, error) {
	excType, err := toDomainExceptionType(r.Type)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q", ErrInvalidDate, r.StartDate)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrInvalidDate, r.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidDate)
	}

	exc := &domain.AvailabilityException{
		BusinessID: r.BusinessID,
		Type:       excType,
		StartDate:  startDate,
		EndDate:    endDate,
		IsAllDay:   r.IsAllDay,
		Reason:     r.Reason,
	}

	if !r.IsAllDay {
		if r.StartTime == nil || r.EndTime == nil {
			return nil, fmt.Errorf("%w: timed exception requires both start_time and end_time", ErrInvalidDate)
		}
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidDate, err)
		}
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: end_time: %v", ErrInvalidDate, err)
		}
		if !startTime.IsBefore(endTime) {
			return nil, fmt.Errorf("%w: start_time %s must be before end_time %s", ErrInvalidDate, startTime, endTime)
		}
		exc.StartTime = &startTime
		exc.EndTime = &endTime
	}

	return exc, nil
}

func toDomainExceptionType(t string) (domain.ExceptionType, error) {
	switch domain.ExceptionType(t) {
	case domain.ExceptionBlock, domain.ExceptionVacation, domain.ExceptionBreak, domain.ExceptionCustom:
		return domain.ExceptionType(t), nil
	case "":
		return domain.ExceptionBlock, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExceptionType, t)
	}
}

// Response модели

// DayHoursResponse расписание одного дня недели
type DayHoursResponse struct {
	Open   *string `json:"open,omitempty"`
	Close  *string `json:"close,omitempty"`
	Closed bool    `json:"closed"`
}

// SettingsResponse настройки записи бизнеса
type SettingsResponse struct {
	SlotDurationMinutes    int       `json:"slot_duration_minutes"`
	BufferTimeMinutes      int       `json:"buffer_time_minutes"`
	MaxAppointmentsPerSlot int       `json:"max_appointments_per_slot"`
	MinBookingNoticeHours  int       `json:"min_booking_notice_hours"`
	MaxBookingAdvanceDays  int       `json:"max_booking_advance_days"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ExceptionResponse данные блокировки расписания
type ExceptionResponse struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"business_id"`
	Type       string  `json:"exception_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	IsAllDay   bool    `json:"is_all_day"`
	Reason     *string `json:"reason,omitempty"`
}

// ScheduleResponse полное расписание бизнеса: часы, настройки и блокировки
// Hours индексируется по time.Weekday: элемент 0 соответствует воскресенью
type ScheduleResponse struct {
	BusinessID int64               `json:"business_id"`
	Timezone   string              `json:"timezone"`
	Hours      [7]DayHoursResponse `json:"hours"`
	Settings   *SettingsResponse   `json:"settings,omitempty"`
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainWeek конвертирует недельное расписание в DTO
func FromDomainWeek(week domain.WeeklyHours) [7]DayHoursResponse {
	var resp [7]DayHoursResponse
	for weekday, day := range week {
		resp[weekday] = DayHoursResponse{Closed: day.Closed}
		if day.Open != nil {
			open := day.Open.String()
			resp[weekday].Open = &open
		}
		if day.Close != nil {
			close := day.Close.String()
			resp[weekday].Close = &close
		}
	}
	return resp
}

// FromDomainSettings конвертирует настройки в DTO
func FromDomainSettings(s *domain.AppointmentSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		SlotDurationMinutes:    s.SlotDurationMinutes,
		BufferTimeMinutes:      s.BufferTimeMinutes,
		MaxAppointmentsPerSlot: s.MaxAppointmentsPerSlot,
		MinBookingNoticeHours:  s.MinBookingNoticeHours,
		MaxBookingAdvanceDays:  s.MaxBookingAdvanceDays,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

// FromDomainException конвертирует блокировку в DTO
func FromDomainException(e *domain.AvailabilityException) *ExceptionResponse {
	if e == nil {
		return nil
	}

	resp := &ExceptionResponse{
		ID:         e.ID,
		BusinessID: e.BusinessID,
		Type:       string(e.Type),
		StartDate:  e.StartDate.Format(domain.DateFormat),
		EndDate:    e.EndDate.Format(domain.DateFormat),
		IsAllDay:   e.IsAllDay,
		Reason:     e.Reason,
	}

	if e.StartTime != nil {
		startTime := e.StartTime.String()
		resp.StartTime = &startTime
	}
	if e.EndTime != nil {
		endTime := e.EndTime.String()
		resp.EndTime = &endTime
	}

	return resp
}

// FromDomainExceptionList конвертирует список блокировок в DTO
func FromDomainExceptionList(exceptions []domain.AvailabilityException) []ExceptionResponse {
	resp := make([]ExceptionResponse, 0, len(exceptions))
	for i := range exceptions {
		if excResp := FromDomainException(&exceptions[i]); excResp != nil {
			resp = append(resp, *excResp)
		}
	}
	return resp
}
