// Package availability реализует расчёт доступности слотов для записи.
//
// Функции пакета выполняют чистые вычисления над переданными данными: недельное
// расписание, настройки записи, исключения (блокировки) и существующие
// записи приходят параметрами, текущее время инжектируется явно. Пакет не
// держит состояния между вызовами и безопасен для конкурентного
// использования.
//
// Важно: расчёт даёт best-effort проверку занятости. Гонку двух
// одновременных бронирований одного слота разрешает не движок, а вызывающий
// код: финальная проверка выполняется в сериализуемой транзакции
// непосредственно перед вставкой записи (см. usecase create_appointment).
package availability

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
	"github.com/patitas-app/availability-service/pkg/types"
)

// GenerateTimeSlots генерирует полный список слотов на одну дату.
// Каждый слот помечается доступен/недоступен с указанием причины;
// недоступные слоты не выбрасываются из списка: UI показывает их
// задизейбленными.
//
// Курсор идёт от открытия до закрытия с фиксированным шагом
// settings.SlotDurationMinutes независимо от длительности услуги.
// Эффективный конец слота = старт + длительность услуги + буфер;
// слот, чей эффективный конец ровно совпадает с закрытием, допускается.
//
// Закрытый или некорректно настроенный день даёт пустой список, не ошибку.
// Неположительный шаг сетки также даёт пустой список: вызывающий код
// обязан отклонить такую конфигурацию до расчёта.
func GenerateTimeSlots(
	date time.Time,
	week domain.WeeklyHours,
	settings domain.AppointmentSettings,
	serviceDurationMinutes int,
	exceptions []domain.AvailabilityException,
	appointments []*domain.Appointment,
	now time.Time,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if settings.SlotDurationMinutes <= 0 || serviceDurationMinutes <= 0 {
		return slots
	}

	open, close, ok := week.ForDate(date).Window()
	if !ok {
		return slots
	}

	openMinutes, err := open.Minutes()
	if err != nil {
		return slots
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return slots
	}

	// Интервал, занимаемый бронированием: услуга + буфер после неё
	occupiedMinutes := serviceDurationMinutes + settings.BufferTimeMinutes

	// Раньше этого момента бронировать нельзя (окно предупреждения)
	earliestStart := now.Add(time.Duration(settings.MinBookingNoticeHours) * time.Hour)

	for cursor := openMinutes; ; cursor += settings.SlotDurationMinutes {
		slotEnd := cursor + occupiedMinutes
		if slotEnd > closeMinutes {
			break
		}

		startTime, err := types.NewTimeStringFromMinutes(cursor)
		if err != nil {
			break
		}

		slotStart := time.Date(date.Year(), date.Month(), date.Day(),
			cursor/60, cursor%60, 0, 0, date.Location())
		if slotStart.Before(earliestStart) {
			slots = append(slots, domain.TimeSlot{
				Time:      startTime,
				Available: false,
				Reason:    domain.ReasonTooSoon,
			})
			continue
		}

		if isBlockedByException(date, cursor, slotEnd, exceptions) {
			slots = append(slots, domain.TimeSlot{
				Time:      startTime,
				Available: false,
				Reason:    domain.ReasonBlocked,
			})
			continue
		}

		conflicts := countOverlappingAppointments(date, cursor, slotEnd, appointments)
		if conflicts >= settings.MaxAppointmentsPerSlot {
			slots = append(slots, domain.TimeSlot{
				Time:           startTime,
				Available:      false,
				ConflictsCount: conflicts,
				Reason:         domain.ReasonSlotFull,
			})
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Time:           startTime,
			Available:      true,
			ConflictsCount: conflicts,
		})
	}

	return slots
}

// CalculateAvailability строит отчёт о доступности на каждый день
// включительного диапазона [startDate, endDate].
// В результате ровно одна запись на каждую дату диапазона по возрастанию,
// закрытые дни не пропускаются (isOpen=false, пустой список слотов).
func CalculateAvailability(
	startDate, endDate time.Time,
	week domain.WeeklyHours,
	settings domain.AppointmentSettings,
	serviceDurationMinutes int,
	exceptions []domain.AvailabilityException,
	appointments []*domain.Appointment,
	now time.Time,
) []domain.DayAvailability {
	days := make([]domain.DayAvailability, 0)

	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		_, _, isOpen := week.ForDate(date).Window()
		if !isOpen {
			days = append(days, domain.DayAvailability{
				Date:   date,
				IsOpen: false,
				Slots:  []domain.TimeSlot{},
			})
			continue
		}

		slots := GenerateTimeSlots(date, week, settings, serviceDurationMinutes, exceptions, appointments, now)

		totalAvailable := 0
		for _, slot := range slots {
			if slot.Available {
				totalAvailable++
			}
		}

		days = append(days, domain.DayAvailability{
			Date:           date,
			IsOpen:         true,
			Slots:          slots,
			TotalAvailable: totalAvailable,
		})
	}

	return days
}

// IsSlotAvailable финальная авторитетная проверка одного кандидата
// (date, startTime) перед коммитом бронирования.
//
// Сетка слотов пересчитывается заново теми же правилами, что и для списка:
// пересчёт вместо кэширования гарантирует согласованность проверки с
// генератором (слотов на день десятки, не тысячи, это дёшево).
// Время вне сетки не существует как слот и возвращается как недоступное.
func IsSlotAvailable(
	date time.Time,
	startTime types.TimeString,
	week domain.WeeklyHours,
	settings domain.AppointmentSettings,
	serviceDurationMinutes int,
	exceptions []domain.AvailabilityException,
	appointments []*domain.Appointment,
	now time.Time,
) domain.SlotCheck {
	slots := GenerateTimeSlots(date, week, settings, serviceDurationMinutes, exceptions, appointments, now)

	for _, slot := range slots {
		if slot.Time.Equal(startTime) {
			return domain.SlotCheck{
				Available: slot.Available,
				Reason:    slot.Reason,
			}
		}
	}

	return domain.SlotCheck{
		Available: false,
		Reason:    domain.ReasonInvalidTimeSlot,
	}
}

// truncateToDay обнуляет время, сохраняя дату и локацию
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
