package availability

import (
	"time"

	"github.com/patitas-app/availability-service/internal/domain"
)

// intervalsOverlap проверяет реальное пересечение интервалов [aStart, aEnd)
// и [bStart, bEnd) в минутах от начала дня.
// Граничащие интервалы (конец одного равен началу другого) НЕ пересекаются:
//   - слот 11:30-12:00, запись 11:20-11:40 → пересечение (11:30-11:40)
//   - слот 11:30-12:00, запись 11:00-11:30 → нет пересечения
//   - слот 11:30-12:00, запись 12:00-12:30 → нет пересечения
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// isBlockedByException проверяет, попадает ли слот под блокировку.
// Слот заблокирован, если диапазон дат исключения покрывает дату расчёта И
// (исключение на весь день ИЛИ его временной поддиапазон пересекается с
// интервалом слота).
func isBlockedByException(date time.Time, slotStart, slotEnd int, exceptions []domain.AvailabilityException) bool {
	for i := range exceptions {
		exc := &exceptions[i]

		if !exc.CoversDate(date) {
			continue
		}

		if exc.IsAllDay {
			return true
		}

		// Таймированное исключение без обоих времён ничего не блокирует
		if exc.StartTime == nil || exc.EndTime == nil {
			continue
		}

		excStart, err := exc.StartTime.Minutes()
		if err != nil {
			continue
		}
		excEnd, err := exc.EndTime.Minutes()
		if err != nil {
			continue
		}

		if intervalsOverlap(slotStart, slotEnd, excStart, excEnd) {
			return true
		}
	}

	return false
}

// countOverlappingAppointments подсчитывает активные записи этой даты,
// чей интервал [start, end) пересекается с интервалом слота.
// Отменённые и no-show записи пропускаются: вызывающий код обычно уже
// отфильтровал их, но движок перепроверяет статус сам.
func countOverlappingAppointments(date time.Time, slotStart, slotEnd int, appointments []*domain.Appointment) int {
	count := 0

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}

		apptEnd, err := appt.EndTime.Minutes()
		if err != nil || apptEnd <= apptStart {
			// Некорректное время окончания: восстанавливаем из длительности
			apptEnd = apptStart + appt.DurationMinutes
		}

		if intervalsOverlap(slotStart, slotEnd, apptStart, apptEnd) {
			count++
		}
	}

	return count
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
