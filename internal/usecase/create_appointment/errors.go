package create_appointment

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_appointment: business not found")

	// ErrSettingsNotFound возвращается, когда у бизнеса нет настроек записи
	ErrSettingsNotFound = errors.New("create_appointment: appointment settings not found")

	// ErrInvalidSlotConfig возвращается при некорректной конфигурации слотов
	ErrInvalidSlotConfig = errors.New("create_appointment: invalid slot configuration")

	// ErrSlotNotAvailable возвращается, когда слот занят другими записями
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotBlocked возвращается, когда слот перекрыт блокировкой бизнеса
	ErrSlotBlocked = errors.New("create_appointment: slot is blocked by business")

	// ErrTooSoonToBook возвращается, когда слот внутри окна минимального уведомления
	ErrTooSoonToBook = errors.New("create_appointment: too soon to book")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
