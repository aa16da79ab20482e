package validate_slot

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("validate_slot: business not found")

	// ErrSettingsNotFound возвращается, когда у бизнеса нет настроек записи
	ErrSettingsNotFound = errors.New("validate_slot: appointment settings not found")

	// ErrInvalidSlotConfig возвращается при некорректной конфигурации слотов
	ErrInvalidSlotConfig = errors.New("validate_slot: invalid slot configuration")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("validate_slot: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_slot: internal error")
)
