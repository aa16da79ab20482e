package get_availability

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_availability: business not found")

	// ErrSettingsNotFound возвращается, когда у бизнеса нет настроек записи
	// Настройки не подставляются по умолчанию: это ошибка конфигурации
	ErrSettingsNotFound = errors.New("get_availability: appointment settings not found")

	// ErrInvalidSlotConfig возвращается при некорректной конфигурации слотов
	// (неположительный шаг сетки)
	ErrInvalidSlotConfig = errors.New("get_availability: invalid slot configuration")

	// ErrDateTooFarInFuture возвращается, когда запрошенный диапазон целиком
	// за пределами окна предварительной записи
	ErrDateTooFarInFuture = errors.New("get_availability: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
