package validate_slot

import (
	"context"

	validateSlot "github.com/patitas-app/availability-service/internal/usecase/validate_slot"
)

type ValidateSlotUseCase interface {
	Execute(ctx context.Context, req *validateSlot.Request) (*validateSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
