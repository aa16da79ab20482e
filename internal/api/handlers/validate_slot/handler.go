package validate_slot

import (
	"errors"
	"net/http"

	"github.com/patitas-app/availability-service/internal/api/handlers"
	validateSlot "github.com/patitas-app/availability-service/internal/usecase/validate_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "отсутствуют обязательные поля: business_id, appointment_date, start_time, service_duration"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBusinessNotFound   = "бизнес не найден"
	msgSettingsNotFound   = "настройки записи не найдены"
	msgInvalidSlotConfig  = "некорректная конфигурация слотов бизнеса"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
)

type Handler struct {
	useCase ValidateSlotUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BusinessID == 0 || req.AppointmentDate == "" || req.StartTime == "" || req.ServiceDuration == 0 {
		h.logger.Warn("POST /bookings/validate - Missing required fields: business_id=%d", req.BusinessID)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSlot.ErrBusinessNotFound):
			h.logger.Warn("POST /bookings/validate - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, validateSlot.ErrSettingsNotFound):
			h.logger.Warn("POST /bookings/validate - Settings not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, validateSlot.ErrInvalidSlotConfig):
			h.logger.Warn("POST /bookings/validate - Invalid slot config: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotConfig)

		case errors.Is(err, validateSlot.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings/validate - Date too far: business_id=%d, date=%s", req.BusinessID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, validateSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate slot: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Slot validated: business_id=%d, date=%s, time=%s, available=%t",
		req.BusinessID, req.AppointmentDate, req.StartTime, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
