package create_appointment

import (
	"errors"
	"net/http"

	"github.com/patitas-app/availability-service/internal/api/handlers"
	"github.com/patitas-app/availability-service/internal/api/middleware"
	createAppointment "github.com/patitas-app/availability-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот занят"
	msgSlotBlocked        = "выбранное время заблокировано бизнесом"
	msgTooSoonToBook      = "слишком поздно для записи на этот слот"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgBusinessNotFound   = "бизнес не найден"
	msgSettingsNotFound   = "настройки записи не найдены"
	msgInvalidSlotConfig  = "некорректная конфигурация слотов бизнеса"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSlotBlocked):
			h.logger.Warn("POST /appointments - Slot blocked: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, createAppointment.ErrTooSoonToBook):
			h.logger.Warn("POST /appointments - Too soon to book: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgTooSoonToBook)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /appointments - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrSettingsNotFound):
			h.logger.Warn("POST /appointments - Settings not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, createAppointment.ErrInvalidSlotConfig):
			h.logger.Warn("POST /appointments - Invalid slot config: business_id=%d, error=%v", req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotConfig)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, business_id=%d, error=%v",
				customerID, req.BusinessID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, business_id=%d",
		result.Appointment.ID, customerID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
