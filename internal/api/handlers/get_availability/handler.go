package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/patitas-app/availability-service/internal/api/handlers"
	"github.com/patitas-app/availability-service/internal/domain"
	getAvailability "github.com/patitas-app/availability-service/internal/usecase/get_availability"
)

const (
	msgInvalidBusinessID      = "некорректный ID бизнеса"
	msgMissingStartDate       = "отсутствует обязательный параметр start_date"
	msgInvalidStartDate       = "некорректный формат start_date, ожидается YYYY-MM-DD"
	msgInvalidEndDate         = "некорректный формат end_date, ожидается YYYY-MM-DD"
	msgMissingServiceDuration = "отсутствует обязательный параметр service_duration"
	msgInvalidServiceDuration = "некорректный service_duration, ожидается положительное число минут"
	msgBusinessNotFound       = "бизнес не найден"
	msgSettingsNotFound       = "настройки записи не найдены"
	msgInvalidSlotConfig      = "некорректная конфигурация слотов бизнеса"
	msgDateTooFar             = "запрошенная дата слишком далеко в будущем"
	msgInvalidInput           = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability
// Query params: start_date (обязательно), end_date, service_duration (обязательно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	startDateStr := query.Get("start_date")
	if startDateStr == "" {
		h.logger.Warn("GET /businesses/{id}/availability - Missing start_date: business_id=%d", businessID)
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid start_date %q: %v", startDateStr, err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	var endDate *time.Time
	if endDateStr := query.Get("end_date"); endDateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/availability - Invalid end_date %q: %v", endDateStr, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		endDate = &parsed
	}

	serviceDurationStr := query.Get("service_duration")
	if serviceDurationStr == "" {
		h.logger.Warn("GET /businesses/{id}/availability - Missing service_duration: business_id=%d", businessID)
		handlers.RespondBadRequest(w, msgMissingServiceDuration)
		return
	}
	serviceDuration, err := strconv.Atoi(serviceDurationStr)
	if err != nil || serviceDuration <= 0 {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid service_duration %q", serviceDurationStr)
		handlers.RespondBadRequest(w, msgInvalidServiceDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		BusinessID:             businessID,
		StartDate:              startDate,
		EndDate:                endDate,
		ServiceDurationMinutes: serviceDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/availability - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailability.ErrSettingsNotFound):
			h.logger.Warn("GET /businesses/{id}/availability - Settings not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, getAvailability.ErrInvalidSlotConfig):
			h.logger.Warn("GET /businesses/{id}/availability - Invalid slot config: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotConfig)

		case errors.Is(err, getAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /businesses/{id}/availability - Date too far: business_id=%d, start_date=%s", businessID, startDateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/availability - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{id}/availability - Failed to build report: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability - Report built successfully: business_id=%d, days=%d",
		businessID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
