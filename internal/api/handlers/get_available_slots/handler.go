package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/usecase/propose_slots"
)

const (
	msgMissingDate = "la fecha es obligatoria"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgPastDate    = "solo se reservan turnos a partir de mañana"
	msgDayClosed   = "el salón no atiende ese día"
)

type Handler struct {
	useCase  SlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase SlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	hours, err := h.useCase.Hours(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, propose_slots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date is not bookable: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, propose_slots.ErrDayClosed):
			h.logger.Warn("GET /available-slots - Salon closed: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDayClosed)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d", dateStr, len(hours))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(date, hours))
}
