package get_availability

import (
	"net/http"

	"github.com/malnis/cleansched/internal/api/handlers"
	getAvailability "github.com/malnis/cleansched/internal/usecase/get_availability"
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

// Handle GET /api/v1/schedules/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{})
	if err != nil {
		h.logger.Error("GET /schedules/availability - Failed to compute availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/availability - Availability computed for %d dates", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
