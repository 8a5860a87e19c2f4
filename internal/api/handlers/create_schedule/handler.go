package create_schedule

import (
	"errors"
	"net/http"

	"github.com/malnis/cleansched/internal/api/handlers"
	createSchedule "github.com/malnis/cleansched/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "missing or invalid required fields"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTimeSlot    = "time must be one of the offered time slots"
	msgSlotTaken          = "this time slot is already booked for that date"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrSlotTaken):
			h.logger.Warn("POST /schedules - Slot taken: date=%s, time=%q", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createSchedule.ErrInvalidDate):
			h.logger.Warn("POST /schedules - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createSchedule.ErrInvalidTimeSlot):
			h.logger.Warn("POST /schedules - Invalid time slot: %q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: id=%d, date=%s, time=%q",
		result.ID, result.Date, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
