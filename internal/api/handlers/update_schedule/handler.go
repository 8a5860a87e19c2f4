package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/schedules"
	"github.com/malnis/cleansched/internal/service/schedules/models"
)

const (
	msgInvalidScheduleID  = "invalid schedule id"
	msgInvalidRequestBody = "invalid request body"
	msgScheduleNotFound   = "schedule not found"
	msgSlotTaken          = "this time slot is already booked for that date"
	msgInvalidUpdate      = "invalid update fields"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedules/{id} - Schedule not found: id=%d", id)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrSlotTaken):
			h.logger.Warn("PUT /schedules/{id} - Slot taken while updating id=%d", id)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{id} - Invalid update for id=%d: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidUpdate)

		default:
			h.logger.Error("PUT /schedules/{id} - Failed to update schedule id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
