package delete_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "invalid schedule id"
	msgScheduleNotFound  = "schedule not found"
)

type deleteResponse struct {
	Message string `json:"message"`
}

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

// Handle DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, schedules.ErrScheduleNotFound) {
			h.logger.Warn("DELETE /schedules/{id} - Schedule not found: id=%d", id)
			handlers.RespondNotFound(w, msgScheduleNotFound)
			return
		}
		h.logger.Error("DELETE /schedules/{id} - Failed to delete schedule id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, deleteResponse{Message: "schedule deleted successfully"})
}
