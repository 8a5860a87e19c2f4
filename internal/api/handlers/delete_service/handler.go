package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid service id"
	msgServiceNotFound  = "service not found"
)

type deleteResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, deleteResponse{Message: "service deleted"})
}
