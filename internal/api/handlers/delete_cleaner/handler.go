package delete_cleaner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/catalog"
)

const (
	msgInvalidCleanerID = "invalid cleaner id"
	msgCleanerNotFound  = "cleaner not found"
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

// Handle DELETE /api/v1/cleaners/{cleanerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["cleanerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /cleaners/{id} - Invalid cleaner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCleanerID)
		return
	}

	if err := h.service.DeleteCleaner(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrCleanerNotFound) {
			h.logger.Warn("DELETE /cleaners/{id} - Cleaner not found: id=%d", id)
			handlers.RespondNotFound(w, msgCleanerNotFound)
			return
		}
		h.logger.Error("DELETE /cleaners/{id} - Failed to delete cleaner id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, deleteResponse{Message: "cleaner deleted"})
}
