package update_cleaner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/catalog"
	"github.com/malnis/cleansched/internal/service/catalog/models"
)

const (
	msgInvalidCleanerID   = "invalid cleaner id"
	msgInvalidRequestBody = "invalid request body"
	msgCleanerNotFound    = "cleaner not found"
)

type updateResponse struct {
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

// Handle PATCH /api/v1/cleaners/{cleanerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["cleanerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /cleaners/{id} - Invalid cleaner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCleanerID)
		return
	}

	var req models.UpdateCleanerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cleaners/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateCleaner(r.Context(), id, &req); err != nil {
		if errors.Is(err, catalog.ErrCleanerNotFound) {
			h.logger.Warn("PATCH /cleaners/{id} - Cleaner not found: id=%d", id)
			handlers.RespondNotFound(w, msgCleanerNotFound)
			return
		}
		h.logger.Error("PATCH /cleaners/{id} - Failed to update cleaner id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updateResponse{Message: "cleaner updated"})
}
