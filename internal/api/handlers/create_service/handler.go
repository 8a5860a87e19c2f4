package create_service

import (
	"errors"
	"net/http"

	"github.com/malnis/cleansched/internal/api/handlers"
	"github.com/malnis/cleansched/internal/service/catalog"
	"github.com/malnis/cleansched/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingName        = "service name is required"
)

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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingName)
			return
		}
		h.logger.Error("POST /services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
