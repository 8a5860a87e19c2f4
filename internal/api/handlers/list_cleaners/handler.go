package list_cleaners

import (
	"net/http"

	"github.com/malnis/cleansched/internal/api/handlers"
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

// Handle GET /api/v1/cleaners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCleaners(r.Context())
	if err != nil {
		h.logger.Error("GET /cleaners - Failed to list cleaners: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
