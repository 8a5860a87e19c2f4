package list_cleaners

import (
	"context"

	"github.com/malnis/cleansched/internal/service/catalog/models"
)

type CatalogService interface {
	ListCleaners(ctx context.Context) (*models.CleanerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
