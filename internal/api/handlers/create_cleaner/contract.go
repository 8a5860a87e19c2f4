package create_cleaner

import (
	"context"

	"github.com/malnis/cleansched/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCleaner(ctx context.Context, req *models.CreateCleanerRequest) (*models.CleanerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
