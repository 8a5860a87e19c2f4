package update_cleaner

import (
	"context"

	"github.com/malnis/cleansched/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateCleaner(ctx context.Context, id int64, req *models.UpdateCleanerRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
