package catalog

import (
	"context"

	"github.com/malnis/cleansched/internal/domain"
)

// ServiceRepository is the storage surface for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, upd *domain.ServiceUpdate) error
	Delete(ctx context.Context, id int64) error
}

// CleanerRepository is the storage surface for the cleaner roster.
type CleanerRepository interface {
	Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error)
	List(ctx context.Context) ([]*domain.Cleaner, error)
	Update(ctx context.Context, id int64, upd *domain.CleanerUpdate) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
