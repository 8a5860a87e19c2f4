package sitesettings

import (
	"context"

	"github.com/malnis/cleansched/internal/domain"
)

// SettingsRepository is the storage surface for the settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Save(ctx context.Context, s *domain.SiteSettings) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
