package sitesettings

import (
	"context"
	"errors"
	"fmt"

	"github.com/malnis/cleansched/internal/domain"
	settingsRepo "github.com/malnis/cleansched/internal/infra/storage/settings"
	"github.com/malnis/cleansched/internal/service/sitesettings/models"
)

// Service manages the singleton site settings.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates the site settings service.
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the current site settings, falling back to domain defaults
// when nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no saved settings, serving defaults")
			return models.FromDomainSettings(domain.DefaultSiteSettings()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update merges the non-nil request fields over the current state and saves.
//
// The merge is read-then-write over the singleton row, so two concurrent
// edits resolve as last-writer-wins: the later Save overwrites the earlier
// one's full state. Site settings are edited by a single admin in practice,
// so no row locking is taken here.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		current = domain.DefaultSiteSettings()
	}

	applyUpdate(current, req.ToDomainUpdate())

	if err := s.settingsRepo.Save(ctx, current); err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - save error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: site settings saved")
	return models.FromDomainSettings(current), nil
}

// applyUpdate overwrites the fields present in upd.
func applyUpdate(s *domain.SiteSettings, upd *domain.SiteSettingsUpdate) {
	if upd.SiteName != nil {
		s.SiteName = *upd.SiteName
	}
	if upd.LogoURL != nil {
		s.LogoURL = *upd.LogoURL
	}
	if upd.HeroTitle != nil {
		s.HeroTitle = *upd.HeroTitle
	}
	if upd.HeroSubtitle != nil {
		s.HeroSubtitle = *upd.HeroSubtitle
	}
	if upd.Phone != nil {
		s.Phone = *upd.Phone
	}
	if upd.Email != nil {
		s.Email = *upd.Email
	}
	if upd.Address != nil {
		s.Address = *upd.Address
	}
	if upd.Facebook != nil {
		s.Facebook = *upd.Facebook
	}
	if upd.Instagram != nil {
		s.Instagram = *upd.Instagram
	}
}
