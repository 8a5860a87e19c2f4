package sitesettings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
	settingsRepo "github.com/malnis/cleansched/internal/infra/storage/settings"
	"github.com/malnis/cleansched/internal/service/sitesettings/models"
	"github.com/malnis/cleansched/pkg/ptr"
)

type fakeSettingsRepo struct {
	getFn  func(ctx context.Context) (*domain.SiteSettings, error)
	saveFn func(ctx context.Context, s *domain.SiteSettings) error
	saved  *domain.SiteSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx)
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *domain.SiteSettings) error {
	f.saved = s
	if f.saveFn == nil {
		return nil
	}
	return f.saveFn(ctx, s)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGet_FallsBackToDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.SiteSettings, error) {
			return nil, settingsRepo.ErrSettingsNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	defaults := domain.DefaultSiteSettings()
	assert.Equal(t, defaults.SiteName, resp.SiteName)
	assert.Equal(t, defaults.HeroTitle, resp.HeroTitle)
}

func TestGet_ReturnsSavedSettings(t *testing.T) {
	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.SiteSettings, error) {
			return &domain.SiteSettings{SiteName: "Renamed", Phone: "+63 900 000 0000"}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Renamed", resp.SiteName)
	assert.Equal(t, "+63 900 000 0000", resp.Phone)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.SiteSettings, error) {
			return &domain.SiteSettings{
				SiteName:  "Mal'nis",
				HeroTitle: "Welcome to Mal'nis",
				Phone:     "+63 912 345 6789",
			}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		Phone: ptr.Ptr("+63 900 000 0000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+63 900 000 0000", resp.Phone)
	assert.Equal(t, "Mal'nis", resp.SiteName, "absent fields keep their value")
	assert.Equal(t, "Welcome to Mal'nis", resp.HeroTitle)

	require.NotNil(t, repo.saved)
	assert.Equal(t, "+63 900 000 0000", repo.saved.Phone)
	assert.Equal(t, "Mal'nis", repo.saved.SiteName)
}

func TestUpdate_FirstEditStartsFromDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.SiteSettings, error) {
			return nil, settingsRepo.ErrSettingsNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		SiteName: ptr.Ptr("Renamed"),
	})
	require.NoError(t, err)

	defaults := domain.DefaultSiteSettings()
	assert.Equal(t, "Renamed", resp.SiteName)
	assert.Equal(t, defaults.HeroTitle, resp.HeroTitle, "untouched fields come from defaults")
}

func TestUpdate_SaveErrorMapsToInternal(t *testing.T) {
	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.SiteSettings, error) {
			return domain.DefaultSiteSettings(), nil
		},
		saveFn: func(ctx context.Context, s *domain.SiteSettings) error {
			return errors.New("connection refused")
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		SiteName: ptr.Ptr("Renamed"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
