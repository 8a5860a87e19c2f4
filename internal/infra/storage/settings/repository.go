package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/dbmetrics"
	"github.com/malnis/cleansched/pkg/psqlbuilder"
)

// The settings table holds a single row, pinned by id = 1.
const singletonID = 1

// Repository stores the singleton site settings row.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a site settings repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches the settings row. Returns ErrSettingsNotFound when no row has
// been saved yet; callers fall back to domain defaults.
func (r *Repository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"site_name", "logo_url", "hero_title", "hero_subtitle",
		"phone", "email", "address", "facebook", "instagram", "updated_at",
	).
		From("site_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SiteSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SiteName,
		&s.LogoURL,
		&s.HeroTitle,
		&s.HeroSubtitle,
		&s.Phone,
		&s.Email,
		&s.Address,
		&s.Facebook,
		&s.Instagram,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Save upserts the settings row with the given full state.
func (r *Repository) Save(ctx context.Context, s *domain.SiteSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns(
			"id", "site_name", "logo_url", "hero_title", "hero_subtitle",
			"phone", "email", "address", "facebook", "instagram",
		).
		Values(
			singletonID, s.SiteName, s.LogoURL, s.HeroTitle, s.HeroSubtitle,
			s.Phone, s.Email, s.Address, s.Facebook, s.Instagram,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			logo_url = EXCLUDED.logo_url,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
