package settings

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func testSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		SiteName:     "Mal'nis",
		LogoURL:      "https://img.test/logo.png",
		HeroTitle:    "Welcome to Mal'nis",
		HeroSubtitle: "Fast and easy scheduling for your cleaning needs.",
		Phone:        "+63 912 345 6789",
		Email:        "support@cleansched.com",
		Address:      "123 Clean Street, Makati City, Philippines",
		Facebook:     "https://facebook.com/malnis",
		Instagram:    "https://instagram.com/malnis",
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newTestRepo(t)
	want := testSettings()

	updatedAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"site_name", "logo_url", "hero_title", "hero_subtitle",
		"phone", "email", "address", "facebook", "instagram", "updated_at",
	}).AddRow(
		want.SiteName, want.LogoURL, want.HeroTitle, want.HeroSubtitle,
		want.Phone, want.Email, want.Address, want.Facebook, want.Instagram, updatedAt,
	)

	// The column list is pinned: it must stay in sync with the site_settings
	// table.
	mock.ExpectQuery(`SELECT site_name, logo_url, hero_title, hero_subtitle, phone, email, address, facebook, instagram, updated_at FROM site_settings WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)

	want.UpdatedAt = updatedAt
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotSavedYet(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM site_settings WHERE id = \$1`).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock := newTestRepo(t)
	s := testSettings()

	mock.ExpectExec(`INSERT INTO site_settings \(id,site_name,logo_url,hero_title,hero_subtitle,phone,email,address,facebook,instagram\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10\) ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs(
			1, s.SiteName, s.LogoURL, s.HeroTitle, s.HeroSubtitle,
			s.Phone, s.Email, s.Address, s.Facebook, s.Instagram,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), s)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
