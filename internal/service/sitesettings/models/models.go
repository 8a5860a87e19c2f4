package models

import (
	"time"

	"github.com/malnis/cleansched/internal/domain"
)

// UpdateSettingsRequest edits the site content. Nil fields stay unchanged.
type UpdateSettingsRequest struct {
	SiteName     *string `json:"siteName,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	HeroTitle    *string `json:"heroTitle,omitempty"`
	HeroSubtitle *string `json:"heroSubtitle,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	Facebook     *string `json:"facebook,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
}

// ToDomainUpdate converts the request into a domain update.
func (r *UpdateSettingsRequest) ToDomainUpdate() *domain.SiteSettingsUpdate {
	return &domain.SiteSettingsUpdate{
		SiteName:     r.SiteName,
		LogoURL:      r.LogoURL,
		HeroTitle:    r.HeroTitle,
		HeroSubtitle: r.HeroSubtitle,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Facebook:     r.Facebook,
		Instagram:    r.Instagram,
	}
}

// SettingsResponse is the site content DTO.
type SettingsResponse struct {
	SiteName     string    `json:"siteName"`
	LogoURL      string    `json:"logoUrl"`
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Facebook     string    `json:"facebook"`
	Instagram    string    `json:"instagram"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromDomainSettings converts the domain entity into the DTO.
func FromDomainSettings(s *domain.SiteSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		SiteName:     s.SiteName,
		LogoURL:      s.LogoURL,
		HeroTitle:    s.HeroTitle,
		HeroSubtitle: s.HeroSubtitle,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		Facebook:     s.Facebook,
		Instagram:    s.Instagram,
		UpdatedAt:    s.UpdatedAt,
	}
}
