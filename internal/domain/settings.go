package domain

import "time"

// SiteSettings is the singleton record with editable site content.
type SiteSettings struct {
	SiteName     string
	LogoURL      string
	HeroTitle    string
	HeroSubtitle string
	Phone        string
	Email        string
	Address      string
	Facebook     string
	Instagram    string
	UpdatedAt    time.Time
}

// DefaultSiteSettings returns the content served before an admin has saved
// anything.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:     "Mal'nis",
		HeroTitle:    "Welcome to Mal'nis",
		HeroSubtitle: "Fast and easy scheduling for your cleaning needs.",
		Phone:        "+63 912 345 6789",
		Email:        "support@cleansched.com",
		Address:      "123 Clean Street, Makati City, Philippines",
		Facebook:     "https://facebook.com",
		Instagram:    "https://instagram.com",
	}
}

// SiteSettingsUpdate carries the editable fields. Nil fields keep their
// current value.
type SiteSettingsUpdate struct {
	SiteName     *string
	LogoURL      *string
	HeroTitle    *string
	HeroSubtitle *string
	Phone        *string
	Email        *string
	Address      *string
	Facebook     *string
	Instagram    *string
}
