package models

import (
	"time"

	"github.com/malnis/cleansched/internal/domain"
)

// CreateServiceRequest adds an entry to the cleaning-service catalog.
type CreateServiceRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Img         *string  `json:"img,omitempty"`
}

// ToDomainService converts the request into a domain entity.
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Img:         r.Img,
	}
}

// UpdateServiceRequest edits a catalog entry. Nil fields stay unchanged.
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Img         *string  `json:"img,omitempty"`
}

// ToDomainUpdate converts the request into a domain update.
func (r *UpdateServiceRequest) ToDomainUpdate() *domain.ServiceUpdate {
	return &domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Img:         r.Img,
	}
}

// ServiceResponse is the catalog entry DTO.
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Img         *string   `json:"img,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceListResponse is the list wrapper.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService converts a domain entity into the DTO.
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Img:         s.Img,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainServiceList converts a slice of domain entities.
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: out}
}

// CreateCleanerRequest adds a cleaner to the roster.
type CreateCleanerRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
	Img  *string `json:"img,omitempty"`
}

// ToDomainCleaner converts the request into a domain entity.
func (r *CreateCleanerRequest) ToDomainCleaner() *domain.Cleaner {
	return &domain.Cleaner{
		Name: r.Name,
		Bio:  r.Bio,
		Img:  r.Img,
	}
}

// UpdateCleanerRequest edits a roster entry. Nil fields stay unchanged.
type UpdateCleanerRequest struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
	Img  *string `json:"img,omitempty"`
}

// ToDomainUpdate converts the request into a domain update.
func (r *UpdateCleanerRequest) ToDomainUpdate() *domain.CleanerUpdate {
	return &domain.CleanerUpdate{
		Name: r.Name,
		Bio:  r.Bio,
		Img:  r.Img,
	}
}

// CleanerResponse is the roster entry DTO.
type CleanerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	Img       *string   `json:"img,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CleanerListResponse is the list wrapper.
type CleanerListResponse struct {
	Cleaners []CleanerResponse `json:"cleaners"`
}

// FromDomainCleaner converts a domain entity into the DTO.
func FromDomainCleaner(c *domain.Cleaner) *CleanerResponse {
	if c == nil {
		return nil
	}
	return &CleanerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Bio:       c.Bio,
		Img:       c.Img,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCleanerList converts a slice of domain entities.
func FromDomainCleanerList(cleaners []*domain.Cleaner) *CleanerListResponse {
	out := make([]CleanerResponse, 0, len(cleaners))
	for _, c := range cleaners {
		out = append(out, *FromDomainCleaner(c))
	}
	return &CleanerListResponse{Cleaners: out}
}
