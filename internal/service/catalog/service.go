package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogRepo "github.com/malnis/cleansched/internal/infra/storage/catalog"
	"github.com/malnis/cleansched/internal/service/catalog/models"
)

// Service exposes CRUD over the cleaning-service catalog and cleaner roster.
type Service struct {
	serviceRepo ServiceRepository
	cleanerRepo CleanerRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(serviceRepo ServiceRepository, cleanerRepo CleanerRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cleanerRepo: cleanerRepo,
		logger:      logger,
	}
}

// CreateService adds a catalog entry.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateService: missing name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// ListServices returns the catalog, newest first.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// UpdateService edits a catalog entry.
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) error {
	if err := s.serviceRepo.Update(ctx, id, req.ToDomainUpdate()); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%d", id)
	return nil
}

// DeleteService removes a catalog entry.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

// CreateCleaner adds a cleaner to the roster.
func (s *Service) CreateCleaner(ctx context.Context, req *models.CreateCleanerRequest) (*models.CleanerResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateCleaner: missing name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.cleanerRepo.Create(ctx, req.ToDomainCleaner())
	if err != nil {
		s.logger.Error("CreateCleaner: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCleaner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCleaner: created cleaner id=%d name=%q", created.ID, created.Name)
	return models.FromDomainCleaner(created), nil
}

// ListCleaners returns the roster, newest first.
func (s *Service) ListCleaners(ctx context.Context) (*models.CleanerListResponse, error) {
	cleaners, err := s.cleanerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCleaners: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCleaners - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCleanerList(cleaners), nil
}

// UpdateCleaner edits a roster entry.
func (s *Service) UpdateCleaner(ctx context.Context, id int64, req *models.UpdateCleanerRequest) error {
	if err := s.cleanerRepo.Update(ctx, id, req.ToDomainUpdate()); err != nil {
		if errors.Is(err, catalogRepo.ErrCleanerNotFound) {
			s.logger.Warn("UpdateCleaner: cleaner id=%d not found", id)
			return ErrCleanerNotFound
		}
		s.logger.Error("UpdateCleaner: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateCleaner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCleaner: updated cleaner id=%d", id)
	return nil
}

// DeleteCleaner removes a roster entry.
func (s *Service) DeleteCleaner(ctx context.Context, id int64) error {
	if err := s.cleanerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrCleanerNotFound) {
			s.logger.Warn("DeleteCleaner: cleaner id=%d not found", id)
			return ErrCleanerNotFound
		}
		s.logger.Error("DeleteCleaner: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCleaner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCleaner: deleted cleaner id=%d", id)
	return nil
}
