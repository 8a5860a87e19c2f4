package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/dbmetrics"
	"github.com/malnis/cleansched/pkg/psqlbuilder"
)

// ServiceRepository stores the cleaning-service catalog.
type ServiceRepository struct {
	db DBExecutor
}

// NewServiceRepository creates a service catalog repository.
func NewServiceRepository(db DBExecutor) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create inserts a new catalog service.
func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "description", "price", "duration", "img").
		Values(svc.Name, svc.Description, svc.Price, svc.Duration, svc.Img).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// List returns the catalog, newest first.
func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "description", "price", "duration", "img", "created_at", "updated_at",
	).
		From("services").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.Price,
			&svc.Duration,
			&svc.Img,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update applies the non-nil fields of upd to the service with the given id.
func (r *ServiceRepository) Update(ctx context.Context, id int64, upd *domain.ServiceUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.Price != nil {
		updateBuilder = updateBuilder.Set("price", *upd.Price)
	}
	if upd.Duration != nil {
		updateBuilder = updateBuilder.Set("duration", *upd.Duration)
	}
	if upd.Img != nil {
		updateBuilder = updateBuilder.Set("img", *upd.Img)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete removes a catalog service by id.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
