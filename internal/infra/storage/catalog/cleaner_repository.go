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

// CleanerRepository stores the cleaner roster.
type CleanerRepository struct {
	db DBExecutor
}

// NewCleanerRepository creates a cleaner roster repository.
func NewCleanerRepository(db DBExecutor) *CleanerRepository {
	return &CleanerRepository{db: db}
}

// Create inserts a new cleaner.
func (r *CleanerRepository) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cleaners").
		Columns("name", "bio", "img").
		Values(cleaner.Name, cleaner.Bio, cleaner.Img).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cleaner.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cleaner.CreatedAt = createdAt.Time
	cleaner.UpdatedAt = updatedAt.Time

	return cleaner, nil
}

// List returns the roster, newest first.
func (r *CleanerRepository) List(ctx context.Context) ([]*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "bio", "img", "created_at", "updated_at",
	).
		From("cleaners").
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

	cleaners := make([]*domain.Cleaner, 0)
	for rows.Next() {
		var cleaner domain.Cleaner
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cleaner.ID,
			&cleaner.Name,
			&cleaner.Bio,
			&cleaner.Img,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		cleaner.CreatedAt = createdAt.Time
		cleaner.UpdatedAt = updatedAt.Time
		cleaners = append(cleaners, &cleaner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cleaners, nil
}

// Update applies the non-nil fields of upd to the cleaner with the given id.
func (r *CleanerRepository) Update(ctx context.Context, id int64, upd *domain.CleanerUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("cleaners").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Bio != nil {
		updateBuilder = updateBuilder.Set("bio", *upd.Bio)
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
		return ErrCleanerNotFound
	}

	return nil
}

// Delete removes a cleaner by id.
func (r *CleanerRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cleaners").
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
		return ErrCleanerNotFound
	}

	return nil
}
