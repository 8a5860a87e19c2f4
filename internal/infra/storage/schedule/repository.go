package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/dbmetrics"
	"github.com/malnis/cleansched/pkg/psqlbuilder"
	"github.com/malnis/cleansched/pkg/types"
)

// uniqueViolation is the PostgreSQL error code raised by the
// schedules_date_time_slot_key constraint.
const uniqueViolation = pq.ErrorCode("23505")

// Repository stores cleaning schedules.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new schedule.
//
// The (date, time_slot) uniqueness is enforced by the database constraint:
// the insert itself is the conflict check, so two concurrent submissions for
// the same slot cannot both succeed. A unique violation maps to ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"name",
			"address",
			"contact_number",
			"service_type",
			"notes",
			"latitude",
			"longitude",
			"date",
			"time_slot",
		).
		Values(
			sched.Name,
			sched.Address,
			sched.ContactNumber,
			sched.ServiceType,
			sched.Notes,
			sched.Latitude,
			sched.Longitude,
			sched.Date,
			sched.TimeSlot,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sched.CreatedAt = createdAt.Time

	return sched, nil
}

// GetByID fetches a schedule by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSchedules().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sched domain.Schedule
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&sched.Name,
		&sched.Address,
		&sched.ContactNumber,
		&sched.ServiceType,
		&sched.Notes,
		&sched.Latitude,
		&sched.Longitude,
		&sched.Date,
		&sched.TimeSlot,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	sched.CreatedAt = createdAt.Time

	return &sched, nil
}

// List returns all schedules ordered by date, oldest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSchedules().
		OrderBy("date ASC", "created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// ListDateSlots returns the (date, time_slot) projection of every schedule.
// This is the only read the availability computation needs, so the full
// rows are never materialized.
func (r *Repository) ListDateSlots(ctx context.Context) ([]domain.DateSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "time_slot").
		From("schedules").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDateSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dateSlots := make([]domain.DateSlot, 0)
	for rows.Next() {
		var ds domain.DateSlot
		if err := rows.Scan(&ds.Date, &ds.TimeSlot); err != nil {
			return nil, fmt.Errorf("%w: ListDateSlots - scan row: %v", ErrScanRow, err)
		}
		dateSlots = append(dateSlots, ds)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateSlots - rows error: %v", ErrScanRow, err)
	}

	return dateSlots, nil
}

// Update applies the non-nil fields of upd to the schedule with the given id.
// Moving a schedule onto an occupied (date, time_slot) pair fails with
// ErrSlotTaken, same as Create.
func (r *Repository) Update(ctx context.Context, id int64, upd *domain.ScheduleUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("schedules").
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Address != nil {
		updateBuilder = updateBuilder.Set("address", *upd.Address)
	}
	if upd.ContactNumber != nil {
		updateBuilder = updateBuilder.Set("contact_number", *upd.ContactNumber)
	}
	if upd.ServiceType != nil {
		updateBuilder = updateBuilder.Set("service_type", *upd.ServiceType)
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}
	if upd.Latitude != nil {
		updateBuilder = updateBuilder.Set("latitude", *upd.Latitude)
	}
	if upd.Longitude != nil {
		updateBuilder = updateBuilder.Set("longitude", *upd.Longitude)
	}
	if upd.Date != nil {
		updateBuilder = updateBuilder.Set("date", *upd.Date)
	}
	if upd.TimeSlot != nil {
		updateBuilder = updateBuilder.Set("time_slot", *upd.TimeSlot)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete removes a schedule by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
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
		return ErrScheduleNotFound
	}

	return nil
}

// DeleteBefore removes every schedule dated strictly before cutoff and
// returns the number of deleted rows. Idempotent: a second run with the
// same cutoff deletes nothing.
func (r *Repository) DeleteBefore(ctx context.Context, cutoff types.DateString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Lt{"date": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// selectSchedules builds the shared SELECT with the full column list.
func selectSchedules() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"address",
		"contact_number",
		"service_type",
		"notes",
		"latitude",
		"longitude",
		"date",
		"time_slot",
		"created_at",
	).From("schedules")
}

// scanSchedules scans query results into a slice of schedules.
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		var sched domain.Schedule
		var createdAt sql.NullTime

		err := rows.Scan(
			&sched.ID,
			&sched.Name,
			&sched.Address,
			&sched.ContactNumber,
			&sched.ServiceType,
			&sched.Notes,
			&sched.Latitude,
			&sched.Longitude,
			&sched.Date,
			&sched.TimeSlot,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		sched.CreatedAt = createdAt.Time

		schedules = append(schedules, &sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
