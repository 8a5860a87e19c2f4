package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/ptr"
)

func newTestCleanerRepo(t *testing.T) (*CleanerRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCleanerRepository(db), mock
}

func TestCleanerRepository_Create(t *testing.T) {
	repo, mock := newTestCleanerRepo(t)
	cleaner := &domain.Cleaner{
		Name: gofakeit.Name(),
		Bio:  ptr.Ptr(gofakeit.Sentence(6)),
		Img:  ptr.Ptr(gofakeit.URL()),
	}

	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	// The column list is pinned: it must stay in sync with the cleaners table.
	mock.ExpectQuery(`INSERT INTO cleaners \(name,bio,img\)`).
		WithArgs(cleaner.Name, *cleaner.Bio, *cleaner.Img).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	created, err := repo.Create(context.Background(), cleaner)
	require.NoError(t, err)

	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanerRepository_List(t *testing.T) {
	repo, mock := newTestCleanerRepo(t)

	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "bio", "img", "created_at", "updated_at"}).
		AddRow(int64(2), "Maria Santos", "Senior cleaner", "https://img.test/maria.png", now, now).
		AddRow(int64(1), "Pedro Reyes", nil, nil, now, now)

	mock.ExpectQuery(`SELECT id, name, bio, img, created_at, updated_at FROM cleaners ORDER BY created_at DESC`).
		WillReturnRows(rows)

	cleaners, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, cleaners, 2)
	assert.Equal(t, "Maria Santos", cleaners[0].Name)
	assert.Nil(t, cleaners[1].Bio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanerRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestCleanerRepo(t)

	mock.ExpectExec(`UPDATE cleaners SET updated_at = NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, &domain.CleanerUpdate{Name: ptr.Ptr("Renamed")})
	assert.ErrorIs(t, err, ErrCleanerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanerRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestCleanerRepo(t)

	mock.ExpectExec(`DELETE FROM cleaners WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCleanerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
