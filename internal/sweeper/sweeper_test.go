package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/pkg/types"
)

// memoryScheduleRepo holds schedule dates in memory and deletes like the
// real store: everything strictly before the cutoff.
type memoryScheduleRepo struct {
	dates []types.DateString
	err   error
}

func (m *memoryScheduleRepo) DeleteBefore(ctx context.Context, cutoff types.DateString) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}

	kept := m.dates[:0]
	var deleted int64
	for _, d := range m.dates {
		if d.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	m.dates = kept
	return deleted, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type recordingMetrics struct {
	deleted []int64
	errs    []error
}

func (r *recordingMetrics) ObserveSweep(deleted int64, err error) {
	r.deleted = append(r.deleted, deleted)
	r.errs = append(r.errs, err)
}

func newTestSweeper(repo ScheduleRepository, m Metrics, now time.Time) *Sweeper {
	s := New(repo, m, noopLogger{})
	s.timeProvider = &fixedTimeProvider{now: now}
	return s
}

func TestRunOnce_PurgesOnlyPastDates(t *testing.T) {
	repo := &memoryScheduleRepo{
		dates: []types.DateString{
			"2025-07-01", // past
			"2025-07-08", // past
			"2025-07-09", // today: kept
			"2025-07-15", // future: kept
		},
	}
	s := newTestSweeper(repo, nil, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	deleted, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, []types.DateString{"2025-07-09", "2025-07-15"}, repo.dates)
}

func TestRunOnce_Idempotent(t *testing.T) {
	repo := &memoryScheduleRepo{
		dates: []types.DateString{"2025-07-01", "2025-07-20"},
	}
	s := newTestSweeper(repo, nil, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	deleted, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Second run with the same clock: nothing left to purge.
	deleted, err = s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, []types.DateString{"2025-07-20"}, repo.dates)
}

func TestRunOnce_NothingToPurge(t *testing.T) {
	repo := &memoryScheduleRepo{
		dates: []types.DateString{"2025-07-09", "2025-08-01"},
	}
	s := newTestSweeper(repo, nil, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	deleted, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestRunOnce_ReportsToMetrics(t *testing.T) {
	repo := &memoryScheduleRepo{
		dates: []types.DateString{"2025-07-01"},
	}
	m := &recordingMetrics{}
	s := newTestSweeper(repo, m, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	_, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, m.deleted, 1)
	assert.Equal(t, int64(1), m.deleted[0])
	assert.NoError(t, m.errs[0])
}

func TestRunOnce_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &memoryScheduleRepo{err: storeErr}
	m := &recordingMetrics{}
	s := newTestSweeper(repo, m, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	_, err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, storeErr)

	require.Len(t, m.errs, 1)
	assert.ErrorIs(t, m.errs[0], storeErr)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	repo := &memoryScheduleRepo{}
	s := newTestSweeper(repo, nil, time.Date(2025, 7, 9, 3, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx, time.Hour)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
