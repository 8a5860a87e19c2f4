package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

type fakeScheduleRepo struct {
	listDateSlotsFn func(ctx context.Context) ([]domain.DateSlot, error)
}

func (f *fakeScheduleRepo) ListDateSlots(ctx context.Context) ([]domain.DateSlot, error) {
	return f.listDateSlotsFn(ctx)
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

func newTestUseCase(repo *fakeScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// Frozen "today" for every test: 2025-07-09. The window then runs from
// 2025-07-10 through 2025-09-09 inclusive, 62 dates.
var testNow = time.Date(2025, 7, 9, 15, 30, 0, 0, time.UTC)

func daysByDate(resp *Response) map[types.DateString][]domain.TimeSlot {
	index := make(map[types.DateString][]domain.TimeSlot, len(resp.Days))
	for _, day := range resp.Days {
		index[day.Date] = day.Slots
	}
	return index
}

func TestExecute_WindowIsCompleteAndOrdered(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return nil, nil
		},
	}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	require.Len(t, resp.Days, 62)
	assert.Equal(t, types.DateString("2025-07-10"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2025-09-09"), resp.Days[len(resp.Days)-1].Date)

	for i := 1; i < len(resp.Days); i++ {
		assert.True(t, resp.Days[i-1].Date.Before(resp.Days[i].Date),
			"dates out of order at index %d", i)
	}
}

func TestExecute_UnbookedDateOffersFullCatalog(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return nil, nil
		},
	}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.Equal(t, domain.TimeSlots(), day.Slots, "date %s", day.Date)
	}
}

func TestExecute_BookedSlotIsSubtracted(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return []domain.DateSlot{
				{Date: "2025-07-10", TimeSlot: domain.SlotMorning},
			}, nil
		},
	}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	byDate := daysByDate(resp)
	assert.Equal(t, []domain.TimeSlot{domain.SlotAfternoon}, byDate["2025-07-10"])
	assert.Equal(t, domain.TimeSlots(), byDate["2025-07-11"])
}

func TestExecute_ExhaustedDateYieldsEmptyNonNilSlots(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return []domain.DateSlot{
				{Date: "2025-08-01", TimeSlot: domain.SlotMorning},
				{Date: "2025-08-01", TimeSlot: domain.SlotAfternoon},
			}, nil
		},
	}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	byDate := daysByDate(resp)
	slots, present := byDate["2025-08-01"]
	require.True(t, present, "exhausted date must still appear in the window")
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestExecute_BookingsOutsideWindowAreIgnored(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return []domain.DateSlot{
				{Date: "2025-07-09", TimeSlot: domain.SlotMorning}, // today: before window
				{Date: "2025-09-10", TimeSlot: domain.SlotMorning}, // day after window end
				{Date: "2024-01-01", TimeSlot: domain.SlotMorning}, // stale leftover
			}, nil
		},
	}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	byDate := daysByDate(resp)
	assert.NotContains(t, byDate, types.DateString("2025-07-09"))
	assert.NotContains(t, byDate, types.DateString("2025-09-10"))
	assert.NotContains(t, byDate, types.DateString("2024-01-01"))
	assert.Len(t, resp.Days, 62)
}

func TestExecute_WindowEndFollowsCalendarMonths(t *testing.T) {
	// Two months ahead of Dec 31 is the nonexistent Feb 31, which AddDate
	// normalizes to Mar 3 in a non-leap year.
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return nil, nil
		},
	}
	uc := newTestUseCase(repo, time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2026-01-01"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2026-03-03"), resp.Days[len(resp.Days)-1].Date)
}

func TestExecute_RepoErrorMapsToInternal(t *testing.T) {
	repo := &fakeScheduleRepo{
		listDateSlotsFn: func(ctx context.Context) ([]domain.DateSlot, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
