package create_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
	scheduleRepo "github.com/malnis/cleansched/internal/infra/storage/schedule"
	"github.com/malnis/cleansched/pkg/ptr"
)

type fakeScheduleRepo struct {
	createFn func(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error)
	calls    int
}

func (f *fakeScheduleRepo) Create(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error) {
	f.calls++
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, sched)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:          "Juan Dela Cruz",
		Address:       "123 Mabini St, Quezon City",
		ContactNumber: "+63 917 555 0101",
		ServiceType:   "Deep Cleaning",
		Notes:         ptr.Ptr("Gate code 4521"),
		Latitude:      ptr.Ptr(14.6760),
		Longitude:     ptr.Ptr(121.0437),
		Date:          "2025-07-10",
		TimeSlot:      string(domain.SlotMorning),
	}
}

func TestExecute_CreatesSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{
		createFn: func(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error) {
			sched.ID = 42
			sched.CreatedAt = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
			return sched, nil
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Juan Dela Cruz", resp.Name)
	assert.Equal(t, domain.SlotMorning, resp.TimeSlot)
	assert.Equal(t, "2025-07-10", resp.Date.String())
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_MissingFieldsRejectedBeforeStore(t *testing.T) {
	mutations := map[string]func(*Request){
		"name":          func(r *Request) { r.Name = "   " },
		"address":       func(r *Request) { r.Address = "" },
		"contactNumber": func(r *Request) { r.ContactNumber = "" },
		"serviceType":   func(r *Request) { r.ServiceType = "" },
		"latitude":      func(r *Request) { r.Latitude = nil },
		"longitude":     func(r *Request) { r.Longitude = nil },
		"date":          func(r *Request) { r.Date = "" },
		"time":          func(r *Request) { r.TimeSlot = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			uc := NewUseCase(repo, noopLogger{})

			req := validRequest()
			mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.calls, "store must not be touched on validation failure")
		})
	}
}

func TestExecute_MalformedDate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, noopLogger{})

	req := validRequest()
	req.Date = "10-07-2025"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, repo.calls)
}

func TestExecute_TimeOutsideCatalog(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, noopLogger{})

	req := validRequest()
	req.TimeSlot = "09:00 AM - 11:00 AM"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Zero(t, repo.calls)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeScheduleRepo{
		createFn: func(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error) {
			return nil, scheduleRepo.ErrSlotTaken
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StoreFailureMapsToInternal(t *testing.T) {
	repo := &fakeScheduleRepo{
		createFn: func(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error) {
			return nil, errors.New("connection reset")
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
