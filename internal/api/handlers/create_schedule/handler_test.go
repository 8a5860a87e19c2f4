package create_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malnis/cleansched/internal/domain"
	createSchedule "github.com/malnis/cleansched/internal/usecase/create_schedule"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
	return f.executeFn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"name": "Juan Dela Cruz",
	"address": "123 Mabini St, Quezon City",
	"contactNumber": "+63 917 555 0101",
	"date": "2025-07-10",
	"time": "07:00 AM - 12:00 NN",
	"serviceType": "Deep Cleaning",
	"latitude": 14.676,
	"longitude": 121.0437
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
			return &createSchedule.Response{
				ID:            7,
				Name:          req.Name,
				Address:       req.Address,
				ContactNumber: req.ContactNumber,
				ServiceType:   req.ServiceType,
				Latitude:      *req.Latitude,
				Longitude:     *req.Longitude,
				Date:          "2025-07-10",
				TimeSlot:      domain.SlotMorning,
				CreatedAt:     time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-07-10", resp.Date)
	assert.Equal(t, "07:00 AM - 12:00 NN", resp.Time)
}

func TestHandle_SlotTakenIsConflict(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
			return nil, createSchedule.ErrSlotTaken
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already booked")
}

func TestHandle_ValidationErrorsAreBadRequest(t *testing.T) {
	cases := map[string]error{
		"invalid input": createSchedule.ErrInvalidInput,
		"invalid date":  createSchedule.ErrInvalidDate,
		"invalid slot":  createSchedule.ErrInvalidTimeSlot,
	}

	for name, ucErr := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
					return nil, ucErr
				},
			}
			h := NewHandler(uc, noopLogger{})

			rec := doRequest(h, validBody)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_MalformedJSON(t *testing.T) {
	called := false
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
			called = true
			return nil, nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "use case must not run on a malformed body")
}

func TestHandle_NonNumericCoordinateFailsDecoding(t *testing.T) {
	h := NewHandler(&fakeUseCase{
		executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
			t.Fatal("use case must not run")
			return nil, nil
		},
	}, noopLogger{})

	body := strings.Replace(validBody, "14.676", `"14.676"`, 1)
	rec := doRequest(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
			return nil, errors.New("boom")
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
