package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEventService implements service.EventService for unit tests.
type mockEventService struct {
	createFn func(ctx context.Context, insert models.InsertEvent) (models.Event, error)
	getFn    func(ctx context.Context, id int64) (models.Event, error)
	listFn   func(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error)
	updateFn func(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockEventService) Create(ctx context.Context, insert models.InsertEvent) (models.Event, error) {
	return m.createFn(ctx, insert)
}

func (m *mockEventService) Get(ctx context.Context, id int64) (models.Event, error) {
	return m.getFn(ctx, id)
}

func (m *mockEventService) List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
	return m.listFn(ctx, userID, from, to)
}

func (m *mockEventService) Update(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockEventService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestListEvents_DateRangeIsForwarded(t *testing.T) {
	events := &mockEventService{
		listFn: func(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
			assert.Equal(t, int64(1), userID)
			require.NotNil(t, from)
			require.NotNil(t, to)
			assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), *from)
			assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), *to)
			return nil, nil
		},
	}
	router := newTestHandler(t, &service.Services{EventService: events})

	rec := doRequest(t, router, http.MethodGet,
		"/api/events?userId=1&startDate=2025-03-10&endDate=2025-03-16", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEvents_OpenRange(t *testing.T) {
	events := &mockEventService{
		listFn: func(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
			assert.Nil(t, from)
			assert.Nil(t, to)
			return []models.Event{}, nil
		},
	}
	router := newTestHandler(t, &service.Services{EventService: events})

	rec := doRequest(t, router, http.MethodGet, "/api/events?userId=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEvents_RFC3339Bound(t *testing.T) {
	events := &mockEventService{
		listFn: func(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
			require.NotNil(t, from)
			assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC), from.UTC())
			return nil, nil
		},
	}
	router := newTestHandler(t, &service.Services{EventService: events})

	rec := doRequest(t, router, http.MethodGet,
		"/api/events?userId=1&startDate=2025-03-10T09%3A30%3A00Z", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEvents_MalformedDate(t *testing.T) {
	router := newTestHandler(t, &service.Services{EventService: &mockEventService{}})

	rec := doRequest(t, router, http.MethodGet,
		"/api/events?userId=1&startDate=not-a-date", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, fields := decodeErrorBody(t, rec)
	require.Len(t, fields, 1)
	assert.Equal(t, "startDate", fields[0].Field)
}

func TestCreateEvent_Success(t *testing.T) {
	events := &mockEventService{
		createFn: func(ctx context.Context, insert models.InsertEvent) (models.Event, error) {
			assert.Equal(t, "Gym", insert.Title)
			assert.Equal(t, models.EventHealth, insert.Type)
			return models.Event{ID: 5, UserID: insert.UserID, Title: insert.Title, Type: insert.Type}, nil
		},
	}
	router := newTestHandler(t, &service.Services{EventService: events})

	rec := doRequest(t, router, http.MethodPost, "/api/events",
		`{"userId":1,"title":"Gym","startTime":"2025-03-15T07:00:00Z","endTime":"2025-03-15T08:30:00Z","type":"health"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Event
	decodeBody(t, rec, &got)
	assert.Equal(t, int64(5), got.ID)
}
