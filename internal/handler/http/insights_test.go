package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockInsightService implements service.InsightService for unit tests.
type mockInsightService struct {
	createFn       func(ctx context.Context, insert models.InsertInsight) (models.Insight, error)
	listFn         func(ctx context.Context, userID int64, limit int) ([]models.Insight, error)
	markReadFn     func(ctx context.Context, id int64) (models.Insight, error)
	markActionedFn func(ctx context.Context, id int64) (models.Insight, error)
}

func (m *mockInsightService) Create(ctx context.Context, insert models.InsertInsight) (models.Insight, error) {
	return m.createFn(ctx, insert)
}

func (m *mockInsightService) List(ctx context.Context, userID int64, limit int) ([]models.Insight, error) {
	return m.listFn(ctx, userID, limit)
}

func (m *mockInsightService) MarkRead(ctx context.Context, id int64) (models.Insight, error) {
	return m.markReadFn(ctx, id)
}

func (m *mockInsightService) MarkActioned(ctx context.Context, id int64) (models.Insight, error) {
	return m.markActionedFn(ctx, id)
}

func TestListInsights_LimitIsForwarded(t *testing.T) {
	insights := &mockInsightService{
		listFn: func(ctx context.Context, userID int64, limit int) ([]models.Insight, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, 3, limit)
			return []models.Insight{}, nil
		},
	}
	router := newTestHandler(t, &service.Services{InsightService: insights})

	rec := doRequest(t, router, http.MethodGet, "/api/insights?userId=1&limit=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListInsights_NoLimitMeansUnlimited(t *testing.T) {
	insights := &mockInsightService{
		listFn: func(ctx context.Context, userID int64, limit int) ([]models.Insight, error) {
			assert.Zero(t, limit)
			return []models.Insight{}, nil
		},
	}
	router := newTestHandler(t, &service.Services{InsightService: insights})

	rec := doRequest(t, router, http.MethodGet, "/api/insights?userId=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListInsights_MalformedLimit(t *testing.T) {
	router := newTestHandler(t, &service.Services{InsightService: &mockInsightService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/insights?userId=1&limit=-5", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, fields := decodeErrorBody(t, rec)
	require.Len(t, fields, 1)
	assert.Equal(t, "limit", fields[0].Field)
}

func TestMarkInsightRead_Success(t *testing.T) {
	insights := &mockInsightService{
		markReadFn: func(ctx context.Context, id int64) (models.Insight, error) {
			assert.Equal(t, int64(4), id)
			return models.Insight{ID: id, IsRead: true}, nil
		},
	}
	router := newTestHandler(t, &service.Services{InsightService: insights})

	rec := doRequest(t, router, http.MethodPatch, "/api/insights/4/read", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Insight
	decodeBody(t, rec, &got)
	assert.True(t, got.IsRead)
}

func TestMarkInsightActioned_NotFound(t *testing.T) {
	insights := &mockInsightService{
		markActionedFn: func(ctx context.Context, id int64) (models.Insight, error) {
			return models.Insight{}, store.ErrInsightNotFound
		},
	}
	router := newTestHandler(t, &service.Services{InsightService: insights})

	rec := doRequest(t, router, http.MethodPatch, "/api/insights/99/action", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
