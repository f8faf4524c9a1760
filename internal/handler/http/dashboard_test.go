package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/aion/internal/derive"
	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDashboardService implements service.DashboardService for unit tests.
type mockDashboardService struct {
	summaryFn func(ctx context.Context, userID int64) (service.DashboardSummary, error)
}

func (m *mockDashboardService) Summary(ctx context.Context, userID int64) (service.DashboardSummary, error) {
	return m.summaryFn(ctx, userID)
}

func TestDashboardSummary_Success(t *testing.T) {
	dashboard := &mockDashboardService{
		summaryFn: func(ctx context.Context, userID int64) (service.DashboardSummary, error) {
			assert.Equal(t, int64(1), userID)
			return service.DashboardSummary{
				OverallBalance: 71,
				Domains:        []models.LifeDomain{{ID: 1, UserID: 1, Name: "Health", Score: 82}},
				WeeklyTrend:    []derive.DayScore{{Day: "Mon", Score: 90}},
			}, nil
		},
	}
	router := newTestHandler(t, &service.Services{DashboardService: dashboard})

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard/summary?userId=1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got service.DashboardSummary
	decodeBody(t, rec, &got)
	assert.Equal(t, 71, got.OverallBalance)
	require.Len(t, got.Domains, 1)
	assert.Equal(t, "Health", got.Domains[0].Name)
}

func TestDashboardSummary_MissingUserID(t *testing.T) {
	router := newTestHandler(t, &service.Services{DashboardService: &mockDashboardService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard/summary", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
