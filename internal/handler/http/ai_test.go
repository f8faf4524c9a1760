package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/aion/internal/adapter"
	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSuggestionService implements service.SuggestionService for unit tests.
type mockSuggestionService struct {
	generateFn            func(ctx context.Context, request models.SuggestionRequest) (models.Insight, error)
	analyzeLifeBalanceFn  func(ctx context.Context, userID int64) (service.BalanceAnalysis, error)
	analyzeMoodPatternsFn func(ctx context.Context, userID int64) (string, error)
	suggestScheduleFn     func(ctx context.Context, userID int64) (string, error)
}

func (m *mockSuggestionService) Generate(ctx context.Context, request models.SuggestionRequest) (models.Insight, error) {
	return m.generateFn(ctx, request)
}

func (m *mockSuggestionService) AnalyzeLifeBalance(ctx context.Context, userID int64) (service.BalanceAnalysis, error) {
	return m.analyzeLifeBalanceFn(ctx, userID)
}

func (m *mockSuggestionService) AnalyzeMoodPatterns(ctx context.Context, userID int64) (string, error) {
	return m.analyzeMoodPatternsFn(ctx, userID)
}

func (m *mockSuggestionService) SuggestScheduleOptimization(ctx context.Context, userID int64) (string, error) {
	return m.suggestScheduleFn(ctx, userID)
}

func TestGenerateSuggestion_Success(t *testing.T) {
	suggestions := &mockSuggestionService{
		generateFn: func(ctx context.Context, request models.SuggestionRequest) (models.Insight, error) {
			assert.Equal(t, int64(1), request.UserID)
			assert.JSONEq(t, `{"domains":[]}`, string(request.Data))
			return models.Insight{ID: 1, UserID: 1, Content: "Take a walk.", Type: models.InsightSuggestion, Category: "ai"}, nil
		},
	}
	router := newTestHandler(t, &service.Services{SuggestionService: suggestions})

	rec := doRequest(t, router, http.MethodPost, "/api/ai/suggestions",
		`{"userId":1,"data":{"domains":[]}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Insight
	decodeBody(t, rec, &got)
	assert.Equal(t, "Take a walk.", got.Content)
	assert.Equal(t, models.InsightSuggestion, got.Type)
}

func TestGenerateSuggestion_UpstreamTimeout(t *testing.T) {
	suggestions := &mockSuggestionService{
		generateFn: func(ctx context.Context, request models.SuggestionRequest) (models.Insight, error) {
			return models.Insight{}, adapter.ErrCompletionTimeout
		},
	}
	router := newTestHandler(t, &service.Services{SuggestionService: suggestions})

	rec := doRequest(t, router, http.MethodPost, "/api/ai/suggestions",
		`{"userId":1,"data":{}}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestGenerateSuggestion_UpstreamFailure(t *testing.T) {
	suggestions := &mockSuggestionService{
		generateFn: func(ctx context.Context, request models.SuggestionRequest) (models.Insight, error) {
			return models.Insight{}, adapter.ErrCompletionFailed
		},
	}
	router := newTestHandler(t, &service.Services{SuggestionService: suggestions})

	rec := doRequest(t, router, http.MethodPost, "/api/ai/suggestions",
		`{"userId":1,"data":{}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAnalyzeLifeBalance_Success(t *testing.T) {
	suggestions := &mockSuggestionService{
		analyzeLifeBalanceFn: func(ctx context.Context, userID int64) (service.BalanceAnalysis, error) {
			assert.Equal(t, int64(1), userID)
			return service.BalanceAnalysis{OverallScore: 72, Insights: "All domains are performing well."}, nil
		},
	}
	router := newTestHandler(t, &service.Services{SuggestionService: suggestions})

	rec := doRequest(t, router, http.MethodGet, "/api/ai/life-balance?userId=1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got service.BalanceAnalysis
	decodeBody(t, rec, &got)
	assert.Equal(t, 72, got.OverallScore)
}

func TestAnalyzeMoodPatterns_Success(t *testing.T) {
	suggestions := &mockSuggestionService{
		analyzeMoodPatternsFn: func(ctx context.Context, userID int64) (string, error) {
			return "You most frequently record feeling happy.", nil
		},
	}
	router := newTestHandler(t, &service.Services{SuggestionService: suggestions})

	rec := doRequest(t, router, http.MethodGet, "/api/ai/mood-patterns?userId=1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got analysisResponse
	decodeBody(t, rec, &got)
	assert.Contains(t, got.Insights, "happy")
}

func TestSuggestScheduleOptimization_MissingUserID(t *testing.T) {
	router := newTestHandler(t, &service.Services{SuggestionService: &mockSuggestionService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/ai/schedule", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
