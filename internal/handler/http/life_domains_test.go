package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLifeDomainService implements service.LifeDomainService for unit tests.
type mockLifeDomainService struct {
	createFn func(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error)
	getFn    func(ctx context.Context, id int64) (models.LifeDomain, error)
	listFn   func(ctx context.Context, userID int64) ([]models.LifeDomain, error)
	updateFn func(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockLifeDomainService) Create(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error) {
	return m.createFn(ctx, insert)
}

func (m *mockLifeDomainService) Get(ctx context.Context, id int64) (models.LifeDomain, error) {
	return m.getFn(ctx, id)
}

func (m *mockLifeDomainService) List(ctx context.Context, userID int64) ([]models.LifeDomain, error) {
	return m.listFn(ctx, userID)
}

func (m *mockLifeDomainService) Update(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockLifeDomainService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestListLifeDomains_Success(t *testing.T) {
	domains := &mockLifeDomainService{
		listFn: func(ctx context.Context, userID int64) ([]models.LifeDomain, error) {
			assert.Equal(t, int64(1), userID)
			return []models.LifeDomain{{ID: 1, UserID: 1, Name: "Health", Score: 80}}, nil
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodGet, "/api/life-domains?userId=1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.LifeDomain
	decodeBody(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Health", got[0].Name)
}

func TestListLifeDomains_MissingUserID(t *testing.T) {
	router := newTestHandler(t, &service.Services{LifeDomainService: &mockLifeDomainService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/life-domains", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	message, fields := decodeErrorBody(t, rec)
	assert.Equal(t, "validation failed", message)
	require.Len(t, fields, 1)
	assert.Equal(t, "userId", fields[0].Field)
}

func TestCreateLifeDomain_ValidationErrorBody(t *testing.T) {
	domains := &mockLifeDomainService{
		createFn: func(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error) {
			return models.LifeDomain{}, validators.FieldErrors{
				{Field: "name", Message: "is required"},
				{Field: "score", Message: "must be between 0 and 100"},
			}
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodPost, "/api/life-domains",
		`{"userId":1,"score":120}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	message, fields := decodeErrorBody(t, rec)
	assert.Equal(t, "validation failed", message)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "score", fields[1].Field)
}

func TestCreateLifeDomain_Success(t *testing.T) {
	domains := &mockLifeDomainService{
		createFn: func(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error) {
			created := models.LifeDomain{ID: 7, UserID: insert.UserID, Name: insert.Name, Score: insert.Score}
			return created, nil
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodPost, "/api/life-domains",
		`{"userId":1,"name":"Work","score":70,"icon":"briefcase","color":"#F59E0B"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.LifeDomain
	decodeBody(t, rec, &got)
	assert.Equal(t, int64(7), got.ID)
}

func TestGetLifeDomain_NotFound(t *testing.T) {
	domains := &mockLifeDomainService{
		getFn: func(ctx context.Context, id int64) (models.LifeDomain, error) {
			return models.LifeDomain{}, store.ErrLifeDomainNotFound
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodGet, "/api/life-domains/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLifeDomain_MalformedID(t *testing.T) {
	router := newTestHandler(t, &service.Services{LifeDomainService: &mockLifeDomainService{}})

	rec := doRequest(t, router, http.MethodGet, "/api/life-domains/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLifeDomain_Success(t *testing.T) {
	domains := &mockLifeDomainService{
		updateFn: func(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error) {
			require.NotNil(t, patch.Score)
			assert.Equal(t, 90, *patch.Score)
			return models.LifeDomain{ID: id, UserID: 1, Name: "Health", Score: *patch.Score}, nil
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodPut, "/api/life-domains/3", `{"score":90}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.LifeDomain
	decodeBody(t, rec, &got)
	assert.Equal(t, 90, got.Score)
}

func TestDeleteLifeDomain_Success(t *testing.T) {
	domains := &mockLifeDomainService{
		deleteFn: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(3), id)
			return nil
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodDelete, "/api/life-domains/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteLifeDomain_NotFound(t *testing.T) {
	domains := &mockLifeDomainService{
		deleteFn: func(ctx context.Context, id int64) error {
			return store.ErrLifeDomainNotFound
		},
	}
	router := newTestHandler(t, &service.Services{LifeDomainService: domains})

	rec := doRequest(t, router, http.MethodDelete, "/api/life-domains/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
