package httpserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/transport/httpserver/dto"
	"anime-catalog-service/internal/validator"
)

// stubProvider serves a fixed record set for routing tests.
type stubProvider struct {
	detailsErr error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Discover(context.Context, domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
	return []*domain.AnimeRecord{{
		ID:               1,
		Title:            "Frieren",
		OriginalTitle:    "葬送のフリーレン",
		OriginCountry:    []string{"JP"},
		OriginalLanguage: "ja",
		Genres:           []domain.Genre{{ID: domain.GenreAnimation, Name: "Animation"}},
		ContentType:      domain.ContentTypeSeries,
	}}, nil
}

func (s *stubProvider) Search(context.Context, domain.SearchQuery) ([]*domain.AnimeRecord, error) {
	return nil, nil
}

func (s *stubProvider) Details(_ context.Context, id int, ct domain.ContentType) (*domain.AnimeRecord, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return &domain.AnimeRecord{ID: id, Title: "Frieren", ContentType: ct}, nil
}

func (s *stubProvider) LocalizedOverview(context.Context, int, domain.ContentType, string) (string, error) {
	return "", nil
}

func (s *stubProvider) Genres(context.Context) ([]domain.Genre, error) {
	return []domain.Genre{{ID: 16, Name: "Animation"}}, nil
}

func (s *stubProvider) Videos(context.Context, int, domain.ContentType) ([]domain.Video, error) {
	return []domain.Video{}, nil
}

func (s *stubProvider) Images(context.Context, int, domain.ContentType) (*domain.ImageSet, error) {
	return &domain.ImageSet{}, nil
}

func (s *stubProvider) Recommendations(context.Context, int, domain.ContentType) ([]*domain.AnimeRecord, error) {
	return nil, nil
}

func (s *stubProvider) Person(_ context.Context, id int) (*domain.Person, error) {
	return &domain.Person{ID: id, Name: "Voice Actor"}, nil
}

func (s *stubProvider) HealthCheck(context.Context) error { return nil }

func newTestServer(t *testing.T, provider domain.MetadataProvider) *Server {
	t.Helper()

	logger := zap.NewNop()
	catalogSvc := service.NewCatalogService(provider, nil, "", logger)

	return NewServer(ServerConfig{Port: 0, BodyLimit: 1 << 20}, catalogSvc, nil, nil, validator.New(), logger)
}

func TestRouteTopRated(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/anime/top", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var payload dto.CatalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "Frieren", payload.Results[0].Title)
	assert.Greater(t, payload.Results[0].AnimeConfidence, 0.0)
}

func TestRouteSeasonalInvalidSeason(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/anime/seasonal/2024/monsoon", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var payload dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "VALIDATION_ERROR", payload.Code)
}

func TestRouteDetailsNotFound(t *testing.T) {
	srv := newTestServer(t, &stubProvider{detailsErr: domain.ErrNotFound})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/anime/99999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRouteDetailsUpstreamError(t *testing.T) {
	srv := newTestServer(t, &stubProvider{detailsErr: &domain.UpstreamError{Status: 503}})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/anime/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	var payload dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "UPSTREAM_ERROR", payload.Code)
}

func TestRouteDetailsRateLimited(t *testing.T) {
	srv := newTestServer(t, &stubProvider{detailsErr: domain.ErrRateLimited})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/anime/1", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestRouteStatusNotRegisteredWithoutDB(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/api/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRouteHealthProbes(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	live, err := srv.App.Test(httptest.NewRequest("GET", "/livez", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, live.StatusCode)

	// No database configured, readiness reflects the app alone.
	ready, err := srv.App.Test(httptest.NewRequest("GET", "/readyz", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, ready.StatusCode)
}
