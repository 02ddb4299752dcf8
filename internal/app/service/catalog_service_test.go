package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

// fakeProvider is a scriptable domain.MetadataProvider.
type fakeProvider struct {
	discoverFn func(ctx context.Context, q domain.DiscoverQuery) ([]*domain.AnimeRecord, error)
	searchFn   func(ctx context.Context, q domain.SearchQuery) ([]*domain.AnimeRecord, error)
	detailsFn  func(ctx context.Context, id int, ct domain.ContentType) (*domain.AnimeRecord, error)
	overviewFn func(ctx context.Context, id int, ct domain.ContentType, lang string) (string, error)
	personFn   func(ctx context.Context, id int) (*domain.Person, error)

	discoverCalls []domain.DiscoverQuery
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Discover(ctx context.Context, q domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
	f.discoverCalls = append(f.discoverCalls, q)
	if f.discoverFn == nil {
		return nil, nil
	}
	return f.discoverFn(ctx, q)
}

func (f *fakeProvider) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.AnimeRecord, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(ctx, q)
}

func (f *fakeProvider) Details(ctx context.Context, id int, ct domain.ContentType) (*domain.AnimeRecord, error) {
	return f.detailsFn(ctx, id, ct)
}

func (f *fakeProvider) LocalizedOverview(ctx context.Context, id int, ct domain.ContentType, lang string) (string, error) {
	if f.overviewFn == nil {
		return "", nil
	}
	return f.overviewFn(ctx, id, ct, lang)
}

func (f *fakeProvider) Genres(context.Context) ([]domain.Genre, error) {
	return []domain.Genre{{ID: domain.GenreAnimation, Name: "Animation"}}, nil
}

func (f *fakeProvider) Videos(context.Context, int, domain.ContentType) ([]domain.Video, error) {
	return nil, nil
}

func (f *fakeProvider) Images(context.Context, int, domain.ContentType) (*domain.ImageSet, error) {
	return &domain.ImageSet{}, nil
}

func (f *fakeProvider) Recommendations(context.Context, int, domain.ContentType) ([]*domain.AnimeRecord, error) {
	return nil, nil
}

func (f *fakeProvider) Person(ctx context.Context, id int) (*domain.Person, error) {
	return f.personFn(ctx, id)
}

func (f *fakeProvider) HealthCheck(context.Context) error { return nil }

func japaneseSeries(id int, popularity float64) *domain.AnimeRecord {
	return &domain.AnimeRecord{
		ID:               id,
		Title:            "Series",
		OriginalTitle:    "シリーズ",
		OriginCountry:    []string{"JP"},
		OriginalLanguage: "ja",
		Genres:           []domain.Genre{{ID: domain.GenreAnimation, Name: "Animation"}},
		Popularity:       popularity,
		ContentType:      domain.ContentTypeSeries,
	}
}

func westernCartoon(id int) *domain.AnimeRecord {
	return &domain.AnimeRecord{
		ID:               id,
		Title:            "Cartoon",
		OriginalTitle:    "Cartoon",
		OriginCountry:    []string{"US"},
		OriginalLanguage: "en",
		Genres:           []domain.Genre{{ID: domain.GenreAnimation, Name: "Animation"}},
		ContentType:      domain.ContentTypeSeries,
	}
}

func newCatalog(p *fakeProvider) *CatalogService {
	return NewCatalogService(p, nil, "", zap.NewNop())
}

func TestTopRatedMergesAndFilters(t *testing.T) {
	p := &fakeProvider{
		discoverFn: func(_ context.Context, q domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
			if q.ContentType == domain.ContentTypeMovie {
				return []*domain.AnimeRecord{japaneseSeries(10, 5)}, nil
			}
			return []*domain.AnimeRecord{japaneseSeries(1, 9), westernCartoon(2)}, nil
		},
	}

	page, err := newCatalog(p).TopRated(context.Background(), 1, 20)
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	assert.Equal(t, 1, page.Results[0].ID)
	assert.Equal(t, 10, page.Results[1].ID)
	for _, r := range page.Results {
		assert.GreaterOrEqual(t, r.AnimeConfidence, domain.AcceptThreshold)
	}
}

func TestTopRatedDegradesWhenOneHalfFails(t *testing.T) {
	p := &fakeProvider{
		discoverFn: func(_ context.Context, q domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
			if q.ContentType == domain.ContentTypeMovie {
				return nil, &domain.UpstreamError{Status: 503}
			}
			return []*domain.AnimeRecord{japaneseSeries(1, 9)}, nil
		},
	}

	page, err := newCatalog(p).TopRated(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 1, page.Results[0].ID)
}

func TestTopRatedPropagatesWhenBothFail(t *testing.T) {
	boom := errors.New("boom")
	p := &fakeProvider{
		discoverFn: func(context.Context, domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
			return nil, boom
		},
	}

	_, err := newCatalog(p).TopRated(context.Background(), 1, 20)
	assert.ErrorIs(t, err, boom)
}

func TestSearchTruncatesToLimit(t *testing.T) {
	p := &fakeProvider{
		searchFn: func(_ context.Context, q domain.SearchQuery) ([]*domain.AnimeRecord, error) {
			var out []*domain.AnimeRecord
			for i := 0; i < 30; i++ {
				out = append(out, japaneseSeries(i, float64(i)))
			}
			return out, nil
		},
	}

	page, err := newCatalog(p).Search(context.Background(), domain.CatalogQuery{
		Query: "anime",
		Scope: domain.ContentTypeSeries,
		Page:  1,
		Limit: 5,
	})
	require.NoError(t, err)
	assert.Len(t, page.Results, 5)
	assert.Equal(t, 5, page.Count)
	// Highest popularity first.
	assert.Equal(t, 29, page.Results[0].ID)
}

func TestSearchMinRatingFilter(t *testing.T) {
	high := japaneseSeries(1, 1)
	high.VoteAverage = 8.5
	low := japaneseSeries(2, 2)
	low.VoteAverage = 4.0

	p := &fakeProvider{
		searchFn: func(context.Context, domain.SearchQuery) ([]*domain.AnimeRecord, error) {
			return []*domain.AnimeRecord{high, low}, nil
		},
	}

	page, err := newCatalog(p).Search(context.Background(), domain.CatalogQuery{
		Query:     "anime",
		Scope:     domain.ContentTypeSeries,
		MinRating: 7,
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 1, page.Results[0].ID)
}

func TestSeasonalInvalidSeason(t *testing.T) {
	p := &fakeProvider{}

	_, err := newCatalog(p).Seasonal(context.Background(), 2024, "monsoon", 1, 20)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, p.discoverCalls)
}

func TestSeasonalQueriesSeasonWindow(t *testing.T) {
	p := &fakeProvider{}

	_, err := newCatalog(p).Seasonal(context.Background(), 2024, "fall", 1, 20)
	require.NoError(t, err)

	require.Len(t, p.discoverCalls, 1)
	call := p.discoverCalls[0]
	assert.Equal(t, domain.ContentTypeSeries, call.ContentType)
	assert.Equal(t, "2024-10-01", call.DateFrom)
	assert.Equal(t, "2024-12-31", call.DateTo)
	assert.Contains(t, call.GenreIDs, domain.GenreAnimation)
}

func TestCurrentSeasonUsesClock(t *testing.T) {
	p := &fakeProvider{}
	svc := newCatalog(p)
	svc.now = func() time.Time {
		return time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)
	}

	_, err := svc.CurrentSeason(context.Background(), 1, 20)
	require.NoError(t, err)

	require.Len(t, p.discoverCalls, 1)
	assert.Equal(t, "2024-10-01", p.discoverCalls[0].DateFrom)
}

func TestDetailsClassifiesButNeverFilters(t *testing.T) {
	p := &fakeProvider{
		detailsFn: func(_ context.Context, id int, _ domain.ContentType) (*domain.AnimeRecord, error) {
			return westernCartoon(id), nil
		},
	}

	record, err := newCatalog(p).Details(context.Background(), 2, domain.ContentTypeSeries)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Less(t, record.AnimeConfidence, domain.AcceptThreshold)
}

func TestDetailsSecondaryOverviewMerge(t *testing.T) {
	p := &fakeProvider{
		detailsFn: func(_ context.Context, id int, _ domain.ContentType) (*domain.AnimeRecord, error) {
			r := japaneseSeries(id, 1)
			r.Overview = "primary overview"
			return r, nil
		},
		overviewFn: func(_ context.Context, _ int, _ domain.ContentType, lang string) (string, error) {
			assert.Equal(t, "tr-TR", lang)
			return "ikincil özet", nil
		},
	}
	svc := NewCatalogService(p, nil, "tr-TR", zap.NewNop())

	record, err := svc.Details(context.Background(), 1, domain.ContentTypeSeries)
	require.NoError(t, err)
	assert.Equal(t, "ikincil özet", record.Overview)
}

func TestDetailsSecondaryOverviewDegrades(t *testing.T) {
	p := &fakeProvider{
		detailsFn: func(_ context.Context, id int, _ domain.ContentType) (*domain.AnimeRecord, error) {
			r := japaneseSeries(id, 1)
			r.Overview = "primary overview"
			return r, nil
		},
		overviewFn: func(context.Context, int, domain.ContentType, string) (string, error) {
			return "", domain.ErrTimeout
		},
	}
	svc := NewCatalogService(p, nil, "tr-TR", zap.NewNop())

	record, err := svc.Details(context.Background(), 1, domain.ContentTypeSeries)
	require.NoError(t, err)
	assert.Equal(t, "primary overview", record.Overview)
}

func TestDetailsNotFoundPropagates(t *testing.T) {
	p := &fakeProvider{
		detailsFn: func(context.Context, int, domain.ContentType) (*domain.AnimeRecord, error) {
			return nil, domain.ErrNotFound
		},
	}

	_, err := newCatalog(p).Details(context.Background(), 99999, domain.ContentTypeMovie)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonFiltersKnownFor(t *testing.T) {
	p := &fakeProvider{
		personFn: func(_ context.Context, id int) (*domain.Person, error) {
			return &domain.Person{
				ID:   id,
				Name: "Voice Actor",
				KnownForAnime: []*domain.AnimeRecord{
					japaneseSeries(1, 9),
					westernCartoon(2),
				},
			}, nil
		},
	}

	person, err := newCatalog(p).Person(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, person.KnownForAnime, 1)
	assert.Equal(t, 1, person.KnownForAnime[0].ID)
}

func TestRecapsNilProvider(t *testing.T) {
	videos, err := newCatalog(&fakeProvider{}).Recaps(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
