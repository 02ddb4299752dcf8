// Package service provides application use cases.
package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
)

// CatalogService orchestrates the upstream provider, the classifier, and the
// recap provider into the catalog operations the transport exposes.
type CatalogService struct {
	provider      domain.MetadataProvider
	recaps        domain.RecapProvider
	secondaryLang string
	now           func() time.Time
	logger        *zap.Logger
}

// NewCatalogService creates a new CatalogService. secondaryLang may be empty
// to disable the secondary-language overview merge on detail lookups.
func NewCatalogService(provider domain.MetadataProvider, recaps domain.RecapProvider, secondaryLang string, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		provider:      provider,
		recaps:        recaps,
		secondaryLang: secondaryLang,
		now:           time.Now,
		logger:        logger,
	}
}

// classifyAndFilter stamps every record with its confidence and keeps only
// those the verdict accepts.
func classifyAndFilter(records []*domain.AnimeRecord) []*domain.AnimeRecord {
	kept := records[:0]
	for _, r := range records {
		verdict := domain.Classify(r)
		r.AnimeConfidence = verdict.Confidence
		if verdict.IsAnime() {
			kept = append(kept, r)
		}
	}

	return kept
}

// fanOut runs the series and movie halves of a listing concurrently. One
// failed half degrades with a warning as long as the other succeeded; when
// both fail the series error wins.
func (s *CatalogService) fanOut(
	ctx context.Context,
	op string,
	seriesFn, movieFn func(ctx context.Context) ([]*domain.AnimeRecord, error),
) ([]*domain.AnimeRecord, error) {
	var (
		wg                  sync.WaitGroup
		series, movies      []*domain.AnimeRecord
		seriesErr, movieErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		series, seriesErr = seriesFn(ctx)
	}()
	go func() {
		defer wg.Done()
		movies, movieErr = movieFn(ctx)
	}()
	wg.Wait()

	if seriesErr != nil && movieErr != nil {
		s.logger.Error("both fetches failed",
			zap.String("operation", op),
			zap.NamedError("series_error", seriesErr),
			zap.NamedError("movie_error", movieErr),
		)
		return nil, seriesErr
	}
	if seriesErr != nil {
		s.logger.Warn("series fetch failed, serving movies only",
			zap.String("operation", op), zap.Error(seriesErr))
	}
	if movieErr != nil {
		s.logger.Warn("movie fetch failed, serving series only",
			zap.String("operation", op), zap.Error(movieErr))
	}

	return append(series, movies...), nil
}

// TopRated lists the highest-rated anime across both content types.
func (s *CatalogService) TopRated(ctx context.Context, page, limit int) (*domain.CatalogPage, error) {
	q := domain.CatalogQuery{Page: page, Limit: limit}
	q.Validate()

	discover := func(ct domain.ContentType) func(ctx context.Context) ([]*domain.AnimeRecord, error) {
		return func(ctx context.Context) ([]*domain.AnimeRecord, error) {
			return s.provider.Discover(ctx, domain.DiscoverQuery{
				ContentType: ct,
				GenreIDs:    []int{domain.GenreAnimation},
				SortBy:      "vote_average.desc",
				Page:        q.Page,
			})
		}
	}

	records, err := s.fanOut(ctx, "top_rated",
		discover(domain.ContentTypeSeries), discover(domain.ContentTypeMovie))
	if err != nil {
		return nil, err
	}

	return domain.NewCatalogPage(classifyAndFilter(records), q.Page, q.Limit), nil
}

// Movies lists anime movies only.
func (s *CatalogService) Movies(ctx context.Context, page, limit int) (*domain.CatalogPage, error) {
	q := domain.CatalogQuery{Page: page, Limit: limit}
	q.Validate()

	records, err := s.provider.Discover(ctx, domain.DiscoverQuery{
		ContentType: domain.ContentTypeMovie,
		GenreIDs:    []int{domain.GenreAnimation},
		SortBy:      "popularity.desc",
		Page:        q.Page,
	})
	if err != nil {
		return nil, err
	}

	return domain.NewCatalogPage(classifyAndFilter(records), q.Page, q.Limit), nil
}

// Search runs a free-text search or a filtered discover, in one scope or
// both, then classifies and filters the merged results.
func (s *CatalogService) Search(ctx context.Context, q domain.CatalogQuery) (*domain.CatalogPage, error) {
	q.Validate()

	fetchScope := func(ct domain.ContentType) func(ctx context.Context) ([]*domain.AnimeRecord, error) {
		return func(ctx context.Context) ([]*domain.AnimeRecord, error) {
			if q.Query != "" {
				return s.provider.Search(ctx, domain.SearchQuery{
					Query:       q.Query,
					ContentType: ct,
					Page:        q.Page,
				})
			}

			genres := q.GenreIDs
			if len(genres) == 0 {
				genres = []int{domain.GenreAnimation}
			}

			return s.provider.Discover(ctx, domain.DiscoverQuery{
				ContentType: ct,
				GenreIDs:    genres,
				DateFrom:    q.StartDate,
				DateTo:      q.EndDate,
				SortBy:      "popularity.desc",
				Page:        q.Page,
			})
		}
	}

	var (
		records []*domain.AnimeRecord
		err     error
	)
	if q.Scope == "" {
		records, err = s.fanOut(ctx, "search",
			fetchScope(domain.ContentTypeSeries), fetchScope(domain.ContentTypeMovie))
	} else {
		records, err = fetchScope(q.Scope)(ctx)
	}
	if err != nil {
		return nil, err
	}

	records = classifyAndFilter(records)
	records = applyPostFilters(records, q)

	if q.SortBy == domain.SortFieldRelevance || q.SortBy == "" {
		return domain.NewCatalogPage(records, q.Page, q.Limit), nil
	}

	domain.SortByField(records, q.SortBy, q.SortOrder)
	if len(records) > q.Limit {
		records = records[:q.Limit]
	}

	return &domain.CatalogPage{
		Results: records,
		Page:    q.Page,
		Limit:   q.Limit,
		Count:   len(records),
	}, nil
}

// applyPostFilters narrows results on axes the upstream search endpoint
// cannot filter server-side.
func applyPostFilters(records []*domain.AnimeRecord, q domain.CatalogQuery) []*domain.AnimeRecord {
	if q.MinRating <= 0 && q.Status == "" && len(q.GenreIDs) == 0 {
		return records
	}

	kept := records[:0]
	for _, r := range records {
		if q.MinRating > 0 && r.VoteAverage < q.MinRating {
			continue
		}
		if q.Status != "" && r.Status != "" && r.Status != q.Status {
			continue
		}
		if len(q.GenreIDs) > 0 && !hasAnyGenre(r, q.GenreIDs) {
			continue
		}
		kept = append(kept, r)
	}

	return kept
}

func hasAnyGenre(r *domain.AnimeRecord, ids []int) bool {
	for _, id := range ids {
		if r.HasGenre(id) {
			return true
		}
	}
	return false
}

// Seasonal lists series airing in the given season window.
func (s *CatalogService) Seasonal(ctx context.Context, year int, seasonName string, page, limit int) (*domain.CatalogPage, error) {
	season, err := domain.ParseSeason(seasonName)
	if err != nil {
		return nil, err
	}
	if year < 1950 || year > s.now().Year()+1 {
		return nil, &domain.ValidationError{Msg: "year out of range: " + strconv.Itoa(year)}
	}

	q := domain.CatalogQuery{Page: page, Limit: limit}
	q.Validate()

	window := domain.SeasonDateRange(year, season)
	records, err := s.provider.Discover(ctx, domain.DiscoverQuery{
		ContentType: domain.ContentTypeSeries,
		GenreIDs:    []int{domain.GenreAnimation},
		DateFrom:    window.FromISO(),
		DateTo:      window.ToISO(),
		SortBy:      "popularity.desc",
		Page:        q.Page,
	})
	if err != nil {
		return nil, err
	}

	return domain.NewCatalogPage(classifyAndFilter(records), q.Page, q.Limit), nil
}

// CurrentSeason lists series airing right now.
func (s *CatalogService) CurrentSeason(ctx context.Context, page, limit int) (*domain.CatalogPage, error) {
	year, season := domain.CurrentSeason(s.now())
	return s.Seasonal(ctx, year, string(season), page, limit)
}

// Details retrieves one record by id. The record is always classified so the
// confidence is visible, but never filtered out; a direct lookup answers
// "what is this", not "is this anime". When a secondary language is
// configured its overview replaces the primary one, and any failure on that
// optional lookup degrades to the primary text.
func (s *CatalogService) Details(ctx context.Context, id int, ct domain.ContentType) (*domain.AnimeRecord, error) {
	record, err := s.provider.Details(ctx, id, ct)
	if err != nil {
		return nil, err
	}

	record.AnimeConfidence = domain.Classify(record).Confidence

	if s.secondaryLang != "" {
		overview, langErr := s.provider.LocalizedOverview(ctx, id, ct, s.secondaryLang)
		switch {
		case langErr != nil:
			s.logger.Warn("secondary language lookup failed",
				zap.Int("id", id),
				zap.String("language", s.secondaryLang),
				zap.Error(langErr),
			)
		case overview != "":
			record.Overview = overview
		}
	}

	return record, nil
}

// Videos lists the trailers/teasers attached to a record.
func (s *CatalogService) Videos(ctx context.Context, id int, ct domain.ContentType) ([]domain.Video, error) {
	return s.provider.Videos(ctx, id, ct)
}

// Images lists the posters and backdrops attached to a record.
func (s *CatalogService) Images(ctx context.Context, id int, ct domain.ContentType) (*domain.ImageSet, error) {
	return s.provider.Images(ctx, id, ct)
}

// Recommendations lists related records, classified and filtered so a
// recommendation row never surfaces non-anime titles.
func (s *CatalogService) Recommendations(ctx context.Context, id int, ct domain.ContentType) ([]*domain.AnimeRecord, error) {
	records, err := s.provider.Recommendations(ctx, id, ct)
	if err != nil {
		return nil, err
	}

	records = classifyAndFilter(records)
	domain.SortByRelevance(records)

	return records, nil
}

// Genres lists the provider's genre vocabulary.
func (s *CatalogService) Genres(ctx context.Context) ([]domain.Genre, error) {
	return s.provider.Genres(ctx)
}

// Person retrieves cast/staff details. KnownForAnime keeps only the credits
// the classifier accepts, most relevant first.
func (s *CatalogService) Person(ctx context.Context, id int) (*domain.Person, error) {
	person, err := s.provider.Person(ctx, id)
	if err != nil {
		return nil, err
	}

	person.KnownForAnime = classifyAndFilter(person.KnownForAnime)
	domain.SortByRelevance(person.KnownForAnime)

	return person, nil
}

// Recaps lists the latest recap videos.
func (s *CatalogService) Recaps(ctx context.Context, limit int) ([]domain.RecapVideo, error) {
	if s.recaps == nil {
		return []domain.RecapVideo{}, nil
	}

	return s.recaps.Latest(ctx, limit)
}
