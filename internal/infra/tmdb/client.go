// Package tmdb implements the upstream metadata provider client.
//
// Every call attaches the API key and response language, consults the
// response cache before touching the network, and translates upstream HTTP
// failures into the domain error taxonomy.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/infra/cache"
)

// ClientConfig holds configuration for the upstream client.
type ClientConfig struct {
	BaseURL  string
	APIKey   string
	Language string // primary response language, e.g. "en-US"
	Timeout  time.Duration
	CacheTTL time.Duration
	Retry    RetryConfig
	CB       CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.MetadataProvider against a TMDB-shaped API.
type Client struct {
	name     string
	client   *resty.Client
	cb       *gobreaker.CircuitBreaker[*resty.Response]
	cache    domain.Cache
	cacheTTL time.Duration
	apiKey   string
	language string
	logger   *zap.Logger
}

// New creates the upstream client. responseCache may be nil to disable
// caching entirely.
func New(cfg ClientConfig, responseCache domain.Cache, logger *zap.Logger) *Client {
	restyClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes. 429s are not
			// retried; the caller decides how to degrade.
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	settings := gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
	}

	return &Client{
		name:     "tmdb",
		client:   restyClient,
		cb:       gobreaker.NewCircuitBreaker[*resty.Response](settings),
		cache:    responseCache,
		cacheTTL: cfg.CacheTTL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		logger:   logger,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return c.name
}

// get performs a cache-first GET against path and decodes the payload into
// out. On a live cache hit the network is never touched; on success the raw
// body is written back to the cache before returning.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	query := map[string]string{
		"api_key":  c.apiKey,
		"language": c.language,
	}
	for k, v := range params {
		query[k] = v
	}

	key := cache.Key(path, query)

	if c.cache != nil {
		if data, err := c.cache.Get(ctx, key); err == nil && data != nil {
			return json.Unmarshal(data, out)
		}
	}

	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		r, reqErr := c.client.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get(path)
		if reqErr != nil {
			return nil, reqErr
		}
		// Only server-side failures count against the breaker; a 404 for a
		// bad id is the caller's problem, not the upstream's health.
		if r.StatusCode() >= 500 {
			return nil, &domain.UpstreamError{Status: r.StatusCode()}
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("upstream fetch failed",
			zap.String("path", path),
			zap.Error(err),
			zap.String("breaker_state", c.cb.State().String()),
		)

		if isTimeout(err) {
			return fmt.Errorf("GET %s: %w", path, domain.ErrTimeout)
		}

		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return fmt.Errorf("GET %s: %w", path, ue)
		}

		return fmt.Errorf("GET %s: %w", path, err)
	}

	switch {
	case resp.StatusCode() == 404:
		return fmt.Errorf("GET %s: %w", path, domain.ErrNotFound)
	case resp.StatusCode() == 429:
		return fmt.Errorf("GET %s: %w", path, domain.ErrRateLimited)
	case resp.IsError():
		return fmt.Errorf("GET %s: %w", path, &domain.UpstreamError{Status: resp.StatusCode()})
	}

	body := resp.Body()
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return nil
}

// isTimeout reports whether err is a client-side timeout or deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Discover retrieves a page of filtered listings for one content type.
func (c *Client) Discover(ctx context.Context, q domain.DiscoverQuery) ([]*domain.AnimeRecord, error) {
	params := map[string]string{
		"page": strconv.Itoa(q.Page),
	}
	if q.SortBy != "" {
		params["sort_by"] = q.SortBy
	}
	if len(q.GenreIDs) > 0 {
		params["with_genres"] = joinInts(q.GenreIDs)
	}

	if q.ContentType == domain.ContentTypeMovie {
		if q.DateFrom != "" {
			params["primary_release_date.gte"] = q.DateFrom
		}
		if q.DateTo != "" {
			params["primary_release_date.lte"] = q.DateTo
		}

		var page moviePage
		if err := c.get(ctx, "/discover/movie", params, &page); err != nil {
			return nil, err
		}

		records := make([]*domain.AnimeRecord, 0, len(page.Results))
		for i := range page.Results {
			records = append(records, page.Results[i].toDomain())
		}
		return records, nil
	}

	if q.DateFrom != "" {
		params["first_air_date.gte"] = q.DateFrom
	}
	if q.DateTo != "" {
		params["first_air_date.lte"] = q.DateTo
	}

	var page tvPage
	if err := c.get(ctx, "/discover/tv", params, &page); err != nil {
		return nil, err
	}

	records := make([]*domain.AnimeRecord, 0, len(page.Results))
	for i := range page.Results {
		records = append(records, page.Results[i].toDomain())
	}
	return records, nil
}

// Search retrieves a page of free-text search results for one content type.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) ([]*domain.AnimeRecord, error) {
	params := map[string]string{
		"query": q.Query,
		"page":  strconv.Itoa(q.Page),
	}

	if q.ContentType == domain.ContentTypeMovie {
		var page moviePage
		if err := c.get(ctx, "/search/movie", params, &page); err != nil {
			return nil, err
		}

		records := make([]*domain.AnimeRecord, 0, len(page.Results))
		for i := range page.Results {
			records = append(records, page.Results[i].toDomain())
		}
		return records, nil
	}

	var page tvPage
	if err := c.get(ctx, "/search/tv", params, &page); err != nil {
		return nil, err
	}

	records := make([]*domain.AnimeRecord, 0, len(page.Results))
	for i := range page.Results {
		records = append(records, page.Results[i].toDomain())
	}
	return records, nil
}

// detailPath returns the endpoint family for the given content type.
func detailPath(ct domain.ContentType) string {
	if ct == domain.ContentTypeMovie {
		return "/movie"
	}
	return "/tv"
}

// Details retrieves a single record by id and content type.
func (c *Client) Details(ctx context.Context, id int, ct domain.ContentType) (*domain.AnimeRecord, error) {
	path := fmt.Sprintf("%s/%d", detailPath(ct), id)

	if ct == domain.ContentTypeMovie {
		var detail movieDetail
		if err := c.get(ctx, path, nil, &detail); err != nil {
			return nil, err
		}
		return detail.toDomain(), nil
	}

	var detail tvDetail
	if err := c.get(ctx, path, nil, &detail); err != nil {
		return nil, err
	}
	return detail.toDomain(), nil
}

// LocalizedOverview re-fetches a record's synopsis in another language.
// Returns an empty string when the upstream has no translation.
func (c *Client) LocalizedOverview(ctx context.Context, id int, ct domain.ContentType, lang string) (string, error) {
	path := fmt.Sprintf("%s/%d", detailPath(ct), id)
	params := map[string]string{"language": lang}

	var payload struct {
		Overview string `json:"overview"`
	}
	if err := c.get(ctx, path, params, &payload); err != nil {
		return "", err
	}

	return payload.Overview, nil
}

// Genres lists the union of the TV and movie genre vocabularies.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var tvGenres, movieGenres genreList

	if err := c.get(ctx, "/genre/tv/list", nil, &tvGenres); err != nil {
		return nil, err
	}
	if err := c.get(ctx, "/genre/movie/list", nil, &movieGenres); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(tvGenres.Genres))
	genres := make([]domain.Genre, 0, len(tvGenres.Genres)+len(movieGenres.Genres))
	for _, g := range append(tvGenres.Genres, movieGenres.Genres...) {
		if !seen[g.ID] {
			seen[g.ID] = true
			genres = append(genres, g)
		}
	}

	return genres, nil
}

// Videos lists trailers/teasers attached to a record.
func (c *Client) Videos(ctx context.Context, id int, ct domain.ContentType) ([]domain.Video, error) {
	var list videoList
	path := fmt.Sprintf("%s/%d/videos", detailPath(ct), id)
	if err := c.get(ctx, path, nil, &list); err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(list.Results))
	for i := range list.Results {
		videos = append(videos, list.Results[i].toDomain())
	}
	return videos, nil
}

// Images lists posters and backdrops attached to a record.
func (c *Client) Images(ctx context.Context, id int, ct domain.ContentType) (*domain.ImageSet, error) {
	var list imageList
	path := fmt.Sprintf("%s/%d/images", detailPath(ct), id)
	// Unlocalized images would otherwise be filtered out by the language param.
	params := map[string]string{"include_image_language": "en,ja,null"}
	if err := c.get(ctx, path, params, &list); err != nil {
		return nil, err
	}

	set := &domain.ImageSet{
		Posters:   make([]domain.Image, 0, len(list.Posters)),
		Backdrops: make([]domain.Image, 0, len(list.Backdrops)),
	}
	for i := range list.Posters {
		set.Posters = append(set.Posters, list.Posters[i].toDomain())
	}
	for i := range list.Backdrops {
		set.Backdrops = append(set.Backdrops, list.Backdrops[i].toDomain())
	}
	return set, nil
}

// Recommendations lists records the provider relates to the given one.
func (c *Client) Recommendations(ctx context.Context, id int, ct domain.ContentType) ([]*domain.AnimeRecord, error) {
	path := fmt.Sprintf("%s/%d/recommendations", detailPath(ct), id)

	if ct == domain.ContentTypeMovie {
		var page moviePage
		if err := c.get(ctx, path, nil, &page); err != nil {
			return nil, err
		}

		records := make([]*domain.AnimeRecord, 0, len(page.Results))
		for i := range page.Results {
			records = append(records, page.Results[i].toDomain())
		}
		return records, nil
	}

	var page tvPage
	if err := c.get(ctx, path, nil, &page); err != nil {
		return nil, err
	}

	records := make([]*domain.AnimeRecord, 0, len(page.Results))
	for i := range page.Results {
		records = append(records, page.Results[i].toDomain())
	}
	return records, nil
}

// Person retrieves cast/staff details with their combined credits converted
// to unified records. Classification of the credits belongs to the caller.
func (c *Client) Person(ctx context.Context, id int) (*domain.Person, error) {
	var detail personDetail
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), nil, &detail); err != nil {
		return nil, err
	}

	var credits combinedCredits
	if err := c.get(ctx, fmt.Sprintf("/person/%d/combined_credits", id), nil, &credits); err != nil {
		return nil, err
	}

	known := make([]*domain.AnimeRecord, 0, len(credits.Cast))
	for i := range credits.Cast {
		if rec := credits.Cast[i].toDomain(); rec != nil {
			known = append(known, rec)
		}
	}

	return &domain.Person{
		ID:                 detail.ID,
		Name:               detail.Name,
		Biography:          detail.Biography,
		ProfilePath:        detail.ProfilePath,
		KnownForDepartment: detail.KnownForDepartment,
		Birthday:           detail.Birthday,
		PlaceOfBirth:       detail.PlaceOfBirth,
		Popularity:         detail.Popularity,
		KnownForAnime:      known,
	}, nil
}

// HealthCheck verifies the provider is accessible.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		Get("/configuration")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
