package domain

import (
	"context"
	"time"
)

// MetadataProvider defines the interface for the upstream metadata provider.
// Implementations: internal/infra/tmdb/client.go
// Returned records are normalized but not yet classified; classification and
// filtering belong to the orchestrator.
type MetadataProvider interface {
	// Name returns the unique identifier for this provider.
	Name() string

	// Discover retrieves a page of filtered listings for one content type.
	Discover(ctx context.Context, q DiscoverQuery) ([]*AnimeRecord, error)

	// Search retrieves a page of free-text search results for one content type.
	Search(ctx context.Context, q SearchQuery) ([]*AnimeRecord, error)

	// Details retrieves a single record by id and content type. The same
	// numeric id space is reused between movies and series upstream, so the
	// discriminator is mandatory.
	Details(ctx context.Context, id int, ct ContentType) (*AnimeRecord, error)

	// LocalizedOverview re-fetches a record's synopsis in another language.
	LocalizedOverview(ctx context.Context, id int, ct ContentType, lang string) (string, error)

	// Genres lists the genre vocabulary for both content types, de-duplicated.
	Genres(ctx context.Context) ([]Genre, error)

	// Videos lists trailers/teasers attached to a record.
	Videos(ctx context.Context, id int, ct ContentType) ([]Video, error)

	// Images lists posters and backdrops attached to a record.
	Images(ctx context.Context, id int, ct ContentType) (*ImageSet, error)

	// Recommendations lists records the provider relates to the given one.
	Recommendations(ctx context.Context, id int, ct ContentType) ([]*AnimeRecord, error)

	// Person retrieves cast/staff details with their combined credits.
	Person(ctx context.Context, id int) (*Person, error)

	// HealthCheck verifies the provider is accessible.
	HealthCheck(ctx context.Context) error
}

// RecapProvider serves recap content from a video platform. The orchestrator
// must not know whether the backing implementation is a live API or a static
// fixture.
// Implementations: internal/infra/recap/fixture.go, internal/infra/recap/api.go
type RecapProvider interface {
	// Latest returns up to limit recap videos, newest first.
	Latest(ctx context.Context, limit int) ([]RecapVideo, error)
}

// Cache defines the interface for response caching.
// Implementations: internal/infra/cache/memory.go, internal/infra/cache/redis.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found or expired;
	// callers cannot distinguish "never cached" from "expired" and do not
	// need to.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}

// StatusRepository defines persistence for the status-check feature.
// Implementations: internal/infra/postgres/repository.go
type StatusRepository interface {
	// Create persists a new status check.
	Create(ctx context.Context, check *StatusCheck) error

	// List returns status checks, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*StatusCheck, error)
}
