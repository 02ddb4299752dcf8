// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"fmt"
	"time"
)

// ContentType discriminates the two upstream endpoint families.
// It decides which date field of an AnimeRecord is authoritative.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// ParseContentType normalizes a content-type string. Empty input defaults to
// series because the same numeric id space is reused between movies and
// series upstream, and series is by far the more common lookup.
func ParseContentType(s string) (ContentType, error) {
	switch s {
	case "", "tv", "series":
		return ContentTypeSeries, nil
	case "movie":
		return ContentTypeMovie, nil
	default:
		return "", &ValidationError{Msg: fmt.Sprintf("invalid content_type %q, must be movie or series", s)}
	}
}

// OverviewPlaceholder is surfaced when the upstream omits synopsis text.
// User-facing text fields get an explicit placeholder; numeric fields stay absent.
const OverviewPlaceholder = "Overview not available."

// Genre is an upstream genre tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AnimeRecord is the unified catalog entity produced by normalization.
// IDs are upstream-assigned and unique only within one provider+content-type
// pair, never globally.
type AnimeRecord struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	OriginalTitle string      `json:"original_title"`
	Overview      string      `json:"overview"`
	PosterPath    string      `json:"poster_path,omitempty"`
	BackdropPath  string      `json:"backdrop_path,omitempty"`

	VoteAverage float64 `json:"vote_average,omitempty"`
	VoteCount   int     `json:"vote_count,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`

	// Movies populate ReleaseDate, series FirstAirDate.
	ReleaseDate  string `json:"release_date,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`

	EpisodeCount  int      `json:"episode_count,omitempty"`
	Status        string   `json:"status,omitempty"`
	Genres        []Genre  `json:"genres,omitempty"`
	OriginCountry []string `json:"origin_country,omitempty"`

	// OriginalLanguage and Studios are classification inputs; studios are
	// only available on detail lookups.
	OriginalLanguage string   `json:"original_language,omitempty"`
	Studios          []string `json:"studios,omitempty"`

	ContentType ContentType `json:"content_type"`

	// AnimeConfidence is always set by the classifier before a record
	// leaves the pipeline.
	AnimeConfidence float64 `json:"anime_confidence"`
}

// AirDate returns the authoritative date for the record's content type.
func (a *AnimeRecord) AirDate() string {
	if a.ContentType == ContentTypeMovie {
		return a.ReleaseDate
	}
	return a.FirstAirDate
}

// HasGenre reports whether the record carries the given upstream genre id.
func (a *AnimeRecord) HasGenre(id int) bool {
	for _, g := range a.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// Video is a trailer/teaser/clip attached to a record.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// Image is an opaque relative path plus its dimensions. The path needs a
// provider-specific base URL to become renderable.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// ImageSet groups the images attached to a record.
type ImageSet struct {
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
}

// Person is a cast/staff entity with the anime subset of their credits.
type Person struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	Biography          string         `json:"biography,omitempty"`
	ProfilePath        string         `json:"profile_path,omitempty"`
	KnownForDepartment string         `json:"known_for_department,omitempty"`
	Birthday           string         `json:"birthday,omitempty"`
	PlaceOfBirth       string         `json:"place_of_birth,omitempty"`
	Popularity         float64        `json:"popularity,omitempty"`
	KnownForAnime      []*AnimeRecord `json:"known_for_anime"`
}

// RecapVideo is an item from the recap (video platform) provider.
type RecapVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	URL          string `json:"url"`
}

// StatusCheck is the trivial persisted record for the status endpoint pair.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
