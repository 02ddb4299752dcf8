package dto

import (
	"time"

	"anime-catalog-service/internal/domain"
)

// AnimeResponse represents a single catalog record.
type AnimeResponse struct {
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	OriginalTitle    string         `json:"original_title,omitempty"`
	Overview         string         `json:"overview"`
	PosterPath       string         `json:"poster_path,omitempty"`
	BackdropPath     string         `json:"backdrop_path,omitempty"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int            `json:"vote_count"`
	Popularity       float64        `json:"popularity"`
	AirDate          string         `json:"air_date,omitempty"`
	EpisodeCount     int            `json:"episode_count,omitempty"`
	Status           string         `json:"status,omitempty"`
	Genres           []domain.Genre `json:"genres,omitempty"`
	OriginCountry    []string       `json:"origin_country,omitempty"`
	OriginalLanguage string         `json:"original_language,omitempty"`
	Studios          []string       `json:"studios,omitempty"`
	ContentType      string         `json:"content_type"`
	AnimeConfidence  float64        `json:"anime_confidence"`
}

// FromAnimeRecord converts a domain record.
func FromAnimeRecord(r *domain.AnimeRecord) AnimeResponse {
	return AnimeResponse{
		ID:               r.ID,
		Title:            r.Title,
		OriginalTitle:    r.OriginalTitle,
		Overview:         r.Overview,
		PosterPath:       r.PosterPath,
		BackdropPath:     r.BackdropPath,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		AirDate:          r.AirDate(),
		EpisodeCount:     r.EpisodeCount,
		Status:           r.Status,
		Genres:           r.Genres,
		OriginCountry:    r.OriginCountry,
		OriginalLanguage: r.OriginalLanguage,
		Studios:          r.Studios,
		ContentType:      string(r.ContentType),
		AnimeConfidence:  r.AnimeConfidence,
	}
}

// CatalogResponse is one page of catalog results.
type CatalogResponse struct {
	Results []AnimeResponse `json:"results"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Count   int             `json:"count"`
}

// FromCatalogPage converts a domain page.
func FromCatalogPage(page *domain.CatalogPage) CatalogResponse {
	results := make([]AnimeResponse, len(page.Results))
	for i, r := range page.Results {
		results[i] = FromAnimeRecord(r)
	}

	return CatalogResponse{
		Results: results,
		Page:    page.Page,
		Limit:   page.Limit,
		Count:   page.Count,
	}
}

// FromAnimeRecords converts an unpaged record list.
func FromAnimeRecords(records []*domain.AnimeRecord) []AnimeResponse {
	out := make([]AnimeResponse, len(records))
	for i, r := range records {
		out[i] = FromAnimeRecord(r)
	}
	return out
}

// PersonResponse represents cast/staff details.
type PersonResponse struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Biography          string          `json:"biography,omitempty"`
	ProfilePath        string          `json:"profile_path,omitempty"`
	KnownForDepartment string          `json:"known_for_department,omitempty"`
	Birthday           string          `json:"birthday,omitempty"`
	PlaceOfBirth       string          `json:"place_of_birth,omitempty"`
	Popularity         float64         `json:"popularity,omitempty"`
	KnownForAnime      []AnimeResponse `json:"known_for_anime"`
}

// FromPerson converts a domain person.
func FromPerson(p *domain.Person) PersonResponse {
	return PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Biography:          p.Biography,
		ProfilePath:        p.ProfilePath,
		KnownForDepartment: p.KnownForDepartment,
		Birthday:           p.Birthday,
		PlaceOfBirth:       p.PlaceOfBirth,
		Popularity:         p.Popularity,
		KnownForAnime:      FromAnimeRecords(p.KnownForAnime),
	}
}

// StatusResponse represents a recorded status check.
type StatusResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

// FromStatusCheck converts a domain status check.
func FromStatusCheck(s *domain.StatusCheck) StatusResponse {
	return StatusResponse{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp.Format(time.RFC3339),
	}
}

// FromStatusChecks converts a status check list.
func FromStatusChecks(checks []*domain.StatusCheck) []StatusResponse {
	out := make([]StatusResponse, len(checks))
	for i, s := range checks {
		out[i] = FromStatusCheck(s)
	}
	return out
}

// MessageResponse is a plain informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
