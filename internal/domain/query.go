package domain

import (
	"sort"
)

// SortOrder represents the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortField represents the field a caller can sort by.
type SortField string

const (
	SortFieldRelevance   SortField = "relevance" // composite: confidence, popularity, rating
	SortFieldPopularity  SortField = "popularity"
	SortFieldVoteAverage SortField = "vote_average"
	SortFieldFirstAir    SortField = "first_air_date"
)

// CatalogQuery holds search and filter parameters for catalog operations.
type CatalogQuery struct {
	// Text search
	Query string

	// Filters
	Scope     ContentType // movie, series, or empty for both
	GenreIDs  []int
	Status    string
	MinRating float64
	StartDate string // ISO date, inclusive
	EndDate   string // ISO date, inclusive

	// Sorting
	SortBy    SortField
	SortOrder SortOrder

	// Pagination
	Page  int
	Limit int
}

// DefaultCatalogQuery returns a query with sensible defaults.
func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{
		SortBy:    SortFieldRelevance,
		SortOrder: SortOrderDesc,
		Page:      1,
		Limit:     20,
	}
}

// Validate ensures query params are within acceptable bounds. This is bound
// correction, not validation.
func (q *CatalogQuery) Validate() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 50 {
		q.Limit = 50
	}
	if q.SortBy == "" {
		q.SortBy = SortFieldRelevance
	}
	if q.SortOrder == "" {
		q.SortOrder = SortOrderDesc
	}
}

// DiscoverQuery is the provider-level shape of a filtered listing call.
type DiscoverQuery struct {
	ContentType ContentType
	GenreIDs    []int
	DateFrom    string // ISO date, inclusive
	DateTo      string // ISO date, inclusive
	SortBy      string // provider sort key, e.g. "popularity.desc"
	Page        int
}

// SearchQuery is the provider-level shape of a free-text search call.
type SearchQuery struct {
	Query       string
	ContentType ContentType
	Page        int
}

// SortByRelevance orders records by the composite relevance key:
// classification confidence descending, then popularity descending, then
// vote average descending. The sort is stable so equal records keep their
// upstream order.
func SortByRelevance(records []*AnimeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.AnimeConfidence != b.AnimeConfidence {
			return a.AnimeConfidence > b.AnimeConfidence
		}
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		return a.VoteAverage > b.VoteAverage
	})
}

// SortByField orders records by a single field. Unknown fields fall back to
// popularity. The sort is stable.
func SortByField(records []*AnimeRecord, field SortField, order SortOrder) {
	less := func(a, b *AnimeRecord) bool {
		switch field {
		case SortFieldVoteAverage:
			return a.VoteAverage < b.VoteAverage
		case SortFieldFirstAir:
			return a.AirDate() < b.AirDate()
		default:
			return a.Popularity < b.Popularity
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if order == SortOrderAsc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}

// CatalogPage holds one page of catalog results.
type CatalogPage struct {
	Results []*AnimeRecord `json:"results"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Count   int            `json:"count"`
}

// NewCatalogPage sorts, truncates, and wraps records into a page.
func NewCatalogPage(records []*AnimeRecord, page, limit int) *CatalogPage {
	SortByRelevance(records)
	if len(records) > limit {
		records = records[:limit]
	}

	return &CatalogPage{
		Results: records,
		Page:    page,
		Limit:   limit,
		Count:   len(records),
	}
}
