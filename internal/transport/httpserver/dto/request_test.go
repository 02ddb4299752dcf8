package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime-catalog-service/internal/domain"
)

func TestToCatalogQueryDefaults(t *testing.T) {
	req := SearchRequest{}

	q, err := req.ToCatalogQuery()
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, domain.SortFieldRelevance, q.SortBy)
	assert.Equal(t, domain.SortOrderDesc, q.SortOrder)
	assert.Equal(t, domain.ContentType(""), q.Scope)
}

func TestToCatalogQueryFull(t *testing.T) {
	req := SearchRequest{
		Query:       "  frieren  ",
		Genres:      "16, 18",
		Status:      "Ended",
		ContentType: "tv",
		MinRating:   7.5,
		SortBy:      "vote_average",
		SortOrder:   "asc",
		StartDate:   "2023-01-01",
		EndDate:     "2023-12-31",
		Page:        2,
		Limit:       10,
	}

	q, err := req.ToCatalogQuery()
	require.NoError(t, err)

	assert.Equal(t, "frieren", q.Query)
	assert.Equal(t, []int{16, 18}, q.GenreIDs)
	assert.Equal(t, domain.ContentTypeSeries, q.Scope)
	assert.Equal(t, 7.5, q.MinRating)
	assert.Equal(t, domain.SortFieldVoteAverage, q.SortBy)
	assert.Equal(t, domain.SortOrderAsc, q.SortOrder)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestToCatalogQueryBadGenres(t *testing.T) {
	req := SearchRequest{Genres: "16,action"}

	_, err := req.ToCatalogQuery()

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestToCatalogQueryBadContentType(t *testing.T) {
	req := SearchRequest{ContentType: "podcast"}

	_, err := req.ToCatalogQuery()

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
