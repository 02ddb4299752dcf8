// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"strconv"
	"strings"

	"anime-catalog-service/internal/domain"
)

// ListRequest holds pagination parameters for catalog listings.
type ListRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

// SearchRequest holds search and filter parameters.
type SearchRequest struct {
	Query       string  `query:"q" validate:"omitempty,max=200"`
	Genres      string  `query:"genres" validate:"omitempty,max=100"`
	Status      string  `query:"status" validate:"omitempty,max=50"`
	ContentType string  `query:"content_type" validate:"omitempty,oneof=movie series tv"`
	MinRating   float64 `query:"min_rating" validate:"omitempty,min=0,max=10"`
	SortBy      string  `query:"sort_by" validate:"omitempty,oneof=relevance popularity vote_average first_air_date"`
	SortOrder   string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	StartDate   string  `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string  `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Page        int     `query:"page" validate:"omitempty,min=1"`
	Limit       int     `query:"limit" validate:"omitempty,min=1,max=50"`
}

// ToCatalogQuery converts the request into the domain query shape. The
// content type must already be validated.
func (r *SearchRequest) ToCatalogQuery() (domain.CatalogQuery, error) {
	q := domain.DefaultCatalogQuery()
	q.Query = strings.TrimSpace(r.Query)
	q.Status = r.Status
	q.MinRating = r.MinRating
	q.StartDate = r.StartDate
	q.EndDate = r.EndDate

	if r.ContentType != "" {
		scope, err := domain.ParseContentType(r.ContentType)
		if err != nil {
			return q, err
		}
		q.Scope = scope
	}

	if r.Genres != "" {
		for _, part := range strings.Split(r.Genres, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return q, &domain.ValidationError{Msg: "genres must be a comma-separated list of ids"}
			}
			q.GenreIDs = append(q.GenreIDs, id)
		}
	}

	if r.SortBy != "" {
		q.SortBy = domain.SortField(r.SortBy)
	}
	if r.SortOrder != "" {
		q.SortOrder = domain.SortOrder(r.SortOrder)
	}
	if r.Page > 0 {
		q.Page = r.Page
	}
	if r.Limit > 0 {
		q.Limit = r.Limit
	}

	return q, nil
}

// StatusCreateRequest is the body of POST /api/status.
type StatusCreateRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=255"`
}
