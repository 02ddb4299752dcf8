// Package handler provides HTTP handlers for the API.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/transport/httpserver/dto"
	"anime-catalog-service/internal/validator"
)

// CatalogHandler handles catalog HTTP requests. Domain errors are returned
// as-is; the server's error handler maps them to status codes.
type CatalogHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService, v *validator.Validator, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// parseList extracts and validates pagination parameters.
func (h *CatalogHandler) parseList(c *fiber.Ctx) (dto.ListRequest, error) {
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return req, &domain.ValidationError{Msg: "invalid query parameters"}
	}
	if err := h.validator.Validate(&req); err != nil {
		return req, &domain.ValidationError{Msg: err.Error()}
	}

	return req, nil
}

// parseContentType reads the optional content_type query param.
func parseContentType(c *fiber.Ctx) (domain.ContentType, error) {
	return domain.ParseContentType(c.Query("content_type"))
}

// TopRated handles GET /api/anime/top
func (h *CatalogHandler) TopRated(c *fiber.Ctx) error {
	req, err := h.parseList(c)
	if err != nil {
		return err
	}

	page, err := h.service.TopRated(c.Context(), req.Page, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromCatalogPage(page))
}

// Movies handles GET /api/anime/movies
func (h *CatalogHandler) Movies(c *fiber.Ctx) error {
	req, err := h.parseList(c)
	if err != nil {
		return err
	}

	page, err := h.service.Movies(c.Context(), req.Page, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromCatalogPage(page))
}

// Search handles GET /api/anime/search
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return &domain.ValidationError{Msg: "invalid query parameters"}
	}
	if err := h.validator.Validate(&req); err != nil {
		return &domain.ValidationError{Msg: err.Error()}
	}

	query, err := req.ToCatalogQuery()
	if err != nil {
		return err
	}

	page, err := h.service.Search(c.Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromCatalogPage(page))
}

// CurrentSeason handles GET /api/anime/current-season
func (h *CatalogHandler) CurrentSeason(c *fiber.Ctx) error {
	req, err := h.parseList(c)
	if err != nil {
		return err
	}

	page, err := h.service.CurrentSeason(c.Context(), req.Page, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromCatalogPage(page))
}

// Seasonal handles GET /api/anime/seasonal/:year/:season
func (h *CatalogHandler) Seasonal(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return &domain.ValidationError{Msg: "year must be an integer"}
	}

	req, err := h.parseList(c)
	if err != nil {
		return err
	}

	page, err := h.service.Seasonal(c.Context(), year, c.Params("season"), req.Page, req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromCatalogPage(page))
}

// Genres handles GET /api/anime/genres
func (h *CatalogHandler) Genres(c *fiber.Ctx) error {
	genres, err := h.service.Genres(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"genres": genres})
}

// Recaps handles GET /api/anime/recaps
func (h *CatalogHandler) Recaps(c *fiber.Ctx) error {
	videos, err := h.service.Recaps(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"videos": videos})
}

// Details handles GET /api/anime/:id
func (h *CatalogHandler) Details(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return &domain.ValidationError{Msg: "id must be a positive integer"}
	}

	ct, err := parseContentType(c)
	if err != nil {
		return err
	}

	record, err := h.service.Details(c.Context(), id, ct)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromAnimeRecord(record))
}

// Videos handles GET /api/anime/:id/videos
func (h *CatalogHandler) Videos(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return &domain.ValidationError{Msg: "id must be a positive integer"}
	}

	ct, err := parseContentType(c)
	if err != nil {
		return err
	}

	videos, err := h.service.Videos(c.Context(), id, ct)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"videos": videos})
}

// Images handles GET /api/anime/:id/images
func (h *CatalogHandler) Images(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return &domain.ValidationError{Msg: "id must be a positive integer"}
	}

	ct, err := parseContentType(c)
	if err != nil {
		return err
	}

	images, err := h.service.Images(c.Context(), id, ct)
	if err != nil {
		return err
	}

	return c.JSON(images)
}

// Recommendations handles GET /api/anime/:id/recommendations
func (h *CatalogHandler) Recommendations(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return &domain.ValidationError{Msg: "id must be a positive integer"}
	}

	ct, err := parseContentType(c)
	if err != nil {
		return err
	}

	records, err := h.service.Recommendations(c.Context(), id, ct)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"results": dto.FromAnimeRecords(records)})
}

// Person handles GET /api/person/:id
func (h *CatalogHandler) Person(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return &domain.ValidationError{Msg: "id must be a positive integer"}
	}

	person, err := h.service.Person(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(dto.FromPerson(person))
}
