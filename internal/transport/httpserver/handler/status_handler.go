package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/transport/httpserver/dto"
	"anime-catalog-service/internal/validator"
)

// StatusHandler handles the status-check endpoint pair.
type StatusHandler struct {
	service   *service.StatusService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(svc *service.StatusService, v *validator.Validator, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.StatusCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.ValidationError{Msg: "invalid request body"}
	}
	if err := h.validator.Validate(&req); err != nil {
		return &domain.ValidationError{Msg: err.Error()}
	}

	check, err := h.service.Create(c.Context(), req.ClientName)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromStatusCheck(check))
}

// List handles GET /api/status
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.service.List(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"checks": dto.FromStatusChecks(checks)})
}
