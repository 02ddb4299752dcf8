// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/internal/domain"
	"anime-catalog-service/internal/transport/httpserver/dto"
	"anime-catalog-service/internal/transport/httpserver/handler"
	"anime-catalog-service/internal/transport/httpserver/middleware"
	"anime-catalog-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port      int
	BodyLimit int
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured. db may be
// nil when persistence is disabled; in that case the status routes are not
// registered and readiness ignores the database.
func NewServer(
	cfg ServerConfig,
	catalogSvc *service.CatalogService,
	statusSvc *service.StatusService,
	db *gorm.DB,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "anime-catalog-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(db))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(middleware.CORS())
	app.Use(compress.New())

	catalogHandler := handler.NewCatalogHandler(catalogSvc, v, logger)

	var statusHandler *handler.StatusHandler
	if statusSvc != nil {
		statusHandler = handler.NewStatusHandler(statusSvc, v, logger)
	}

	registerRoutes(app, catalogHandler, statusHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	catalogHandler *handler.CatalogHandler,
	statusHandler *handler.StatusHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "anime catalog service"})
	})

	anime := api.Group("/anime")
	anime.Get("/top", catalogHandler.TopRated)
	anime.Get("/movies", catalogHandler.Movies)
	anime.Get("/search", catalogHandler.Search)
	anime.Get("/current-season", catalogHandler.CurrentSeason)
	anime.Get("/seasonal/:year/:season", catalogHandler.Seasonal)
	anime.Get("/genres", catalogHandler.Genres)
	anime.Get("/recaps", catalogHandler.Recaps)
	anime.Get("/:id", catalogHandler.Details)
	anime.Get("/:id/videos", catalogHandler.Videos)
	anime.Get("/:id/images", catalogHandler.Images)
	anime.Get("/:id/recommendations", catalogHandler.Recommendations)

	api.Get("/person/:id", catalogHandler.Person)

	if statusHandler != nil {
		api.Post("/status", statusHandler.Create)
		api.Get("/status", statusHandler.List)
	}
}

// errorHandler maps domain errors onto HTTP status codes and logs by
// severity. Upstream failures surface as 502 so callers can tell a provider
// outage from a fault in this service.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		apiCode := "INTERNAL_ERROR"

		var (
			verr *domain.ValidationError
			uerr *domain.UpstreamError
			ferr *fiber.Error
		)

		switch {
		case errors.As(err, &verr):
			code, apiCode = fiber.StatusBadRequest, "VALIDATION_ERROR"
		case errors.Is(err, domain.ErrNotFound):
			code, apiCode = fiber.StatusNotFound, "NOT_FOUND"
		case errors.Is(err, domain.ErrTimeout):
			code, apiCode = fiber.StatusRequestTimeout, "UPSTREAM_TIMEOUT"
		case errors.Is(err, domain.ErrRateLimited):
			code, apiCode = fiber.StatusTooManyRequests, "RATE_LIMITED"
		case errors.As(err, &uerr):
			code, apiCode = fiber.StatusBadGateway, "UPSTREAM_ERROR"
		case errors.As(err, &ferr):
			code = ferr.Code
			if code == fiber.StatusNotFound {
				apiCode = "NOT_FOUND"
			}
		}

		// 404s are common and not server errors
		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		resp := dto.ErrorResponse{
			Error: err.Error(),
			Code:  apiCode,
		}
		if uerr != nil {
			resp.Details = fiber.Map{"upstream_status": uerr.Status}
		}

		return c.Status(code).JSON(resp)
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
