// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/app/handlers"
	"github.com/promptlab/promptlab/app/middleware"
	"github.com/promptlab/promptlab/config"
	_ "github.com/promptlab/promptlab/docs"
	"github.com/promptlab/promptlab/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	Shutdown() error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app               *fiber.App
	cfg               *config.Config
	promptHandler     handlers.PromptHandlerInterface
	collectionHandler handlers.CollectionHandlerInterface
	tagHandler        handlers.TagHandlerInterface
	versionHandler    handlers.VersionHandlerInterface
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	cfg *config.Config,
	promptHandler handlers.PromptHandlerInterface,
	collectionHandler handlers.CollectionHandlerInterface,
	tagHandler handlers.TagHandlerInterface,
	versionHandler handlers.VersionHandlerInterface,
) Router {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ServerHeader: "PromptLab",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:               app,
		cfg:               cfg,
		promptHandler:     promptHandler,
		collectionHandler: collectionHandler,
		tagHandler:        tagHandler,
		versionHandler:    versionHandler,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	if r.cfg.Metrics.Enabled {
		r.app.Get(r.cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api/v1")

	api.Get("/health", r.healthCheck)

	if r.cfg.IsDevelopment() {
		api.Get("/swagger.json", r.serveSwaggerJSON)
		log.Info().Msg("API documentation enabled for development")
	}

	prompts := api.Group("/prompts")
	prompts.Post("/", r.promptHandler.Create)
	prompts.Get("/", r.promptHandler.List)
	prompts.Get("/:id", r.promptHandler.Get)
	prompts.Put("/:id", r.promptHandler.Update)
	prompts.Patch("/:id", r.promptHandler.Patch)
	prompts.Delete("/:id", r.promptHandler.Delete)
	prompts.Get("/:id/variables", r.promptHandler.Variables)

	prompts.Get("/:id/tags", r.tagHandler.ListForPrompt)
	prompts.Post("/:id/tags/:tagID", r.tagHandler.Attach)
	prompts.Delete("/:id/tags/:tagID", r.tagHandler.Detach)

	prompts.Post("/:id/versions", r.versionHandler.Create)
	prompts.Get("/:id/versions", r.versionHandler.List)
	prompts.Get("/:id/versions/:versionID", r.versionHandler.Get)
	prompts.Post("/:id/versions/:versionID/revert", r.versionHandler.Revert)

	collections := api.Group("/collections")
	collections.Post("/", r.collectionHandler.Create)
	collections.Get("/", r.collectionHandler.List)
	collections.Get("/:id", r.collectionHandler.Get)
	collections.Put("/:id", r.collectionHandler.Update)
	collections.Delete("/:id", r.collectionHandler.Delete)

	tags := api.Group("/tags")
	tags.Post("/", r.tagHandler.Create)
	tags.Get("/", r.tagHandler.List)
	tags.Get("/:id", r.tagHandler.Get)
	tags.Delete("/:id", r.tagHandler.Delete)

	r.app.Use(r.notFoundHandler)

	log.Info().Msg("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	r.app.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.Security.AllowedOrigins,
		AllowMethods:     r.cfg.Security.AllowedMethods,
		AllowHeaders:     r.cfg.Security.AllowedHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: r.cfg.Security.AllowCredentials,
		MaxAge:           r.cfg.Security.CORSMaxAge,
	}))

	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","ip":"${ip}","status":${status},"latency":"${latency}","bytes_out":${bytesSent}}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	if r.cfg.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Error().
				Interface("panic", e).
				Str("request_id", requestID(c)).
				Str("path", c.Path()).
				Str("method", c.Method()).
				Str("ip", c.IP()).
				Msg("Recovered from panic")
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Info().Str("address", address).Msg("Starting server")
	return r.app.Listen(address)
}

// Shutdown gracefully stops the HTTP server
func (r *FiberRouter) Shutdown() error {
	return r.app.Shutdown()
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: dto.HealthResponse{
			Status:  "ok",
			Version: r.cfg.App.Version,
		},
	})
}

// Serve Swagger JSON specification
func (r *FiberRouter) serveSwaggerJSON(c fiber.Ctx) error {
	swaggerData, err := os.ReadFile("docs/swagger.json")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Message: "Failed to load Swagger documentation",
			Error: dto.ErrorDetail{
				Code: "SWAGGER_LOAD_ERROR",
			},
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(swaggerData)
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID(c),
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Error().Err(err).Int("status", code).Str("path", c.Path()).Msg("Request failed")

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNowRFC3339(),
				"request_id": requestID(c),
			},
		},
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func requestID(c fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
