package server

import (
	"log"

	"wine-club-be/internal/bootstrap"
	"wine-club-be/internal/config"
	"wine-club-be/internal/pkg/serverutils"
	"wine-club-be/internal/service"
	"wine-club-be/pkg/wine"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := NewApp(cfg.App.BodyLimitBytes, cfg.App.CorsAllowedOrigins)
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// NewApp builds the fiber app with middleware but no routes.
func NewApp(bodyLimit int, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(ErrorMappings()...))

	return app
}

// ErrorMappings lists the domain errors with a dedicated HTTP status.
func ErrorMappings() []serverutils.ErrorMapping {
	return []serverutils.ErrorMapping{
		{Err: wine.ErrNoImageProvided, Status: fiber.StatusBadRequest},
		{Err: service.ErrNoSession, Status: fiber.StatusUnauthorized},
		{Err: service.ErrScanInProgress, Status: fiber.StatusConflict},
		{Err: service.ErrScanNotFound, Status: fiber.StatusNotFound},
		{Err: service.ErrCollectionEntryNotFound, Status: fiber.StatusNotFound},
		{Err: service.ErrUnidentifiedWine, Status: fiber.StatusUnprocessableEntity},
		{Err: service.ErrBlankWineName, Status: fiber.StatusBadRequest},
		{Err: service.ErrPersist, Status: fiber.StatusInternalServerError},
	}
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "Wine Club API is running!"})
	})

	c.WineController.RegisterLegacyRoutes(app, c.OptionalAuth)

	api := app.Group("/api")
	c.WineController.RegisterRoutes(api, c.Auth)
	c.CollectionController.RegisterRoutes(api, c.Auth)
}
