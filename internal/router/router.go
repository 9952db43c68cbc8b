package router

import (
	"edubridge/internal/config"
	"edubridge/internal/handler"
	"edubridge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Education *handler.EducationHandler
	Health    *handler.HealthHandler
}

// New builds the fiber application: middleware, API routes, docs and the
// static client bundle.
func New(cfg config.ServerConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", h.Health.Health)
	api.Post("/generate-quiz", h.Education.GenerateQuiz)
	api.Post("/generate-summary", h.Education.GenerateSummary)
	api.Post("/generate-report", h.Education.GenerateReport)
	api.Post("/feedback", h.Education.GenerateFeedback)
	api.Post("/recommendations", h.Education.GenerateRecommendations)
	api.Post("/evaluate-quiz", h.Education.EvaluateQuiz)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir, fiber.Static{Index: "index.html"})
	}

	return app
}
