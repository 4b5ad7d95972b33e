package server

import (
	"github.com/gofiber/fiber/v2"

	"md2pdf/internal/config"
	"md2pdf/internal/domain"
	"md2pdf/internal/http/handlers"
	"md2pdf/internal/http/middleware"
	"md2pdf/internal/infra/logging"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config   config.Config
	Renderer domain.Renderer
	Prober   domain.Prober
}

// New creates and configures a Fiber app with the conversion and health
// routes mounted.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			logging.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    code,
					"message": msg,
				},
			})
		},
	})

	middleware.Register(app, d.Config)

	svc := handlers.NewConvertService(d.Config, d.Renderer, d.Prober)
	app.Post("/convert", svc.HandleConvert)
	app.Get("/health", svc.HandleHealth)

	// Ensure all responses, including 404s, return JSON
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}
