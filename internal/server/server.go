// Package server wires the HTTP API: the lookup endpoint the browser
// extension calls, subscription endpoints, health and metrics.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enorett/enorett/internal/config"
	"github.com/enorett/enorett/internal/i18n"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	cfg *config.Config
}

// New creates the app with middleware and routes configured.
func New(
	cfg *config.Config,
	catalog *i18n.Catalog,
	lookupHandler *LookupHandler,
	subscriptionHandler *SubscriptionHandler,
	registry *prometheus.Registry,
) *Server {
	app := fiber.New(fiber.Config{
		AppName: "enorett-api",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			english, swedish := catalog.Pair(i18n.KeyInternalError)
			return c.Status(code).JSON(errorResponse(english, swedish))
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	// 100 requests per minute per IP, matching the original service limits.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			english, swedish := catalog.Pair(i18n.KeyRateLimited)
			return c.Status(fiber.StatusTooManyRequests).JSON(errorResponse(english, swedish))
		},
	}))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	api.Get("/lookup", lookupHandler.Lookup)
	api.Post("/subscription/verify", subscriptionHandler.Verify)
	api.Get("/subscription/status/:userId", subscriptionHandler.Status)

	return &Server{App: app, cfg: cfg}
}

// Start listens on the configured address.
func (s *Server) Start() error {
	return s.App.Listen(s.cfg.Server.Address)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
