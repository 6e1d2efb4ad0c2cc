package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/miniproductivity/backend/internal/config"
	"github.com/miniproductivity/backend/internal/handlers"
	"github.com/miniproductivity/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	goalHandler *handlers.GoalHandler,
	quoteHandler *handlers.QuoteHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 120 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Liveness + health (public)
	app.Get("/", healthHandler.Liveness)
	app.Get("/health", healthHandler.Check)

	// Session cookie issuance gets a stricter limit: 20 req/min per IP
	app.Post("/jwt", limiter.New(limiter.Config{
		Max:               20,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.IssueToken)
	app.Get("/logout", authHandler.Logout)

	// User upsert happens before a session exists, so it stays public
	app.Post("/users", userHandler.Upsert)

	// Quote proxy (public)
	app.Get("/quote", quoteHandler.Random)

	// Everything below requires a valid session cookie
	auth := middleware.CookieAuth(cfg)

	app.Get("/users/info", auth, userHandler.Info)

	app.Post("/tasks", auth, taskHandler.Create)
	app.Get("/tasks", auth, taskHandler.List)
	app.Get("/tasks/:id", auth, taskHandler.Get)
	app.Put("/tasks/:id", auth, taskHandler.Update)
	app.Patch("/tasks/:id/complete", auth, taskHandler.Complete)
	// Historical client path; the delete itself is owner-scoped
	app.Delete("/delete/:id", auth, taskHandler.Delete)

	app.Post("/goals", auth, goalHandler.Create)
	app.Get("/goals", auth, goalHandler.List)
	app.Get("/goals/:id", auth, goalHandler.Get)
	app.Put("/goals/:id", auth, goalHandler.Update)
	app.Delete("/goals/:id", auth, goalHandler.Delete)
}
