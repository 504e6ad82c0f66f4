package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"signage/internal/service"
)

// HealthCheck reports readiness: it fails when the backing store is
// unreachable within a short timeout.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all registry and resolver semantics live in the
// service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, contentSvc service.ContentService, screenSvc service.ScreenService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Operator surface
	app.Get("/", Index(contentSvc, screenSvc))
	app.Post("/upload", UploadContent(contentSvc))
	app.Post("/delete_content/:id", DeleteContent(contentSvc))
	// Form posts land back on the listing view
	app.Get("/manage_screens", ManageScreens(contentSvc, screenSvc))
	app.Post("/manage_screens", ManageScreens(contentSvc, screenSvc))
	app.Post("/assign_content", AssignContent(screenSvc))
	app.Post("/delete_screen/:id", DeleteScreen(screenSvc))

	// Display surface
	app.Get("/api/screen/:id", ScreenPoll(screenSvc))
	app.Get("/display/:id", DisplayShell())
}
