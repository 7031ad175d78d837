package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devhive-labs/portfolio-service/internal/api/http/handlers"
	"github.com/devhive-labs/portfolio-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Visits         *handlers.VisitsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/auth/verify", cfg.AuthMiddleware.Handle, cfg.Auth.Verify)

	userGroup := api.Group("/user")
	userGroup.Post("/signup", cfg.Users.Signup)
	userGroup.Post("/login", cfg.Users.Login)
	userGroup.Get("/", cfg.Users.List)
	// Approval route is declared before :id so it does not shadow.
	userGroup.Patch("/approval/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Users.UpdateApproval)
	userGroup.Get("/:id", cfg.AuthMiddleware.HandleOptional, cfg.Users.Get)
	userGroup.Patch("/:id", cfg.AuthMiddleware.Handle, auth.RequireOwnerOrAdmin("id"), cfg.Users.Update)
	userGroup.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireOwnerOrAdmin("id"), cfg.Users.Delete)

	visitGroup := api.Group("/visits")
	visitGroup.Post("/track", cfg.Visits.Track)
	visitGroup.Get("/:userId", cfg.AuthMiddleware.Handle, auth.RequireOwnerOrAdmin("userId"), cfg.Visits.List)
	visitGroup.Delete("/:userId/:visitId", cfg.AuthMiddleware.Handle, auth.RequireOwnerOrAdmin("userId"), cfg.Visits.DeleteOne)
	visitGroup.Delete("/:userId", cfg.AuthMiddleware.Handle, auth.RequireOwnerOrAdmin("userId"), cfg.Visits.DeleteAll)
}
