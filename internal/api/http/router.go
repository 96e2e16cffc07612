package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Clients     *handlers.ClientsHandler
	Memberships *handlers.MembershipsHandler
}

// RegisterRoutes wires HTTP routes. The auth gate runs as a global
// middleware, so protection here is a matter of whether a path is on
// the public allow-list, not of per-route wiring.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get("/logout", cfg.Auth.Logout)

	api := app.Group("/api")

	api.Get("/users", cfg.Users.List)
	api.Get("/users/:id", cfg.Users.Get)
	api.Post("/users", cfg.Users.Create)
	api.Put("/users/:id", cfg.Users.Update)
	api.Delete("/users/:id", cfg.Users.Delete)

	api.Get("/clients", cfg.Clients.List)
	api.Get("/clients/:id", cfg.Clients.Get)
	api.Post("/clients", cfg.Clients.Create)
	api.Put("/clients/:id", cfg.Clients.Update)
	api.Delete("/clients/:id", cfg.Clients.Delete)
	api.Post("/clients/:id/memberships", cfg.Clients.RegisterMembership)

	api.Get("/memberships", cfg.Memberships.List)
	api.Get("/memberships/:id", cfg.Memberships.Get)
	api.Post("/memberships", cfg.Memberships.Create)
	api.Put("/memberships/:id", cfg.Memberships.Update)
	api.Delete("/memberships/:id", cfg.Memberships.Delete)
	api.Post("/memberships/:id/renew", cfg.Memberships.Renew)

	api.Get("/diagnostics/test-token/:email", cfg.Auth.TestToken)
}
