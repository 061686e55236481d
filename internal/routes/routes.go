package routes

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Handlers struct {
	Auth           *handlers.AuthHandler
	Representative *handlers.RepresentativeHandler
	Invitation     *handlers.InvitationHandler
	Child          *handlers.ChildHandler
	Product        *handlers.ProductHandler
	Health         *handlers.HealthHandler
}

func Setup(
	app *fiber.App,
	tokens *services.TokenService,
	authService *services.AuthService,
	m *metrics.Metrics,
	h Handlers,
) {
	app.Get("/", h.Health.Root)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api")

	// Public
	api.Get("/health", h.Health.Check)
	api.Post("/representatives/token", h.Auth.Login)
	api.Post("/representatives", h.Representative.Register)
	api.Post("/invites/validate/:code", h.Invitation.Validate)

	// Protected: valid bearer token, then active account.
	protected := []fiber.Handler{
		middleware.Authenticated(tokens, authService),
		middleware.RequireActive(),
	}
	with := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, protected...), handler)
	}

	api.Get("/representatives/me", with(h.Representative.Dashboard)...)
	api.Put("/representatives/me", with(h.Representative.Update)...)

	api.Post("/invites", with(h.Invitation.Create)...)
	api.Get("/invites", with(h.Invitation.List)...)
	api.Post("/invites/use/:code", with(h.Invitation.Use)...)

	api.Get("/children", with(h.Child.List)...)
	api.Post("/children", with(h.Child.Create)...)
	api.Put("/children/:id", with(h.Child.Update)...)
	api.Delete("/children/:id", with(h.Child.Delete)...)

	api.Get("/products", with(h.Product.List)...)
	api.Post("/products", with(h.Product.Create)...)
	api.Get("/products/:id", with(h.Product.Get)...)
	api.Put("/products/:id", with(h.Product.Update)...)
	api.Delete("/products/:id", with(h.Product.Delete)...)
}
