package server

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/config"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/routes"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Options tweak New for tests.
type Options struct {
	DisableAccessLog bool
}

// New wires services, handlers and middleware into a Fiber app.
func New(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, opts Options) (*fiber.App, error) {
	tokens, err := services.NewTokenService(services.TokenConfig{
		Secret:    []byte(cfg.JWTSecret),
		Algorithm: cfg.JWTAlgorithm,
		TTL:       cfg.JWTAccessExpiry,
	})
	if err != nil {
		return nil, err
	}

	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	authService := services.NewAuthService(db, hasher, tokens, m)
	representativeService := services.NewRepresentativeService(db, hasher, cfg.PhoneRegion)
	invitationService := services.NewInvitationService(db, m)
	childService := services.NewChildService(db)
	productService := services.NewProductService(db)

	app := fiber.New(fiber.Config{
		AppName:      "cf-incubator",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})

	if sentry.CurrentHub().Client() != nil {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	if !opts.DisableAccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	}
	app.Use(m.Middleware())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, tokens, authService, m, routes.Handlers{
		Auth:           handlers.NewAuthHandler(authService),
		Representative: handlers.NewRepresentativeHandler(representativeService),
		Invitation:     handlers.NewInvitationHandler(invitationService),
		Child:          handlers.NewChildHandler(childService),
		Product:        handlers.NewProductHandler(productService),
		Health:         handlers.NewHealthHandler(db),
	})

	return app, nil
}

// ErrorHandler renders errors that escaped a handler. Details of 5xx
// errors are logged and reported, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
