package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLocalsKey = "token"

// Unauthorized writes a 401 with the bearer challenge header.
func Unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// Authenticated verifies the bearer token and resolves its subject to a
// stored representative, which handlers read with owner.GetRepresentative.
func Authenticated(tokens *services.TokenService, auth *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:    tokens.Keyfunc,
		Claims:     &services.TokenClaims{},
		ContextKey: tokenLocalsKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return Unauthorized(c, services.ErrUnauthorized.Error())
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenLocalsKey).(*jwt.Token)
			if !ok {
				return Unauthorized(c, services.ErrUnauthorized.Error())
			}
			claims, _ := token.Claims.(*services.TokenClaims)
			subject, err := services.SubjectFromClaims(claims)
			if err != nil {
				return Unauthorized(c, services.ErrUnauthorized.Error())
			}

			rep, err := auth.ResolveSubject(c.UserContext(), subject)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					return Unauthorized(c, err.Error())
				}
				slog.Error("failed to resolve representative", "error", err)
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: true, Message: "Internal server error",
				})
			}

			owner.SetRepresentative(c, rep)
			return c.Next()
		},
	})
}

// RequireActive rejects deactivated accounts with 400. It must run after
// Authenticated.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := owner.GetRepresentative(c)
		if err != nil {
			return Unauthorized(c, services.ErrUnauthorized.Error())
		}
		if _, err := services.RequireActive(rep); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Next()
	}
}
