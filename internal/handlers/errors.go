package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

// validatable is implemented by every request DTO.
type validatable interface {
	Validate() error
}

// parseAndValidate binds the body into req and runs its validation rules.
// On failure it has already written the 400 response.
func parseAndValidate(c *fiber.Ctx, req validatable) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Fields: dto.FieldErrors(err),
		})
	}
	return true, nil
}

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthorized):
		return middleware.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInactiveAccount),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidPhone):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrChildNotFound),
		errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error(fallback, "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
