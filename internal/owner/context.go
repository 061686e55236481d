package owner

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/gofiber/fiber/v2"
)

const localsKey = "representative"

var ErrNoRepresentative = errors.New("no authenticated representative in context")

// SetRepresentative stores the resolved caller on the request context.
func SetRepresentative(c *fiber.Ctx, rep *models.Representative) {
	c.Locals(localsKey, rep)
}

// GetRepresentative returns the caller resolved by the auth middleware.
func GetRepresentative(c *fiber.Ctx) (*models.Representative, error) {
	rep, ok := c.Locals(localsKey).(*models.Representative)
	if !ok || rep == nil {
		return nil, ErrNoRepresentative
	}
	return rep, nil
}

// GetRepresentativeID is a shortcut for handlers that only need the id.
func GetRepresentativeID(c *fiber.Ctx) (uint, error) {
	rep, err := GetRepresentative(c)
	if err != nil {
		return 0, err
	}
	return rep.ID, nil
}
