package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChildHandler struct {
	service *services.ChildService
}

func NewChildHandler(service *services.ChildService) *ChildHandler {
	return &ChildHandler{service: service}
}

// pathID parses the :id route param. Non-positive or malformed ids are
// answered with 404 since no row can match them.
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *ChildHandler) List(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	children, err := h.service.List(c.UserContext(), repID)
	if err != nil {
		return respondError(c, err, "Failed to fetch children")
	}

	return c.JSON(dto.NewChildResponses(children))
}

func (h *ChildHandler) Create(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	var req dto.ChildRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	child, err := h.service.Create(c.UserContext(), repID, &req)
	if err != nil {
		return respondError(c, err, "Failed to create child")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewChildResponse(child))
}

func (h *ChildHandler) Update(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	childID, ok := pathID(c)
	if !ok {
		return respondError(c, services.ErrChildNotFound, "")
	}

	var req dto.ChildRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	child, err := h.service.Update(c.UserContext(), repID, childID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update child")
	}

	return c.JSON(dto.NewChildResponse(child))
}

func (h *ChildHandler) Delete(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	childID, ok := pathID(c)
	if !ok {
		return respondError(c, services.ErrChildNotFound, "")
	}

	if err := h.service.Delete(c.UserContext(), repID, childID); err != nil {
		return respondError(c, err, "Failed to delete child")
	}

	return c.JSON(fiber.Map{"message": "Child deleted successfully"})
}
