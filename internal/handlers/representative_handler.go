package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RepresentativeHandler struct {
	service *services.RepresentativeService
}

func NewRepresentativeHandler(service *services.RepresentativeService) *RepresentativeHandler {
	return &RepresentativeHandler{service: service}
}

func (h *RepresentativeHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	rep, err := h.service.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to register representative")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewRepresentativeResponse(rep))
}

func (h *RepresentativeHandler) Dashboard(c *fiber.Ctx) error {
	rep, err := owner.GetRepresentative(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	resp, err := h.service.Dashboard(c.UserContext(), rep)
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}

	return c.JSON(resp)
}

func (h *RepresentativeHandler) Update(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	var req dto.UpdateRepresentativeRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	rep, err := h.service.Update(c.UserContext(), repID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update representative")
	}

	return c.JSON(dto.NewRepresentativeResponse(rep))
}
