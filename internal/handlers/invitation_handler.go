package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InvitationHandler struct {
	service *services.InvitationService
}

func NewInvitationHandler(service *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	inv, err := h.service.Create(c.UserContext(), repID)
	if err != nil {
		return respondError(c, err, "Failed to create invitation")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewInvitationResponse(inv))
}

func (h *InvitationHandler) List(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	invitations, err := h.service.ListByOwner(c.UserContext(), repID)
	if err != nil {
		return respondError(c, err, "Failed to fetch invitations")
	}

	return c.JSON(dto.NewInvitationResponses(invitations))
}

// Validate is public: it reports whether a code is still redeemable.
func (h *InvitationHandler) Validate(c *fiber.Ctx) error {
	inv, err := h.service.LookupUnused(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err, "Failed to validate invitation")
	}

	return c.JSON(dto.NewInvitationResponse(inv))
}

func (h *InvitationHandler) Use(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	inv, err := h.service.Redeem(c.UserContext(), c.Params("code"), repID)
	if err != nil {
		return respondError(c, err, "Failed to use invitation")
	}

	return c.JSON(dto.NewInvitationResponse(inv))
}
