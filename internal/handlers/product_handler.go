package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	products, err := h.service.List(c.UserContext(), repID)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}

	return c.JSON(dto.NewProductResponses(products))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	var req dto.ProductRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.service.Create(c.UserContext(), repID, &req)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(product))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	productID, ok := pathID(c)
	if !ok {
		return respondError(c, services.ErrProductNotFound, "")
	}

	product, err := h.service.Get(c.UserContext(), repID, productID)
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}

	return c.JSON(dto.NewProductResponse(product))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	productID, ok := pathID(c)
	if !ok {
		return respondError(c, services.ErrProductNotFound, "")
	}

	var req dto.ProductRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.service.Update(c.UserContext(), repID, productID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}

	return c.JSON(dto.NewProductResponse(product))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	repID, err := owner.GetRepresentativeID(c)
	if err != nil {
		return respondError(c, services.ErrUnauthorized, "")
	}

	productID, ok := pathID(c)
	if !ok {
		return respondError(c, services.ErrProductNotFound, "")
	}

	if err := h.service.Delete(c.UserContext(), repID, productID); err != nil {
		return respondError(c, err, "Failed to delete product")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
