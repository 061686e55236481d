package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login issues an access token. It accepts JSON or the OAuth2 password
// form body.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	resp, err := h.authService.Login(c.UserContext(), req.Identifier(), req.Password)
	if err != nil {
		return respondError(c, err, "Failed to log in")
	}

	return c.JSON(resp)
}
