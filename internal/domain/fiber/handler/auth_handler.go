package handler

import (
	"github.com/campuspulse/feedback-api/internal/auth"
	"github.com/campuspulse/feedback-api/internal/dto"
	"github.com/campuspulse/feedback-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authenticator auth.Authenticator
}

func NewAuthHandler(authenticator auth.Authenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/login", h.Login)
}

// Login - POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	token, err := h.authenticator.Login(req.Username, req.Password)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	return c.JSON(fiber.Map{"status": "success", "token": token})
}
