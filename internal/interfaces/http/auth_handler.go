package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sgp-sistemas/sgp-api/internal/application/auth"
	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
)

// AuthHandler endpoints de registro e login de funcionários.
type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	user, err := h.authUseCase.Register(req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	resp, err := h.authUseCase.Login(req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
