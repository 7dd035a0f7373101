package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/domain/entity"
	"github.com/sgp-sistemas/sgp-api/pkg/jwt"
)

const actorKey = "actor"

// AuthMiddleware valida o Bearer token e injeta o entity.Actor nos Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token ausente"})
		}
		userID, email, role, err := jwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido ou expirado"})
		}
		c.Locals(actorKey, entity.Actor{ID: userID, Email: email, Role: role})
		return c.Next()
	}
}

// GetActor recupera o ator autenticado colocado pelo AuthMiddleware.
func GetActor(c *fiber.Ctx) entity.Actor {
	if a, ok := c.Locals(actorKey).(entity.Actor); ok {
		return a
	}
	return entity.Actor{}
}
