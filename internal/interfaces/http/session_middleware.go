package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almox-api/internal/application/auth"
	"github.com/jhoicas/almox-api/internal/application/dto"
)

// RequireSession corta las rutas protegidas cuando no hay sesión activa.
// No hay tokens: la sesión vive en el proceso y se restaura al arrancar
// desde el marcador persistido.
func RequireSession(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authUC.Current() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "NO_SESSION", Message: "se requiere una sesión activa",
			})
		}
		return c.Next()
	}
}
