package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almox-api/internal/application/dto"
	"github.com/jhoicas/almox-api/internal/domain"
)

// mapDomainError traduce errores de dominio a respuestas HTTP. Un error de
// persistencia devuelve 500 pero la mutación en memoria ya ocurrió: se
// informa, no se reintenta.
func mapDomainError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: verr.Reason, Field: verr.Field,
		})
	}
	var nferr *domain.NotFoundError
	if errors.As(err, &nferr) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: nferr.Error(),
		})
	}
	var serr *domain.InsufficientStockError
	if errors.As(err, &serr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: serr.Error(),
		})
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "INVALID_CREDENTIALS", Message: "e-mail o password incorrectos",
		})
	}
	if errors.Is(err, domain.ErrPersistence) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "PERSISTENCE", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
