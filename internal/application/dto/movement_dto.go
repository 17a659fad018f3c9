package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/jhoicas/almox-api/internal/domain/entity"
)

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Date vacío se resuelve a la fecha de hoy en el servicio. UserName vacío se
// atribuye al usuario de la sesión activa (o al actor system).
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Qty       int    `json:"qty"`
	Date      string `json:"date"`
	UserName  string `json:"user_name"`
}

// Validate valida tipo, cantidad positiva y formato de fecha ISO.
func (r *RegisterMovementRequest) Validate() error {
	return WrapValidation(validation.ValidateStruct(r,
		validation.Field(&r.ProductID, validation.Required.Error("product_id es requerido")),
		validation.Field(&r.Type,
			validation.Required.Error("type es requerido"),
			validation.In(entity.MovementEntrada, entity.MovementSaida).Error("type debe ser entrada o saida"),
		),
		validation.Field(&r.Qty, validation.Required.Error("qty debe ser mayor que cero"),
			validation.Min(1).Error("qty debe ser mayor que cero")),
		validation.Field(&r.Date, validation.Date(entity.DateLayout).Error("date debe tener formato YYYY-MM-DD")),
	))
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Qty       int    `json:"qty"`
	Date      string `json:"date"`
	UserID    string `json:"user_id"`
}
