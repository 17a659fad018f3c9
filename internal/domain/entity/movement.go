package entity

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada" // suma stock
	MovementSaida   = "saida"   // resta stock, protegido contra negativo
)

// DateLayout formato de fecha de los movimientos. Con cero a la izquierda el
// orden lexicográfico de las fechas coincide con el cronológico.
const DateLayout = "2006-01-02"

// Movement es un registro de auditoría inmutable de un cambio de stock.
// ProductID y UserID son referencias débiles: el referido puede haber sido
// eliminado, la resolución se hace en lectura y nunca se sigue de forma
// automática. Solo se elimina en cascada al borrar su producto.
type Movement struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Qty       int    `json:"qty"`  // > 0
	Date      string `json:"date"` // YYYY-MM-DD
	UserID    string `json:"userId"`
}
