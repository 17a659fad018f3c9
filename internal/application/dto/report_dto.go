package dto

// StockRowResponse fila del reporte de stock ordenado: el producto más su
// último movimiento (nil si nunca tuvo).
type StockRowResponse struct {
	Product      ProductResponse   `json:"product"`
	LastMovement *MovementResponse `json:"last_movement,omitempty"`
}

// LowStockAlert producto por debajo de su stock mínimo (qty < min estricto).
type LowStockAlert struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	Min       int    `json:"min"`
}

// MovementHistoryEntry movimiento del historial enriquecido con los nombres
// de producto y usuario para visualización. Si el referido ya no existe se
// muestra el id crudo.
type MovementHistoryEntry struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Qty         int    `json:"qty"`
	Date        string `json:"date"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
}
