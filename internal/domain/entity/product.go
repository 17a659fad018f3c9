package entity

// Product representa un ítem del almacén con su stock actual.
// Invariante: Qty nunca queda negativo como resultado de un movimiento;
// la única guarda es la validación de salidas en el servicio de inventario.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"` // requerido, no vacío
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Qty      int      `json:"qty"` // >= 0
	Min      int      `json:"min"` // umbral de stock mínimo, >= 0
	Features []string `json:"features"`
}

// BelowMin indica si el producto está por debajo del stock mínimo (estricto).
func (p *Product) BelowMin() bool {
	return p.Qty < p.Min
}
