// Package report son las proyecciones de solo lectura sobre un snapshot del
// documento: stock ordenado, alertas de stock mínimo, historial de
// movimientos y búsqueda. Ninguna función muta estado; se pueden llamar
// repetidamente sobre snapshots frescos.
package report

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/almox-api/internal/application/dto"
	"github.com/jhoicas/almox-api/internal/domain/entity"
	"github.com/jhoicas/almox-api/internal/store"
)

// DefaultHistoryLimit máximo de movimientos en el historial.
const DefaultHistoryLimit = 100

// fold comparación de nombres insensible a mayúsculas (case folding Unicode,
// los nombres de producto traen acentos).
var fold = cases.Fold()

// UseCase proyecciones derivadas del Data Store.
type UseCase struct {
	store *store.Store
}

// New construye las proyecciones.
func New(st *store.Store) *UseCase {
	return &UseCase{store: st}
}

// SortedProducts productos ordenados por nombre ascendente, insensible a
// mayúsculas, con orden por inserción: estable, los empates conservan el
// orden del documento.
func (uc *UseCase) SortedProducts() []dto.ProductResponse {
	doc := uc.store.Snapshot()
	insertionSortByName(doc.Products)
	out := make([]dto.ProductResponse, len(doc.Products))
	for i := range doc.Products {
		out[i] = toProductResponse(&doc.Products[i])
	}
	return out
}

// SortedStock reporte de stock: productos ordenados por nombre, cada fila con
// su último movimiento (nil si nunca tuvo).
func (uc *UseCase) SortedStock() []dto.StockRowResponse {
	doc := uc.store.Snapshot()
	insertionSortByName(doc.Products)
	out := make([]dto.StockRowResponse, len(doc.Products))
	for i := range doc.Products {
		out[i] = dto.StockRowResponse{
			Product:      toProductResponse(&doc.Products[i]),
			LastMovement: toMovementResponse(lastMovement(doc, doc.Products[i].ID)),
		}
	}
	return out
}

// LastMovement último movimiento del producto: el de mayor fecha
// (comparación lexicográfica); en empate de fecha gana el agregado más
// recientemente al documento. Nil si el producto no tiene movimientos.
func (uc *UseCase) LastMovement(productID string) *dto.MovementResponse {
	return toMovementResponse(lastMovement(uc.store.Snapshot(), productID))
}

// LowStockAlerts productos con qty < min (estricto), en orden del documento.
func (uc *UseCase) LowStockAlerts() []dto.LowStockAlert {
	doc := uc.store.Snapshot()
	out := make([]dto.LowStockAlert, 0)
	for i := range doc.Products {
		p := &doc.Products[i]
		if p.BelowMin() {
			out = append(out, dto.LowStockAlert{
				ProductID: p.ID,
				Name:      p.Name,
				Qty:       p.Qty,
				Min:       p.Min,
			})
		}
	}
	return out
}

// MovementHistory movimientos ordenados por fecha descendente (orden estable:
// los empates conservan el orden del documento), enriquecidos con nombres de
// producto y usuario, truncados a limit. limit fuera de rango usa el máximo.
func (uc *UseCase) MovementHistory(limit int) []dto.MovementHistoryEntry {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	doc := uc.store.Snapshot()
	movs := doc.Movements
	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Date > movs[j].Date
	})
	if len(movs) > limit {
		movs = movs[:limit]
	}
	out := make([]dto.MovementHistoryEntry, len(movs))
	for i, m := range movs {
		entry := dto.MovementHistoryEntry{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductID,
			Type:        m.Type,
			Qty:         m.Qty,
			Date:        m.Date,
			UserID:      m.UserID,
			UserName:    m.UserID,
		}
		if p := doc.FindProduct(m.ProductID); p != nil {
			entry.ProductName = p.Name
		}
		if u := doc.FindUser(m.UserID); u != nil {
			entry.UserName = u.Name
		}
		out[i] = entry
	}
	return out
}

// SearchProducts filtro por subcadena insensible a mayúsculas sobre
// nombre, marca y modelo; query vacío devuelve todo en orden del documento.
func (uc *UseCase) SearchProducts(query string) []dto.ProductResponse {
	doc := uc.store.Snapshot()
	q := fold.String(strings.TrimSpace(query))
	out := make([]dto.ProductResponse, 0, len(doc.Products))
	for i := range doc.Products {
		p := &doc.Products[i]
		if q != "" {
			hay := fold.String(p.Name + " " + p.Brand + " " + p.Model)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, toProductResponse(p))
	}
	return out
}

// insertionSortByName orden por inserción sobre el slice, comparando nombres
// con case folding. El dataset es pequeño; el algoritmo de ordenamiento es
// parte del contrato, no una decisión de rendimiento.
func insertionSortByName(products []entity.Product) {
	for i := 1; i < len(products); i++ {
		key := products[i]
		keyName := fold.String(key.Name)
		j := i - 1
		for j >= 0 && fold.String(products[j].Name) > keyName {
			products[j+1] = products[j]
			j--
		}
		products[j+1] = key
	}
}

// lastMovement recorre el documento quedándose con la mayor fecha; el >=
// hace que en empate gane el movimiento agregado más tarde.
func lastMovement(doc *entity.Document, productID string) *entity.Movement {
	var last *entity.Movement
	for i := range doc.Movements {
		m := &doc.Movements[i]
		if m.ProductID != productID {
			continue
		}
		if last == nil || m.Date >= last.Date {
			last = m
		}
	}
	return last
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Model:    p.Model,
		Qty:      p.Qty,
		Min:      p.Min,
		Features: p.Features,
	}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Qty:       m.Qty,
		Date:      m.Date,
		UserID:    m.UserID,
	}
}
