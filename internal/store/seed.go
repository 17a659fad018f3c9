package store

import (
	"time"

	"github.com/jhoicas/almox-api/internal/domain/entity"
)

// SeedDocument construye el documento demo inicial: tres usuarios, tres
// productos y un movimiento de entrada por producto. Los ids son fijos para
// que el seed sea reproducible.
func SeedDocument() *entity.Document {
	return &entity.Document{
		DBName:    "almox_db",
		CreatedAt: time.Now().UTC(),
		Users: []entity.User{
			{ID: "u_admin", Name: "Administrador", Email: "admin@saep.com", Password: "admin123", Role: entity.RoleAdmin},
			{ID: "u_jose", Name: "José Almeida", Email: "jose@almox.com", Password: "jose123", Role: entity.RoleUser},
			{ID: "u_maria", Name: "Maria Silva", Email: "maria@almox.com", Password: "maria123", Role: entity.RoleUser},
		},
		Products: []entity.Product{
			{ID: "p_martelo_16", Name: "Martelo de Unha 16 oz MASTER", Brand: "MASTER", Model: "16oz-R", Qty: 12, Min: 3,
				Features: []string{"cabo tubular", "16 oz", "perfil reto"}},
			{ID: "p_chave_fenda_3", Name: "Chave de Fenda 3mm Isolada", Brand: "PROFIX", Model: "CF-3I", Qty: 30, Min: 5,
				Features: []string{"isolada", "ponta imantada", "3mm"}},
			{ID: "p_furadeira_500", Name: "Furadeira 500W Industrial", Brand: "FORCE", Model: "F500", Qty: 5, Min: 2,
				Features: []string{"500W", "220V", "peso 3.2kg"}},
		},
		Movements: []entity.Movement{
			{ID: "m1", ProductID: "p_martelo_16", Type: entity.MovementEntrada, Qty: 10, Date: "2025-11-01", UserID: "u_admin"},
			{ID: "m2", ProductID: "p_chave_fenda_3", Type: entity.MovementEntrada, Qty: 30, Date: "2025-10-25", UserID: "u_jose"},
			{ID: "m3", ProductID: "p_furadeira_500", Type: entity.MovementEntrada, Qty: 5, Date: "2025-09-10", UserID: "u_maria"},
		},
	}
}
