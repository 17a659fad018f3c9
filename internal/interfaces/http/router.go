package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almox-api/internal/application/auth"
	"github.com/jhoicas/almox-api/internal/application/inventory"
	"github.com/jhoicas/almox-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	ReportUC    *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren sesión activa)
	protected := api.Group("/", RequireSession(deps.AuthUC))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC, deps.ReportUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de stock (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/alerts", reportHandler.Alerts)
	reports.Get("/movements", reportHandler.Movements)
}
