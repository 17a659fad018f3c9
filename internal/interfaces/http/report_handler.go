package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almox-api/internal/application/report"
)

// ReportHandler expone las proyecciones de lectura (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Stock ordenado por nombre con último movimiento por producto
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.StockRowResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	return c.JSON(h.uc.SortedStock())
}

// Alerts godoc
// @Summary      Productos por debajo del stock mínimo
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.LowStockAlert
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStockAlerts())
}

// Movements godoc
// @Summary      Historial de movimientos, más recientes primero
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(100)
// @Success      200    {array}  dto.MovementHistoryEntry
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", report.DefaultHistoryLimit)
	return c.JSON(h.uc.MovementHistory(limit))
}
