package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/classicmodels-admin/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve totales, tendencia de ventas y rankings.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (stats, sales_trend, top_products[5],
// top_customers[5], date_label). Si alguna de las consultas falla, falla todo.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
