package http

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas del día, pendientes y cartera por cobrar.
// GET /api/dashboard/resumen
//
// Las fechas se calculan en el servidor con la zona horaria local.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// TodayStats GET /api/ventas/hoy/estadisticas
// @Summary   Estadísticas de ventas completadas del día
// @Tags      ventas
// @Security  Bearer
// @Produce   json
// @Success   200  {object}  dto.DailyStatsResponse
// @Router    /api/ventas/hoy/estadisticas [get]
func (h *DashboardHandler) TodayStats(c *fiber.Ctx) error {
	out, err := h.uc.TodayStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
