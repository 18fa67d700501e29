package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/solasiya/spazamanager/internal/application/analytics"
)

// DashboardHandler expone las estadísticas agregadas del tablero.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del tablero
// @Description  Total de ventas del rango, conteos de stock bajo y vencimiento próximo, y categoría top por unidades vendidas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "Rango temporal"  Enums(today, week, month, year)  default(today)
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	rng := c.Query("range", analytics.RangeToday)
	out, err := h.uc.ComputeStats(c.Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
