package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Snapshot puro del estado ledger + catálogo al momento de la llamada.
type DashboardStatsDTO struct {
	TotalSales         decimal.Decimal `json:"totalSales"`         // suma de ventas del rango
	LowStockCount      int             `json:"lowStockCount"`      // propiedad puntual, no filtrada por rango
	ExpiringItemsCount int             `json:"expiringItemsCount"` // horizonte fijo de 7 días
	TopCategory        string          `json:"topCategory"`        // "None" si nada acumula
}
