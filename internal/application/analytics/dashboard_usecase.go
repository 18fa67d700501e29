// Package analytics contiene el caso de uso del tablero de estadísticas del
// negocio: ventas del período, alertas de stock y categoría más vendida.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solasiya/spazamanager/internal/application/dto"
	"github.com/solasiya/spazamanager/internal/domain/alerts"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

// Rangos de tiempo aceptados por ComputeStats. Un valor desconocido cae a "today".
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// DashboardUseCase produce el snapshot de salud del negocio. Es una función
// pura del estado ledger + catálogo al momento de la llamada: sin efectos,
// seguro de invocar repetida y concurrentemente.
type DashboardUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo, productRepo: productRepo, categoryRepo: categoryRepo}
}

// resolveStart traduce el rango a su fecha de inicio. today = medianoche
// local; week/month/year restan desde ahora con semántica de calendario.
func resolveStart(rng string, now time.Time) time.Time {
	switch rng {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// ComputeStats calcula las estadísticas del tablero para el rango dado.
//
// Tres lecturas en paralelo (ventas del período, catálogo, categorías); luego
// todo se agrega en memoria. LowStockCount y ExpiringItemsCount son propiedades
// puntuales del catálogo y no dependen del rango; el horizonte de vencimiento
// es fijo de 7 días.
func (uc *DashboardUseCase) ComputeStats(ctx context.Context, rng string) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	start := resolveStart(rng, now)

	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type categoriesResult struct {
		categories []*entity.Category
		err        error
	}

	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		s, err := uc.saleRepo.ListSince(ctx, start)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		p, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{p, err}
	}()
	go func() {
		c, err := uc.categoryRepo.List(ctx)
		categoriesCh <- categoriesResult{c, err}
	}()

	sales := <-salesCh
	products := <-productsCh
	categories := <-categoriesCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del período: %w", sales.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}

	totalSales := decimal.Zero
	for _, s := range sales.sales {
		totalSales = totalSales.Add(s.Total)
	}

	return &dto.DashboardStatsDTO{
		TotalSales:         totalSales,
		LowStockCount:      len(alerts.LowStock(products.products, nil)),
		ExpiringItemsCount: len(alerts.ExpiringSoon(products.products, now, alerts.DefaultExpiryWindowDays)),
		TopCategory:        topCategory(sales.sales, products.products, categories.categories),
	}, nil
}

// topCategory acumula cantidad vendida por nombre de categoría sobre las
// líneas de las ventas del período y devuelve la de mayor suma. Líneas cuyo
// producto ya no existe o no tiene categoría se ignoran; si la categoría del
// producto fue borrada, la suma va a "Uncategorized". Sin acumulados: "None".
func topCategory(sales []*entity.Sale, products []*entity.Product, categories []*entity.Category) string {
	productByID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	categoryByID := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c.Name
	}

	counts := make(map[string]int)
	for _, sale := range sales {
		for _, item := range sale.Items {
			product, ok := productByID[item.ProductID]
			if !ok || product.CategoryID == nil {
				continue
			}
			name, ok := categoryByID[*product.CategoryID]
			if !ok {
				name = entity.UncategorizedName
			}
			counts[name] += item.Quantity
		}
	}

	top := "None"
	best := 0
	for name, qty := range counts {
		if qty > best || (qty == best && best > 0 && name < top) {
			top = name
			best = qty
		}
	}
	return top
}
