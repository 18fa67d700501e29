package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solasiya/spazamanager/internal/application/analytics"
	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// Fakes de solo lectura: el dashboard no escribe nada.

type stubSaleRepo struct{ sales []*entity.Sale }

func (r *stubSaleRepo) Create(context.Context, *entity.Sale) error        { return nil }
func (r *stubSaleRepo) GetByID(context.Context, int64) (*entity.Sale, error) { return nil, nil }
func (r *stubSaleRepo) List(context.Context) ([]*entity.Sale, error)      { return r.sales, nil }

func (r *stubSaleRepo) ListSince(_ context.Context, since time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if !s.Date.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubProductRepo struct{ products []*entity.Product }

func (r *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetForUpdate(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(context.Context, *entity.Product) error       { return nil }
func (r *stubProductRepo) UpdateQuantity(context.Context, int64, int) error    { return nil }
func (r *stubProductRepo) List(context.Context) ([]*entity.Product, error)     { return r.products, nil }
func (r *stubProductRepo) Delete(context.Context, int64) error                 { return nil }

type stubCategoryRepo struct{ categories []*entity.Category }

func (r *stubCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (r *stubCategoryRepo) GetByID(context.Context, int64) (*entity.Category, error) {
	return nil, nil
}
func (r *stubCategoryRepo) Update(context.Context, *entity.Category) error   { return nil }
func (r *stubCategoryRepo) List(context.Context) ([]*entity.Category, error) { return r.categories, nil }
func (r *stubCategoryRepo) Delete(context.Context, int64) error              { return nil }

func venta(daysAgo int, total string, items ...entity.LineItem) *entity.Sale {
	return &entity.Sale{
		Date:  time.Now().AddDate(0, 0, -daysAgo),
		Total: decimal.RequireFromString(total),
		Items: items,
	}
}

func newDashboard(sales []*entity.Sale, products []*entity.Product, categories []*entity.Category) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		&stubSaleRepo{sales},
		&stubProductRepo{products},
		&stubCategoryRepo{categories},
	)
}

func TestComputeStats_SumaVentasDelRango(t *testing.T) {
	sales := []*entity.Sale{
		venta(0, "100.50"),
		venta(3, "50"),  // fuera de "today", dentro de "week"
		venta(40, "25"), // fuera de "week"
	}
	uc := newDashboard(sales, nil, nil)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeWeek)
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.Equal(decimal.RequireFromString("150.50")),
		"solo las ventas de los últimos 7 días")
}

func TestComputeStats_RangoDesconocido_CaeAToday(t *testing.T) {
	sales := []*entity.Sale{venta(0, "10"), venta(2, "99")}
	uc := newDashboard(sales, nil, nil)

	stats, err := uc.ComputeStats(context.Background(), "quincena")
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.Equal(decimal.RequireFromString("10")))
}

func TestComputeStats_SinVentas_TotalCeroYTopNone(t *testing.T) {
	uc := newDashboard(nil, nil, nil)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeToday)
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.IsZero())
	assert.Equal(t, "None", stats.TopCategory)
	assert.Zero(t, stats.LowStockCount)
	assert.Zero(t, stats.ExpiringItemsCount)
}

func TestComputeStats_ConteosDeAlertas(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 3)
	far := time.Now().AddDate(0, 0, 60)
	products := []*entity.Product{
		{ID: 1, Quantity: 2, AlertThreshold: 5},                  // stock bajo
		{ID: 2, Quantity: 0},                                     // cuenta en la consulta histórica
		{ID: 3, Quantity: 50, AlertThreshold: 5, ExpiryDate: &soon}, // próximo a vencer
		{ID: 4, Quantity: 50, AlertThreshold: 5, ExpiryDate: &far},
	}
	uc := newDashboard(nil, products, nil)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeToday)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.Equal(t, 1, stats.ExpiringItemsCount)
}

func TestComputeStats_TopCategory_PorUnidadesVendidas(t *testing.T) {
	cat1, cat2 := int64(1), int64(2)
	categories := []*entity.Category{
		{ID: cat1, Name: "Bebidas"},
		{ID: cat2, Name: "Snacks"},
	}
	products := []*entity.Product{
		{ID: 10, Quantity: 99, CategoryID: &cat1},
		{ID: 11, Quantity: 99, CategoryID: &cat2},
	}
	sales := []*entity.Sale{
		venta(0, "10",
			entity.LineItem{ProductID: 10, Quantity: 2, Price: decimal.New(1, 0)},
			entity.LineItem{ProductID: 11, Quantity: 5, Price: decimal.New(1, 0)},
		),
	}
	uc := newDashboard(sales, products, categories)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeToday)
	require.NoError(t, err)
	assert.Equal(t, "Snacks", stats.TopCategory, "gana por cantidad vendida, no por monto")
}

func TestComputeStats_TopCategory_CategoriaBorrada(t *testing.T) {
	// El producto apunta a una categoría que ya no existe: sus unidades
	// cuentan bajo "Uncategorized".
	gone := int64(77)
	products := []*entity.Product{{ID: 10, Quantity: 99, CategoryID: &gone}}
	sales := []*entity.Sale{
		venta(0, "10", entity.LineItem{ProductID: 10, Quantity: 4, Price: decimal.New(1, 0)}),
	}
	uc := newDashboard(sales, products, nil)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeToday)
	require.NoError(t, err)
	assert.Equal(t, entity.UncategorizedName, stats.TopCategory)
}

func TestComputeStats_TopCategory_IgnoraProductosBorrados(t *testing.T) {
	// Línea cuyo producto ya no está en el catálogo: se ignora en el conteo.
	sales := []*entity.Sale{
		venta(0, "10", entity.LineItem{ProductID: 404, Quantity: 9, Price: decimal.New(1, 0)}),
	}
	uc := newDashboard(sales, nil, nil)

	stats, err := uc.ComputeStats(context.Background(), analytics.RangeToday)
	require.NoError(t, err)
	assert.Equal(t, "None", stats.TopCategory)
}
