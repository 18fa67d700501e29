package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solasiya/spazamanager/internal/application/ledger"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
	apphttp "github.com/solasiya/spazamanager/internal/interfaces/http"
)

// Stubs mínimos: un ledger vacío. Solo se ejercitan las lecturas, así que el
// TxRunner y el generador de recibos no llegan a invocarse.

type emptySaleRepo struct{}

func (emptySaleRepo) Create(context.Context, *entity.Sale) error            { return nil }
func (emptySaleRepo) GetByID(context.Context, int64) (*entity.Sale, error)  { return nil, nil }
func (emptySaleRepo) List(context.Context) ([]*entity.Sale, error)          { return nil, nil }
func (emptySaleRepo) ListSince(context.Context, time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

type emptyRestockRepo struct{}

func (emptyRestockRepo) Create(context.Context, *entity.Restock) error { return nil }
func (emptyRestockRepo) GetByID(context.Context, int64) (*entity.Restock, error) {
	return nil, nil
}
func (emptyRestockRepo) List(context.Context) ([]*entity.Restock, error) { return nil, nil }

type noopTxRunner struct{}

func (noopTxRunner) Run(_ context.Context, _ func(
	repository.SaleRepository,
	repository.RestockRepository,
	repository.ProductRepository,
	repository.SupplierRepository,
) error) error {
	return nil
}

type noopProductRepo struct{}

func (noopProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (noopProductRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) GetForUpdate(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) Update(context.Context, *entity.Product) error    { return nil }
func (noopProductRepo) UpdateQuantity(context.Context, int64, int) error { return nil }
func (noopProductRepo) List(context.Context) ([]*entity.Product, error)  { return nil, nil }
func (noopProductRepo) Delete(context.Context, int64) error              { return nil }

type noopReceipts struct{}

func (noopReceipts) GenerateSaleReceipt(context.Context, *entity.Sale, map[int64]string) ([]byte, error) {
	return nil, nil
}

func buildLedgerApp() *fiber.App {
	uc := ledger.NewUseCase(noopTxRunner{}, emptySaleRepo{}, emptyRestockRepo{}, ledger.PolicyReject)
	handler := apphttp.NewLedgerHandler(uc, noopReceipts{}, noopProductRepo{})

	app := fiber.New()
	app.Get("/api/sales/:id", handler.GetSale)
	app.Get("/api/sales/:id/receipt", handler.SaleReceipt)
	app.Get("/api/restocks/:id", handler.GetRestock)
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

// Caso 1: Venta inexistente → HTTP 404, nunca un panic por venta nil.
func TestGetSale_IDDesconocido_Retorna404(t *testing.T) {
	app := buildLedgerApp()
	resp := getPath(t, app, "/api/sales/999")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"consultar una venta inexistente debe dar 404")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// Caso 2: Recibo de una venta inexistente → también 404.
func TestSaleReceipt_IDDesconocido_Retorna404(t *testing.T) {
	app := buildLedgerApp()
	resp := getPath(t, app, "/api/sales/999/receipt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Caso 3: Reposición inexistente → 404.
func TestGetRestock_IDDesconocido_Retorna404(t *testing.T) {
	app := buildLedgerApp()
	resp := getPath(t, app, "/api/restocks/999")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Caso 4: ID no numérico → 400, no 500.
func TestGetSale_IDInvalido_Retorna400(t *testing.T) {
	app := buildLedgerApp()
	resp := getPath(t, app, "/api/sales/abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
