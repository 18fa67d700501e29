package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solasiya/spazamanager/internal/application/dto"
	"github.com/solasiya/spazamanager/internal/application/usecase"
	"github.com/solasiya/spazamanager/internal/domain"
	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para los casos de uso del catálogo.
type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	r.products[id].Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductCreate_AsignaIDYUmbralPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Arroz 1kg",
		Quantity:      20,
		PurchasePrice: precio("10"),
		SellingPrice:  precio("14.50"),
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, entity.DefaultAlertThreshold, out.AlertThreshold,
		"sin umbral explícito se asigna el default")
}

func TestProductCreate_NombreVacio_ErrInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativo_ErrInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "X",
		SellingPrice: precio("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_NoExiste_ErrNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_MergeParcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Leche 1L",
		SKU:           "LCH-001",
		Quantity:      12,
		PurchasePrice: precio("8"),
		SellingPrice:  precio("11"),
	})
	require.NoError(t, err)

	// Solo cambia el precio de venta; el resto debe quedar intacto.
	nuevoPrecio := precio("12.50")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SellingPrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, "Leche 1L", out.Name)
	assert.Equal(t, "LCH-001", out.SKU)
	assert.Equal(t, 12, out.Quantity)
	assert.True(t, out.SellingPrice.Equal(nuevoPrecio))
}

func TestProductUpdate_PrecioVentaMenorAlCosto_SePermite(t *testing.T) {
	// El catálogo no exige sellingPrice ≥ purchasePrice: vender a pérdida es
	// una decisión del dueño, no un error de datos.
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Pan",
		PurchasePrice: precio("10"),
		SellingPrice:  precio("15"),
	})
	require.NoError(t, err)

	remate := precio("5")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SellingPrice: &remate,
	})
	require.NoError(t, err)
	assert.True(t, out.SellingPrice.Equal(remate))
}

func TestProductUpdate_NombreVacio_ErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Pan"})
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoExiste_ErrNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	nombre := "X"
	_, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_NoExiste_ErrNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Existe_Borra(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Pan"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductLowStock_RespetaOverride(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	for _, q := range []int{1, 3, 30} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name: "p", Quantity: q, AlertThreshold: 5,
		})
		require.NoError(t, err)
	}

	sinOverride, err := uc.LowStock(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, sinOverride, 2)

	override := 2
	conOverride, err := uc.LowStock(context.Background(), &override)
	require.NoError(t, err)
	assert.Len(t, conOverride, 1)
}

func TestProductExpiring_DiasNoPositivos_UsaDefault(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	pronto := time.Now().AddDate(0, 0, 3)
	lejos := time.Now().AddDate(0, 0, 90)
	for _, exp := range []*time.Time{&pronto, &lejos, nil} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name: "p", Quantity: 1, ExpiryDate: exp,
		})
		require.NoError(t, err)
	}

	out, err := uc.Expiring(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 1, "con days ≤ 0 aplica la ventana por defecto de 7 días")
}
