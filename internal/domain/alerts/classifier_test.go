package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solasiya/spazamanager/internal/domain/alerts"
	"github.com/solasiya/spazamanager/internal/domain/entity"
)

func producto(qty, threshold int) *entity.Product {
	return &entity.Product{Name: "p", Quantity: qty, AlertThreshold: threshold}
}

func conVencimiento(qty int, expiry time.Time) *entity.Product {
	return &entity.Product{Name: "p", Quantity: qty, ExpiryDate: &expiry}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificadores unitarios
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLowStock_Fronteras(t *testing.T) {
	// Sin stock no es stock bajo; el umbral es inclusivo.
	assert.False(t, alerts.IsLowStock(producto(0, 5)), "cantidad 0 pertenece solo a sin-stock")
	assert.True(t, alerts.IsLowStock(producto(1, 5)))
	assert.True(t, alerts.IsLowStock(producto(5, 5)), "cantidad == umbral cuenta como stock bajo")
	assert.False(t, alerts.IsLowStock(producto(6, 5)))
}

func TestIsLowStock_UmbralPorDefecto(t *testing.T) {
	// AlertThreshold 0 ⇒ se aplica el umbral por defecto de 10.
	assert.True(t, alerts.IsLowStock(producto(10, 0)))
	assert.False(t, alerts.IsLowStock(producto(11, 0)))
}

func TestIsOutOfStock(t *testing.T) {
	assert.True(t, alerts.IsOutOfStock(producto(0, 5)))
	assert.False(t, alerts.IsOutOfStock(producto(1, 5)))
}

func TestIsExpiringSoon_Fronteras(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.False(t, alerts.IsExpiringSoon(producto(5, 3), now, 7), "sin fecha de vencimiento nunca vence")
	assert.False(t, alerts.IsExpiringSoon(conVencimiento(5, now.AddDate(0, 0, -1)), now, 7), "ya vencido queda fuera")
	assert.False(t, alerts.IsExpiringSoon(conVencimiento(5, now), now, 7), "vencer exactamente ahora queda fuera")
	assert.True(t, alerts.IsExpiringSoon(conVencimiento(5, now.Add(time.Hour)), now, 7))
	assert.True(t, alerts.IsExpiringSoon(conVencimiento(5, now.AddDate(0, 0, 7)), now, 7), "el límite superior es inclusivo")
	assert.False(t, alerts.IsExpiringSoon(conVencimiento(5, now.AddDate(0, 0, 7).Add(time.Second)), now, 7))
}

func TestClasificaciones_Independientes(t *testing.T) {
	// Un producto puede estar bajo de stock y próximo a vencer a la vez.
	now := time.Now()
	expiry := now.AddDate(0, 0, 2)
	p := &entity.Product{Quantity: 3, AlertThreshold: 5, ExpiryDate: &expiry}

	assert.True(t, alerts.IsLowStock(p))
	assert.True(t, alerts.IsExpiringSoon(p, now, 7))
	assert.False(t, alerts.IsOutOfStock(p))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros sobre el catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_SinOverride(t *testing.T) {
	products := []*entity.Product{
		producto(0, 5),  // incluido: la consulta histórica cuenta cantidad ≤ umbral
		producto(3, 5),  // incluido
		producto(5, 5),  // incluido (umbral inclusivo)
		producto(9, 5),  // excluido
		producto(10, 0), // incluido (umbral por defecto 10)
	}
	out := alerts.LowStock(products, nil)
	assert.Len(t, out, 4)
}

func TestLowStock_ConOverride(t *testing.T) {
	products := []*entity.Product{
		producto(3, 50), // su umbral propio lo incluiría; el override manda
		producto(2, 1),
		producto(1, 1),
		producto(8, 1),
	}
	override := 2
	out := alerts.LowStock(products, &override)
	assert.Len(t, out, 2, "solo cantidades ≤ 2 con el umbral global")
}

func TestLowStock_EsIdempotente(t *testing.T) {
	// Clasificar dos veces el mismo catálogo da el mismo resultado: la
	// clasificación es función pura del estado, no registra eventos.
	products := []*entity.Product{producto(1, 5), producto(20, 5)}
	primera := alerts.LowStock(products, nil)
	segunda := alerts.LowStock(products, nil)
	assert.Equal(t, primera, segunda)
}

func TestExpiringSoon_Filtra(t *testing.T) {
	now := time.Now()
	products := []*entity.Product{
		conVencimiento(5, now.AddDate(0, 0, 3)),
		conVencimiento(5, now.AddDate(0, 0, 30)),
		conVencimiento(5, now.AddDate(0, 0, -2)),
		producto(5, 3),
	}
	out := alerts.ExpiringSoon(products, now, alerts.DefaultExpiryWindowDays)
	assert.Len(t, out, 1)
}

func TestOutOfStock_Filtra(t *testing.T) {
	products := []*entity.Product{producto(0, 5), producto(1, 5), producto(0, 0)}
	out := alerts.OutOfStock(products)
	assert.Len(t, out, 2)
}
