package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAlertThreshold umbral de stock bajo cuando el producto no define uno.
const DefaultAlertThreshold = 10

// Product representa un producto del catálogo de la tienda.
// Quantity nunca es negativa; se muta únicamente vía el ledger de transacciones.
type Product struct {
	ID             int64
	Name           string
	SKU            string // opcional
	CategoryID     *int64 // referencia débil: la categoría puede no existir ya
	Quantity       int
	AlertThreshold int             // 0 = usar DefaultAlertThreshold
	PurchasePrice  decimal.Decimal // costo de compra
	SellingPrice   decimal.Decimal // precio de venta
	ExpiryDate     *time.Time      // opcional
	SupplierID     *int64          // opcional
	CreatedAt      time.Time
}

// Threshold devuelve el umbral efectivo de alerta del producto.
func (p *Product) Threshold() int {
	if p.AlertThreshold > 0 {
		return p.AlertThreshold
	}
	return DefaultAlertThreshold
}
