package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem una línea (producto, cantidad, precio unitario) dentro de una venta
// o reposición. ProductID es un id numérico que puede dejar de resolver si el
// producto se borra después; el ledger histórico no se reescribe.
type LineItem struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal devuelve price × quantity de la línea.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Sale representa una venta ya confirmada. Inmutable: el ledger es append-only,
// no existen operaciones de actualización ni cancelación.
type Sale struct {
	ID        int64
	Reference string // UUID para recibos y trazas
	Date      time.Time
	Total     decimal.Decimal
	Items     []LineItem
	UserID    int64
}

// Restock representa una reposición de stock confirmada. Inmutable.
type Restock struct {
	ID         int64
	Reference  string
	Date       time.Time
	SupplierID *int64
	Items      []LineItem
	Total      decimal.Decimal
	UserID     int64
}
