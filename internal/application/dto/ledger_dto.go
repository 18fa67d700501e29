package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// LineItemRequest una línea dentro de una venta o reposición.
type LineItemRequest struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest cuerpo de POST /api/sales. Total es opcional: el servidor
// siempre recalcula la suma de las líneas y, si el cliente envió un total,
// exige que coincida.
type CreateSaleRequest struct {
	Items []LineItemRequest `json:"items"`
	Total *decimal.Decimal  `json:"total"`
}

// CreateRestockRequest cuerpo de POST /api/restocks.
type CreateRestockRequest struct {
	SupplierID *int64            `json:"supplierId"`
	Items      []LineItemRequest `json:"items"`
	Total      *decimal.Decimal  `json:"total"`
}

// SaleResponse representación HTTP de una venta confirmada.
type SaleResponse struct {
	ID        int64             `json:"id"`
	Reference string            `json:"reference"`
	Date      time.Time         `json:"date"`
	Total     decimal.Decimal   `json:"total"`
	Items     []entity.LineItem `json:"items"`
	UserID    int64             `json:"userId"`
}

// RestockResponse representación HTTP de una reposición confirmada.
type RestockResponse struct {
	ID         int64             `json:"id"`
	Reference  string            `json:"reference"`
	Date       time.Time         `json:"date"`
	SupplierID *int64            `json:"supplierId"`
	Items      []entity.LineItem `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	UserID     int64             `json:"userId"`
}
