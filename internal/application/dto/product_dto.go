package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	CategoryID     *int64          `json:"categoryId"`
	Quantity       int             `json:"quantity"`
	AlertThreshold int             `json:"alertThreshold"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	ExpiryDate     *time.Time      `json:"expiryDate"`
	SupplierID     *int64          `json:"supplierId"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. Campos opcionales:
// solo los presentes se aplican (merge parcial). No se valida coherencia entre
// precios (sellingPrice ≥ purchasePrice no se exige, a propósito).
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	SKU            *string          `json:"sku"`
	CategoryID     *int64           `json:"categoryId"`
	Quantity       *int             `json:"quantity"`
	AlertThreshold *int             `json:"alertThreshold"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	ExpiryDate     *time.Time       `json:"expiryDate"`
	SupplierID     *int64           `json:"supplierId"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku,omitempty"`
	CategoryID     *int64          `json:"categoryId"`
	Quantity       int             `json:"quantity"`
	AlertThreshold int             `json:"alertThreshold"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	ExpiryDate     *time.Time      `json:"expiryDate,omitempty"`
	SupplierID     *int64          `json:"supplierId"`
	CreatedAt      time.Time       `json:"createdAt"`
}
