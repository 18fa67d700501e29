package dto

import "time"

// CreateSupplierRequest cuerpo de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string   `json:"name"`
	ContactPerson string   `json:"contactPerson"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Categories    []string `json:"categories"`
}

// UpdateSupplierRequest cuerpo de PUT /api/suppliers/:id (merge parcial).
type UpdateSupplierRequest struct {
	Name          *string   `json:"name"`
	ContactPerson *string   `json:"contactPerson"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Categories    *[]string `json:"categories"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	Categories    []string   `json:"categories"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
}
