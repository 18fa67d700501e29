package entity

import "time"

// Supplier representa un proveedor de la tienda.
// LastOrderDate se actualiza como efecto secundario de registrar una reposición.
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Categories    []string // etiquetas por nombre de categoría
	LastOrderDate *time.Time
}
