package repository

import (
	"context"
	"time"

	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context) ([]*entity.Supplier, error)
	Delete(ctx context.Context, id int64) error
	// RecordOrder fija last_order_date. Lo invoca únicamente el ledger al
	// registrar una reposición.
	RecordOrder(ctx context.Context, supplierID int64, when time.Time) error
}
