package repository

import (
	"context"
	"time"

	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el ledger de ventas.
// Solo creación y lectura: las ventas son inmutables una vez confirmadas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListSince devuelve las ventas con fecha ≥ since (para el dashboard).
	ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
}

// RestockRepository define el puerto de persistencia para el ledger de
// reposiciones. Igual que las ventas: append-only.
type RestockRepository interface {
	Create(ctx context.Context, restock *entity.Restock) error
	GetByID(ctx context.Context, id int64) (*entity.Restock, error)
	List(ctx context.Context) ([]*entity.Restock, error)
}
