package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solasiya/spazamanager/internal/application/dto"
	"github.com/solasiya/spazamanager/internal/domain"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

// OutOfStockPolicy decide qué pasa cuando una venta pide más unidades de las
// disponibles. El sistema histórico recortaba a cero sin avisar; esa conducta
// se conserva como opción explícita, pero el default rechaza la venta completa.
type OutOfStockPolicy string

const (
	// PolicyReject rechaza la venta con ErrInsufficientStock y revierte todo.
	PolicyReject OutOfStockPolicy = "reject"
	// PolicyClamp recorta la cantidad resultante a cero (conducta legada).
	PolicyClamp OutOfStockPolicy = "clamp"
)

// UseCase registra ventas y reposiciones de forma transaccional y expone las
// lecturas del ledger. Una venta/reposición solo tiene dos estados: pendiente
// (validándose) y confirmada (persistida con cantidades aplicadas); nunca se
// actualiza ni se borra.
type UseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	restockRepo repository.RestockRepository
	policy      OutOfStockPolicy
}

// NewUseCase construye el caso de uso. saleRepo y restockRepo son los
// adaptadores atados al pool (solo lecturas); las escrituras pasan por txRunner.
func NewUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, restockRepo repository.RestockRepository, policy OutOfStockPolicy) *UseCase {
	if policy != PolicyClamp {
		policy = PolicyReject
	}
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, restockRepo: restockRepo, policy: policy}
}

// validateItems valida las líneas antes de tocar cualquier estado: lista no
// vacía, cantidad ≥ 1 y precio ≥ 0. Devuelve el total recalculado.
func validateItems(items []dto.LineItemRequest) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity < 1 || it.Price.IsNegative() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total, nil
}

// checkTotal compara el total enviado por el cliente contra el recalculado.
// El valor del cliente nunca se persiste; solo sirve como verificación.
func checkTotal(client *decimal.Decimal, computed decimal.Decimal) error {
	if client != nil && !client.Equal(computed) {
		return domain.ErrTotalMismatch
	}
	return nil
}

func toLineItems(items []dto.LineItemRequest) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.LineItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return out
}

// RecordSale valida, persiste la venta y descuenta stock en UNA transacción.
// Cada producto se bloquea con SELECT FOR UPDATE, así dos ventas concurrentes
// sobre el mismo producto se serializan y nunca sobreventa ni cantidad < 0.
// Una línea con producto inexistente aborta todo con ErrConsistency.
func (uc *UseCase) RecordSale(ctx context.Context, userID int64, in dto.CreateSaleRequest) (*entity.Sale, error) {
	total, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(in.Total, total); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		Reference: uuid.New().String(),
		Date:      time.Now(),
		Total:     total,
		Items:     toLineItems(in.Items),
		UserID:    userID,
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.RestockRepository,
		productRepo repository.ProductRepository,
		_ repository.SupplierRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for _, item := range sale.Items {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrConsistency
			}
			newQty := product.Quantity - item.Quantity
			if newQty < 0 {
				if uc.policy == PolicyReject {
					return domain.ErrInsufficientStock
				}
				newQty = 0
			}
			if err := productRepo.UpdateQuantity(ctx, item.ProductID, newQty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// RecordRestock valida, persiste la reposición e incrementa stock en UNA
// transacción. Si viene supplierID, fija last_order_date del proveedor a la
// fecha de la reposición dentro de la misma transacción.
func (uc *UseCase) RecordRestock(ctx context.Context, userID int64, in dto.CreateRestockRequest) (*entity.Restock, error) {
	total, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(in.Total, total); err != nil {
		return nil, err
	}

	restock := &entity.Restock{
		Reference:  uuid.New().String(),
		Date:       time.Now(),
		SupplierID: in.SupplierID,
		Items:      toLineItems(in.Items),
		Total:      total,
		UserID:     userID,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		restockRepo repository.RestockRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		if in.SupplierID != nil {
			supplier, err := supplierRepo.GetByID(ctx, *in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrNotFound
			}
		}
		if err := restockRepo.Create(ctx, restock); err != nil {
			return err
		}
		for _, item := range restock.Items {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrConsistency
			}
			if err := productRepo.UpdateQuantity(ctx, item.ProductID, product.Quantity+item.Quantity); err != nil {
				return err
			}
		}
		if in.SupplierID != nil {
			if err := supplierRepo.RecordOrder(ctx, *in.SupplierID, restock.Date); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restock, nil
}

// GetSale obtiene una venta por id. ErrNotFound si no existe.
func (uc *UseCase) GetSale(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// GetRestock obtiene una reposición por id. ErrNotFound si no existe.
func (uc *UseCase) GetRestock(ctx context.Context, id int64) (*entity.Restock, error) {
	restock, err := uc.restockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restock == nil {
		return nil, domain.ErrNotFound
	}
	return restock, nil
}

// ListSales devuelve el ledger completo de ventas. El orden lo impone la capa
// de presentación; el repositorio entrega más recientes primero por comodidad.
func (uc *UseCase) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.List(ctx)
}

// ListRestocks devuelve el ledger completo de reposiciones.
func (uc *UseCase) ListRestocks(ctx context.Context) ([]*entity.Restock, error) {
	return uc.restockRepo.List(ctx)
}
