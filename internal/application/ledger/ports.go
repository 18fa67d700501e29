package ledger

import (
	"context"

	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fila del ledger y todas las
// actualizaciones de cantidad se confirmen como una sola unidad atómica: si
// una línea falla, no queda ni la venta ni ningún ajuste parcial de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		restockRepo repository.RestockRepository,
		productRepo repository.ProductRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}

// ReceiptGenerator produce el recibo imprimible de una venta confirmada.
// names resuelve productID → nombre; los productos ya borrados del catálogo
// llegan sin entrada y el generador usa un nombre de relleno.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, names map[int64]string) ([]byte, error)
}
