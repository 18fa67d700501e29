package usecase

import (
	"context"
	"time"

	"github.com/solasiya/spazamanager/internal/application/dto"
	"github.com/solasiya/spazamanager/internal/domain"
	"github.com/solasiya/spazamanager/internal/domain/alerts"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos más las consultas
// de alerta (stock bajo, próximos a vencer). Quantity solo se muta aquí en el
// alta y en la edición directa; las ventas/reposiciones pasan por el ledger.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto nuevo. Nombre obligatorio, cantidad y
// precios no negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.AlertThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	threshold := in.AlertThreshold
	if threshold == 0 {
		threshold = entity.DefaultAlertThreshold
	}
	product := &entity.Product{
		Name:           in.Name,
		SKU:            in.SKU,
		CategoryID:     in.CategoryID,
		Quantity:       in.Quantity,
		AlertThreshold: threshold,
		PurchasePrice:  in.PurchasePrice,
		SellingPrice:   in.SellingPrice,
		ExpiryDate:     in.ExpiryDate,
		SupplierID:     in.SupplierID,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica un merge parcial de los campos presentes. No valida coherencia
// cruzada entre campos (por ejemplo precio de venta vs. costo): es la conducta
// esperada del catálogo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.AlertThreshold != nil {
		if *in.AlertThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.AlertThreshold = *in.AlertThreshold
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Delete borra el producto (hard delete). Las líneas históricas del ledger que
// lo referencien quedan intactas, con un id que ya no resuelve.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// LowStock devuelve los productos con cantidad ≤ umbral. Con override nil cada
// producto usa su propio umbral (default 10); con override se aplica global.
func (uc *ProductUseCase) LowStock(ctx context.Context, override *int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(alerts.LowStock(list, override)), nil
}

// Expiring devuelve los productos que vencen dentro de days días (ya vencidos
// excluidos).
func (uc *ProductUseCase) Expiring(ctx context.Context, days int) ([]dto.ProductResponse, error) {
	if days <= 0 {
		days = alerts.DefaultExpiryWindowDays
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(alerts.ExpiringSoon(list, time.Now(), days)), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		CategoryID:     p.CategoryID,
		Quantity:       p.Quantity,
		AlertThreshold: p.AlertThreshold,
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		ExpiryDate:     p.ExpiryDate,
		SupplierID:     p.SupplierID,
		CreatedAt:      p.CreatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
