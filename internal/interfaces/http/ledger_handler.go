package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/solasiya/spazamanager/internal/application/dto"
	"github.com/solasiya/spazamanager/internal/application/ledger"
	"github.com/solasiya/spazamanager/internal/domain"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
	"github.com/solasiya/spazamanager/pkg/metrics"
)

// LedgerHandler maneja ventas y reposiciones: las dos operaciones que mueven
// stock y dejan rastro en el ledger.
type LedgerHandler struct {
	uc       *ledger.UseCase
	receipts ledger.ReceiptGenerator
	products repository.ProductRepository
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase, receipts ledger.ReceiptGenerator, products repository.ProductRepository) *LedgerHandler {
	return &LedgerHandler{uc: uc, receipts: receipts, products: products}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		Reference: s.Reference,
		Date:      s.Date,
		Total:     s.Total,
		Items:     s.Items,
		UserID:    s.UserID,
	}
}

func toRestockResponse(r *entity.Restock) dto.RestockResponse {
	return dto.RestockResponse{
		ID:         r.ID,
		Reference:  r.Reference,
		Date:       r.Date,
		SupplierID: r.SupplierID,
		Items:      r.Items,
		Total:      r.Total,
		UserID:     r.UserID,
	}
}

// CreateSale godoc
// @Summary      Registrar venta
// @Description  Inserta la venta y descuenta stock de todas las líneas en una sola transacción.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Failure      422   {object}  dto.ErrorResponse  "Producto inexistente en alguna línea"
// @Router       /api/sales [post]
func (h *LedgerHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RecordSale(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.SalesRejectedStock.Inc()
		}
		return respondError(c, err)
	}
	metrics.SalesRecorded.Inc()
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	sales, err := h.uc.ListSales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(out)
}

// GetSale godoc
// @Summary      Obtener venta por ID
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *LedgerHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	sale, err := h.uc.GetSale(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSaleResponse(sale))
}

// SaleReceipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *LedgerHandler) SaleReceipt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	sale, err := h.uc.GetSale(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	// El ledger guarda IDs, no nombres; los resolvemos al momento de imprimir.
	// Productos borrados quedan sin entrada y el generador pone un relleno.
	names := make(map[int64]string, len(sale.Items))
	for _, it := range sale.Items {
		if _, ok := names[it.ProductID]; ok {
			continue
		}
		p, err := h.products.GetByID(c.Context(), it.ProductID)
		if err != nil {
			return respondError(c, err)
		}
		if p != nil {
			names[it.ProductID] = p.Name
		}
	}

	pdf, err := h.receipts.GenerateSaleReceipt(c.Context(), sale, names)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="recibo-%s.pdf"`, sale.Reference))
	return c.Send(pdf)
}

// CreateRestock godoc
// @Summary      Registrar reposición
// @Description  Inserta la reposición, suma stock y actualiza la fecha de último pedido del proveedor en una sola transacción.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestockRequest  true  "Líneas de la reposición"
// @Success      201   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "Proveedor inexistente"
// @Failure      422   {object}  dto.ErrorResponse  "Producto inexistente en alguna línea"
// @Router       /api/restocks [post]
func (h *LedgerHandler) CreateRestock(c *fiber.Ctx) error {
	var in dto.CreateRestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	restock, err := h.uc.RecordRestock(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RestocksRecorded.Inc()
	return c.Status(fiber.StatusCreated).JSON(toRestockResponse(restock))
}

// GetRestock godoc
// @Summary      Obtener reposición por ID
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la reposición"
// @Success      200  {object}  dto.RestockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restocks/{id} [get]
func (h *LedgerHandler) GetRestock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	restock, err := h.uc.GetRestock(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRestockResponse(restock))
}

// ListRestocks godoc
// @Summary      Listar reposiciones
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RestockResponse
// @Router       /api/restocks [get]
func (h *LedgerHandler) ListRestocks(c *fiber.Ctx) error {
	restocks, err := h.uc.ListRestocks(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RestockResponse, 0, len(restocks))
	for _, r := range restocks {
		out = append(out, toRestockResponse(r))
	}
	return c.JSON(out)
}
