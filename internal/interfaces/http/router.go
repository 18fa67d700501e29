package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/solasiya/spazamanager/internal/application/analytics"
	"github.com/solasiya/spazamanager/internal/application/auth"
	"github.com/solasiya/spazamanager/internal/application/ledger"
	"github.com/solasiya/spazamanager/internal/application/usecase"
	"github.com/solasiya/spazamanager/internal/domain/entity"
	"github.com/solasiya/spazamanager/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	LedgerUC    *ledger.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.UseCase
	Receipts    ledger.ReceiptGenerator
	ProductRepo repository.ProductRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// RBAC por grupo: escritura de catálogo para owner y stock_manager (borrado
// solo owner), reposiciones para owner y stock_manager, listado de usuarios
// solo owner. Ventas y lecturas: cualquier usuario autenticado. El superuser
// pasa por todas las puertas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manageCatalog := RequireRole(entity.RoleSuperuser, entity.RoleOwner, entity.RoleStockManager)
	ownerOnly := RequireRole(entity.RoleSuperuser, entity.RoleOwner)

	// Registro de usuarios: solo owner (y superuser) crean cuentas nuevas.
	protected.Post("/auth/register", ownerOnly, authHandler.Register)
	protected.Get("/users", ownerOnly, authHandler.ListUsers)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/expiring", productHandler.Expiring)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manageCatalog, productHandler.Create)
	products.Put("/:id", manageCatalog, productHandler.Update)
	products.Delete("/:id", ownerOnly, productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", manageCatalog, categoryHandler.Create)
	categories.Put("/:id", manageCatalog, categoryHandler.Update)
	categories.Delete("/:id", ownerOnly, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", manageCatalog, supplierHandler.Create)
	suppliers.Put("/:id", manageCatalog, supplierHandler.Update)
	suppliers.Delete("/:id", ownerOnly, supplierHandler.Delete)

	// Ledger: ventas para cualquier autenticado, reposiciones para quien
	// gestiona stock.
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Receipts, deps.ProductRepo)
	sales := protected.Group("/sales")
	sales.Post("/", ledgerHandler.CreateSale)
	sales.Get("/", ledgerHandler.ListSales)
	sales.Get("/:id", ledgerHandler.GetSale)
	sales.Get("/:id/receipt", ledgerHandler.SaleReceipt)

	restocks := protected.Group("/restocks")
	restocks.Post("/", manageCatalog, ledgerHandler.CreateRestock)
	restocks.Get("/", ledgerHandler.ListRestocks)
	restocks.Get("/:id", ledgerHandler.GetRestock)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
