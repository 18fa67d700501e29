package entity

// Roles de usuario. El rol viaja en el JWT para que el middleware RBAC
// decida sin consultar la DB.
const (
	RoleSuperuser    = "superuser"
	RoleOwner        = "owner"
	RoleSupervisor   = "supervisor"
	RoleCashier      = "cashier"
	RoleStockManager = "stock_manager"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         string
}
