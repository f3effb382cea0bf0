package constant

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	UserNameKey ContextKey = "user_name"
	UserRoleKey ContextKey = "user_role"
)

// User roles. Role checks happen in the transport layer; application code
// only records who acted.
const (
	RoleAdmin            = "admin"
	RoleWarehouseManager = "warehouse_manager"
	RoleStoreManager     = "store_manager"
	RoleViewer           = "viewer"
)
