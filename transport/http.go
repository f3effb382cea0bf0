package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	directoryapp "github.com/muhammadheryan/supply-chain/application/directory"
	orderapp "github.com/muhammadheryan/supply-chain/application/order"
	statsapp "github.com/muhammadheryan/supply-chain/application/stats"
	stockapp "github.com/muhammadheryan/supply-chain/application/stock"
	userapp "github.com/muhammadheryan/supply-chain/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	OrderApp     orderapp.OrderApp
	StockApp     stockapp.StockApp
	StatsApp     statsapp.StatsApp
	DirectoryApp directoryapp.DirectoryApp
}

func NewTransport(userApp userapp.UserApp, orderApp orderapp.OrderApp, stockApp stockapp.StockApp, statsApp statsapp.StatsApp, directoryApp directoryapp.DirectoryApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      userApp,
		OrderApp:     orderApp,
		StockApp:     stockApp,
		StatsApp:     statsApp,
		DirectoryApp: directoryApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Orders
	router.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id:[0-9]+}", rh.UpdateOrder).Methods(http.MethodPut)

	// Stock; the transactions route must be registered before the
	// {locationID} route or mux would never reach it.
	router.HandleFunc("/stock", rh.AddStock).Methods(http.MethodPost)
	router.HandleFunc("/stock/transactions", rh.ListStockTransactions).Methods(http.MethodGet)
	router.HandleFunc("/stock/{locationID:[0-9]+}", rh.GetLocationStock).Methods(http.MethodGet)

	// Stats
	router.HandleFunc("/stats/totalInventory", rh.StatsTotalInventory).Methods(http.MethodGet)
	router.HandleFunc("/stats/warehouseInventory", rh.StatsWarehouseInventory).Methods(http.MethodGet)
	router.HandleFunc("/stats/storeInventory", rh.StatsStoreInventory).Methods(http.MethodGet)
	router.HandleFunc("/stats/capacityUtilization", rh.StatsCapacityUtilization).Methods(http.MethodGet)
	router.HandleFunc("/stats/lowStock", rh.StatsLowStock).Methods(http.MethodGet)
	router.HandleFunc("/stats/outOfStock", rh.StatsOutOfStock).Methods(http.MethodGet)
	router.HandleFunc("/stats/stock/unique", rh.StatsUniqueProducts).Methods(http.MethodGet)
	router.HandleFunc("/stats/stock/top", rh.StatsTopProduct).Methods(http.MethodGet)
	router.HandleFunc("/stats/suppliersCount", rh.StatsSuppliersCount).Methods(http.MethodGet)
	router.HandleFunc("/stats/warehousesCount", rh.StatsWarehousesCount).Methods(http.MethodGet)

	// Directory CRUD
	router.HandleFunc("/suppliers", rh.CreateSupplier).Methods(http.MethodPost)
	router.HandleFunc("/suppliers", rh.ListSuppliers).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/{id:[0-9]+}", rh.GetSupplier).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/{id:[0-9]+}", rh.UpdateSupplier).Methods(http.MethodPut)
	router.HandleFunc("/suppliers/{id:[0-9]+}", rh.DeleteSupplier).Methods(http.MethodDelete)

	router.HandleFunc("/warehouses", rh.CreateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	router.HandleFunc("/warehouses/{id:[0-9]+}", rh.GetWarehouse).Methods(http.MethodGet)
	router.HandleFunc("/warehouses/{id:[0-9]+}", rh.UpdateWarehouse).Methods(http.MethodPut)
	router.HandleFunc("/warehouses/{id:[0-9]+}", rh.DeleteWarehouse).Methods(http.MethodDelete)

	router.HandleFunc("/stores", rh.CreateStore).Methods(http.MethodPost)
	router.HandleFunc("/stores", rh.ListStores).Methods(http.MethodGet)
	router.HandleFunc("/stores/{id:[0-9]+}", rh.GetStore).Methods(http.MethodGet)
	router.HandleFunc("/stores/{id:[0-9]+}", rh.UpdateStore).Methods(http.MethodPut)
	router.HandleFunc("/stores/{id:[0-9]+}", rh.DeleteStore).Methods(http.MethodDelete)

	// Internal routes, API-key gated, called by the expiration consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/{id:[0-9]+}/expire", rh.ExpireOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return router
}
