package transport

import (
	"context"
	"net/http"
)

// Stats handlers all follow the same shape: compute one rollup, wrap it in a
// small named payload. Reads are open to every authenticated role.

// StatsTotalInventory handler
// @Summary Total inventory
// @Description Sum of all quantities across warehouses and stores
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/totalInventory [get]
func (s *RestHandler) StatsTotalInventory(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "total_inventory", s.StatsApp.TotalInventory)
}

// StatsWarehouseInventory handler
// @Summary Warehouse inventory
// @Description Sum of all quantities across warehouses only
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/warehouseInventory [get]
func (s *RestHandler) StatsWarehouseInventory(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "warehouse_inventory", s.StatsApp.WarehouseInventory)
}

// StatsStoreInventory handler
// @Summary Store inventory
// @Description Sum of all quantities across stores only
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/storeInventory [get]
func (s *RestHandler) StatsStoreInventory(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "store_inventory", s.StatsApp.StoreInventory)
}

// StatsCapacityUtilization handler
// @Summary Capacity utilization
// @Description Warehouse stock over warehouse capacity as a percentage
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]float64
// @Router /stats/capacityUtilization [get]
func (s *RestHandler) StatsCapacityUtilization(w http.ResponseWriter, r *http.Request) {
	utilization, err := s.StatsApp.CapacityUtilization(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]float64{"capacity_utilization": utilization})
}

// StatsLowStock handler
// @Summary Low stock count
// @Description Number of stock entries above zero but below the low-stock threshold
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/lowStock [get]
func (s *RestHandler) StatsLowStock(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "low_stock_count", s.StatsApp.LowStockCount)
}

// StatsOutOfStock handler
// @Summary Out of stock count
// @Description Number of stock entries at exactly zero
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/outOfStock [get]
func (s *RestHandler) StatsOutOfStock(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "out_of_stock_count", s.StatsApp.OutOfStockCount)
}

// StatsUniqueProducts handler
// @Summary Unique products
// @Description Number of distinct product names held anywhere
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/stock/unique [get]
func (s *RestHandler) StatsUniqueProducts(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "unique_products", s.StatsApp.UniqueProducts)
}

// StatsTopProduct handler
// @Summary Top product
// @Description Product with the highest total quantity across all locations
// @Tags Stats
// @Produce json
// @Success 200 {object} model.TopProduct
// @Router /stats/stock/top [get]
func (s *RestHandler) StatsTopProduct(w http.ResponseWriter, r *http.Request) {
	top, err := s.StatsApp.TopProduct(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, top)
}

// StatsSuppliersCount handler
// @Summary Suppliers count
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/suppliersCount [get]
func (s *RestHandler) StatsSuppliersCount(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "suppliers_count", s.StatsApp.SuppliersCount)
}

// StatsWarehousesCount handler
// @Summary Warehouses count
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/warehousesCount [get]
func (s *RestHandler) StatsWarehousesCount(w http.ResponseWriter, r *http.Request) {
	s.writeCount(w, r.Context(), "warehouses_count", s.StatsApp.WarehousesCount)
}

func (s *RestHandler) writeCount(w http.ResponseWriter, ctx context.Context, key string, fn func(context.Context) (int64, error)) {
	value, err := fn(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int64{key: value})
}
