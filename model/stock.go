package model

import "github.com/muhammadheryan/supply-chain/constant"

// StockItem is one row of a location's stock map. Quantity never goes
// negative; every mutation passes through the stock application layer.
type StockItem struct {
	ID         uint64 `db:"id" json:"-"`
	LocationID uint64 `db:"location_id" json:"-"`
	Product    string `db:"product_name" json:"product_name"`
	Qty        int64  `db:"qty" json:"qty"`
	Unit       string `db:"unit" json:"unit"`
}

// StockEntry is the API shape of a single stock-map value.
type StockEntry struct {
	Qty  int64  `json:"qty"`
	Unit string `json:"unit"`
}

type AddStockRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required,min=2"`
	QtyAdded    int64  `json:"qty_added" validate:"required,gt=0"`
	Unit        string `json:"unit" validate:"required,alpha,min=2,max=10"`
	Notes       string `json:"notes"`
}

// ApplyDeltaRequest mutates one product quantity by a signed amount. When
// LocationType is set the mutation is rejected unless the location matches,
// so warehouse-scoped callers cannot touch store stock by id.
type ApplyDeltaRequest struct {
	LocationID   uint64
	LocationType constant.LocationType
	Product      string
	Delta        int64
	Unit         string
	Reason       constant.StockReason
	Notes        string
}

type ApplyDeltaResult struct {
	Product     string `json:"product"`
	PreviousQty int64  `json:"previous_qty"`
	NewQty      int64  `json:"new_qty"`
}

type TopProduct struct {
	ProductName  string `json:"product_name"`
	AvailableQty int64  `json:"available_qty"`
}

type LocationStockResponse struct {
	LocationID   uint64                `json:"location_id"`
	LocationName string                `json:"location_name"`
	Stock        map[string]StockEntry `json:"stock"`
}
