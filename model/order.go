package model

import (
	"time"

	"github.com/muhammadheryan/supply-chain/constant"
)

// OrderItem is one ordered line. ApprovedQty stays nil until approval; the
// approval transition defaults it to RequestedQty when not supplied.
type OrderItem struct {
	ID           uint64 `db:"id" json:"-"`
	OrderID      uint64 `db:"order_id" json:"-"`
	Product      string `db:"product_name" json:"product_name"`
	RequestedQty int64  `db:"requested_qty" json:"requested_qty"`
	ApprovedQty  *int64 `db:"approved_qty" json:"approved_qty"`
	Unit         string `db:"unit" json:"unit"`
}

// OrderEntity is a replenishment order. Store, warehouse and supplier names
// are snapshotted at creation so later renames do not rewrite history.
type OrderEntity struct {
	ID              uint64                 `db:"id" json:"id"`
	OrderCode       string                 `db:"order_code" json:"order_code"`
	StoreID         uint64                 `db:"store_id" json:"store_id"`
	StoreName       string                 `db:"store_name" json:"store_name"`
	WarehouseID     uint64                 `db:"warehouse_id" json:"warehouse_id"`
	WarehouseName   string                 `db:"warehouse_name" json:"warehouse_name"`
	SupplierID      uint64                 `db:"supplier_id" json:"supplier_id"`
	SupplierName    string                 `db:"supplier_name" json:"supplier_name"`
	Status          constant.OrderStatus   `db:"status" json:"status"`
	Priority        constant.OrderPriority `db:"priority" json:"priority"`
	RequestedDate   time.Time              `db:"requested_date" json:"requested_date"`
	ApprovedDate    *time.Time             `db:"approved_date" json:"approved_date"`
	DispatchedDate  *time.Time             `db:"dispatched_date" json:"dispatched_date"`
	DeliveredDate   *time.Time             `db:"delivered_date" json:"delivered_date"`
	RequestedByID   uint64                 `db:"requested_by_id" json:"-"`
	RequestedByName string                 `db:"requested_by_name" json:"requested_by"`
	ApprovedByID    *uint64                `db:"approved_by_id" json:"-"`
	ApprovedByName  *string                `db:"approved_by_name" json:"approved_by"`
	DeliveryAgent   *string                `db:"delivery_agent" json:"delivery_agent"`
	Notes           string                 `db:"notes" json:"notes"`
	LastUpdated     time.Time              `db:"last_updated" json:"last_updated"`
	Items           []OrderItem            `db:"-" json:"items"`
}

type OrderItemRequest struct {
	ProductName  string `json:"product_name" validate:"required"`
	RequestedQty int64  `json:"requested_qty" validate:"required"`
}

type CreateOrderRequest struct {
	StoreID    uint64             `json:"store_id" validate:"required"`
	SupplierID uint64             `json:"supplier_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Priority   string             `json:"priority" validate:"required"`
	Notes      string             `json:"notes"`
}

type ApprovedItemRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	ApprovedQty int64  `json:"approved_qty" validate:"required,gt=0"`
}

// UpdateOrderRequest drives a status transition and/or patches mutable
// fields. ApprovedItems is only honored together with status=approved.
type UpdateOrderRequest struct {
	Status        string                `json:"status,omitempty"`
	ApprovedItems []ApprovedItemRequest `json:"approved_items,omitempty" validate:"omitempty,dive"`
	DeliveryAgent *string               `json:"delivery_agent,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
}

type OrderFilter struct {
	Status      string
	Priority    string
	StoreID     uint64
	WarehouseID uint64
}

type CreateOrderResponse struct {
	OrderID   uint64 `json:"order_id"`
	OrderCode string `json:"order_code"`
	Status    string `json:"status"`
}
