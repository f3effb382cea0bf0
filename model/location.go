package model

import (
	"time"

	"github.com/muhammadheryan/supply-chain/constant"
)

// LocationEntity is a stock-holding location: a warehouse, or a store that
// replenishes from exactly one warehouse (WarehouseID set for stores only).
type LocationEntity struct {
	ID          uint64                `db:"id" json:"id"`
	Code        string                `db:"code" json:"code"`
	Type        constant.LocationType `db:"loc_type" json:"type"`
	Name        string                `db:"name" json:"name"`
	Address     string                `db:"address" json:"address"`
	Capacity    *int64                `db:"capacity" json:"capacity,omitempty"`
	Manager     string                `db:"manager" json:"manager"`
	Phone       string                `db:"phone" json:"phone"`
	WarehouseID *uint64               `db:"warehouse_id" json:"warehouse_id,omitempty"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

type WarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Address  string `json:"location" validate:"required"`
	Capacity int64  `json:"capacity" validate:"gte=0"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type StoreRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Address     string `json:"location" validate:"required"`
	Manager     string `json:"manager"`
	Phone       string `json:"phone" validate:"omitempty,min=7,max=20"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
}

// LocationUpdateRequest patches a location; nil fields are left untouched.
type LocationUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Address  *string `json:"location,omitempty"`
	Capacity *int64  `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Manager  *string `json:"manager,omitempty"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}
