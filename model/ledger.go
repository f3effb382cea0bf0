package model

import (
	"time"

	"github.com/muhammadheryan/supply-chain/constant"
)

// StockTransaction is an immutable ledger record of one stock mutation.
// Rows are only ever appended; the repository exposes no update or delete.
type StockTransaction struct {
	ID           uint64               `db:"id" json:"id"`
	LocationID   uint64               `db:"location_id" json:"location_id"`
	LocationName string               `db:"location_name" json:"location_name"`
	Product      string               `db:"product_name" json:"product_name"`
	DeltaQty     int64                `db:"delta_qty" json:"delta_qty"`
	Unit         string               `db:"unit" json:"unit"`
	PreviousQty  int64                `db:"previous_qty" json:"previous_qty"`
	NewQty       int64                `db:"new_qty" json:"new_qty"`
	Reason       constant.StockReason `db:"reason" json:"reason"`
	ActorID      uint64               `db:"actor_id" json:"actor_id"`
	ActorName    string               `db:"actor_name" json:"actor_name"`
	Notes        string               `db:"notes" json:"notes"`
	CreatedAt    time.Time            `db:"created_at" json:"date"`
}

// LedgerFilter narrows a ledger query; zero values mean no filtering.
type LedgerFilter struct {
	LocationID uint64
	Product    string
	From       *time.Time
	To         *time.Time
}
