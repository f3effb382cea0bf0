package constant

type StockReason string

const (
	StockReasonAdd            StockReason = "add"
	StockReasonOrderDeduction StockReason = "order-deduction"
	StockReasonAdjustment     StockReason = "adjustment"
)

// LowStockThreshold marks products that are running out: a quantity strictly
// between zero and this value counts as low stock.
const LowStockThreshold = 10

type LocationType string

const (
	LocationTypeWarehouse LocationType = "warehouse"
	LocationTypeStore     LocationType = "store"
)

// Sequence names used for human-readable code generation.
const (
	SequenceOrder     = "order"
	SequenceWarehouse = "warehouse"
	SequenceStore     = "store"
	SequenceSupplier  = "supplier"
)

// Code prefixes, e.g. ORD-001, WH-001.
var SequenceCodePrefix = map[string]string{
	SequenceOrder:     "ORD",
	SequenceWarehouse: "WH",
	SequenceStore:     "ST",
	SequenceSupplier:  "SUP",
}
