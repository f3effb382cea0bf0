package stats_test

import (
	"context"
	"testing"

	appstats "github.com/muhammadheryan/supply-chain/application/stats"
	appstock "github.com/muhammadheryan/supply-chain/application/stock"
	"github.com/muhammadheryan/supply-chain/constant"
	directorymocks "github.com/muhammadheryan/supply-chain/mocks/repository/directory"
	"github.com/muhammadheryan/supply-chain/model"
)

// fakeStockApp serves a fixed set of locations to ForEachLocation; the other
// StockApp methods are never called by the aggregator.
type fakeStockApp struct {
	appstock.StockApp
	locations []fakeLocation
}

type fakeLocation struct {
	loc   model.LocationEntity
	stock map[string]model.StockEntry
}

func (f *fakeStockApp) ForEachLocation(ctx context.Context, fn func(loc *model.LocationEntity, stock map[string]model.StockEntry) error) error {
	for i := range f.locations {
		if err := fn(&f.locations[i].loc, f.locations[i].stock); err != nil {
			return err
		}
	}
	return nil
}

func capacity(v int64) *int64 { return &v }

func twoWarehouses() *fakeStockApp {
	return &fakeStockApp{locations: []fakeLocation{
		{
			loc: model.LocationEntity{ID: 1, Type: constant.LocationTypeWarehouse, Name: "A", Capacity: capacity(100)},
			stock: map[string]model.StockEntry{
				"widgets": {Qty: 8, Unit: "pcs"},
				"gadgets": {Qty: 0, Unit: "pcs"},
			},
		},
		{
			loc: model.LocationEntity{ID: 2, Type: constant.LocationTypeWarehouse, Name: "B", Capacity: capacity(60)},
			stock: map[string]model.StockEntry{
				"widgets": {Qty: 12, Unit: "pcs"},
			},
		},
	}}
}

func TestStatsApp_InventoryRollups(t *testing.T) {
	stockApp := twoWarehouses()
	// add a store holding a few widgets to exercise the warehouse/store split
	stockApp.locations = append(stockApp.locations, fakeLocation{
		loc:   model.LocationEntity{ID: 3, Type: constant.LocationTypeStore, Name: "C"},
		stock: map[string]model.StockEntry{"widgets": {Qty: 5, Unit: "pcs"}},
	})

	app := appstats.NewStatsApp(stockApp, directorymocks.NewDirectoryRepository(t))
	ctx := context.Background()

	total, err := app.TotalInventory(ctx)
	if err != nil || total != 25 {
		t.Fatalf("TotalInventory() = %d, %v, want 25", total, err)
	}

	warehouse, err := app.WarehouseInventory(ctx)
	if err != nil || warehouse != 20 {
		t.Fatalf("WarehouseInventory() = %d, %v, want 20", warehouse, err)
	}

	store, err := app.StoreInventory(ctx)
	if err != nil || store != 5 {
		t.Fatalf("StoreInventory() = %d, %v, want 5", store, err)
	}
}

func TestStatsApp_CapacityUtilization(t *testing.T) {
	app := appstats.NewStatsApp(twoWarehouses(), directorymocks.NewDirectoryRepository(t))

	// 20 units in 160 capacity = 12.5%
	utilization, err := app.CapacityUtilization(context.Background())
	if err != nil {
		t.Fatalf("CapacityUtilization() error = %v", err)
	}
	if utilization != 12.5 {
		t.Fatalf("CapacityUtilization() = %v, want 12.5", utilization)
	}
}

func TestStatsApp_CapacityUtilization_ZeroCapacity(t *testing.T) {
	stockApp := &fakeStockApp{locations: []fakeLocation{
		{
			loc:   model.LocationEntity{ID: 1, Type: constant.LocationTypeWarehouse, Name: "A"},
			stock: map[string]model.StockEntry{"widgets": {Qty: 8, Unit: "pcs"}},
		},
	}}
	app := appstats.NewStatsApp(stockApp, directorymocks.NewDirectoryRepository(t))

	utilization, err := app.CapacityUtilization(context.Background())
	if err != nil || utilization != 0 {
		t.Fatalf("CapacityUtilization() = %v, %v, want 0 with no capacity", utilization, err)
	}
}

func TestStatsApp_StockHealthCounts(t *testing.T) {
	app := appstats.NewStatsApp(twoWarehouses(), directorymocks.NewDirectoryRepository(t))
	ctx := context.Background()

	// widgets in A sit at 8, inside the low band; gadgets in A are out;
	// widgets in B at 12 are healthy.
	low, err := app.LowStockCount(ctx)
	if err != nil || low != 1 {
		t.Fatalf("LowStockCount() = %d, %v, want 1", low, err)
	}

	out, err := app.OutOfStockCount(ctx)
	if err != nil || out != 1 {
		t.Fatalf("OutOfStockCount() = %d, %v, want 1", out, err)
	}

	unique, err := app.UniqueProducts(ctx)
	if err != nil || unique != 2 {
		t.Fatalf("UniqueProducts() = %d, %v, want 2", unique, err)
	}
}

func TestStatsApp_TopProduct(t *testing.T) {
	app := appstats.NewStatsApp(twoWarehouses(), directorymocks.NewDirectoryRepository(t))

	top, err := app.TopProduct(context.Background())
	if err != nil {
		t.Fatalf("TopProduct() error = %v", err)
	}
	if top == nil || top.ProductName != "widgets" || top.AvailableQty != 20 {
		t.Fatalf("TopProduct() = %+v, want widgets with 20", top)
	}
}

func TestStatsApp_TopProduct_TieBreak(t *testing.T) {
	// Equal totals within one location: the name-ordered scan makes the
	// winner stable across runs instead of following map iteration.
	stockApp := &fakeStockApp{locations: []fakeLocation{
		{
			loc: model.LocationEntity{ID: 1, Type: constant.LocationTypeWarehouse, Name: "A"},
			stock: map[string]model.StockEntry{
				"zippers": {Qty: 5, Unit: "pcs"},
				"anvils":  {Qty: 5, Unit: "pcs"},
				"bolts":   {Qty: 5, Unit: "pcs"},
			},
		},
	}}
	app := appstats.NewStatsApp(stockApp, directorymocks.NewDirectoryRepository(t))

	for i := 0; i < 10; i++ {
		top, err := app.TopProduct(context.Background())
		if err != nil {
			t.Fatalf("TopProduct() error = %v", err)
		}
		if top == nil || top.ProductName != "anvils" || top.AvailableQty != 5 {
			t.Fatalf("TopProduct() = %+v, want anvils with 5", top)
		}
	}
}

func TestStatsApp_TopProduct_Empty(t *testing.T) {
	app := appstats.NewStatsApp(&fakeStockApp{}, directorymocks.NewDirectoryRepository(t))

	top, err := app.TopProduct(context.Background())
	if err != nil {
		t.Fatalf("TopProduct() error = %v", err)
	}
	if top != nil {
		t.Fatalf("TopProduct() = %+v, want nil on empty stock", top)
	}
}

func TestStatsApp_DirectoryCounts(t *testing.T) {
	directoryRepo := directorymocks.NewDirectoryRepository(t)
	directoryRepo.On("CountSuppliers", context.Background()).Return(int64(4), nil).Once()
	directoryRepo.On("CountLocations", context.Background(), constant.LocationTypeWarehouse).Return(int64(2), nil).Once()

	app := appstats.NewStatsApp(&fakeStockApp{}, directoryRepo)

	suppliers, err := app.SuppliersCount(context.Background())
	if err != nil || suppliers != 4 {
		t.Fatalf("SuppliersCount() = %d, %v, want 4", suppliers, err)
	}

	warehouses, err := app.WarehousesCount(context.Background())
	if err != nil || warehouses != 2 {
		t.Fatalf("WarehousesCount() = %d, %v, want 2", warehouses, err)
	}
}
