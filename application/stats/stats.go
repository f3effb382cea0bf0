package stats

import (
	"context"
	"math"
	"sort"

	stockapp "github.com/muhammadheryan/supply-chain/application/stock"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	directoryrepo "github.com/muhammadheryan/supply-chain/repository/directory"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
)

// StatsApp computes read-only rollups by scanning current stock state. Every
// call re-scans; results reflect state as of the scan, nothing is cached.
type StatsApp interface {
	TotalInventory(ctx context.Context) (int64, error)
	WarehouseInventory(ctx context.Context) (int64, error)
	StoreInventory(ctx context.Context) (int64, error)
	CapacityUtilization(ctx context.Context) (float64, error)
	LowStockCount(ctx context.Context) (int64, error)
	OutOfStockCount(ctx context.Context) (int64, error)
	UniqueProducts(ctx context.Context) (int64, error)
	TopProduct(ctx context.Context) (*model.TopProduct, error)
	SuppliersCount(ctx context.Context) (int64, error)
	WarehousesCount(ctx context.Context) (int64, error)
}

type statsAppImpl struct {
	stockApp      stockapp.StockApp
	directoryRepo directoryrepo.DirectoryRepository
}

func NewStatsApp(stockApp stockapp.StockApp, directoryRepo directoryrepo.DirectoryRepository) StatsApp {
	return &statsAppImpl{stockApp: stockApp, directoryRepo: directoryRepo}
}

func (s *statsAppImpl) sumInventory(ctx context.Context, locType constant.LocationType) (int64, error) {
	var total int64
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		if locType != "" && loc.Type != locType {
			return nil
		}
		for _, entry := range stock {
			total += entry.Qty
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *statsAppImpl) TotalInventory(ctx context.Context) (int64, error) {
	return s.sumInventory(ctx, "")
}

func (s *statsAppImpl) WarehouseInventory(ctx context.Context) (int64, error) {
	return s.sumInventory(ctx, constant.LocationTypeWarehouse)
}

func (s *statsAppImpl) StoreInventory(ctx context.Context) (int64, error) {
	return s.sumInventory(ctx, constant.LocationTypeStore)
}

// CapacityUtilization is warehouse stock over warehouse capacity as a
// percentage, rounded to two decimals. Zero total capacity yields zero.
func (s *statsAppImpl) CapacityUtilization(ctx context.Context) (float64, error) {
	var totalCapacity, totalStock int64
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		if loc.Type != constant.LocationTypeWarehouse {
			return nil
		}
		if loc.Capacity != nil {
			totalCapacity += *loc.Capacity
		}
		for _, entry := range stock {
			totalStock += entry.Qty
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if totalCapacity == 0 {
		return 0, nil
	}
	utilization := float64(totalStock) / float64(totalCapacity) * 100
	return math.Round(utilization*100) / 100, nil
}

func (s *statsAppImpl) LowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		for _, entry := range stock {
			if entry.Qty > 0 && entry.Qty < constant.LowStockThreshold {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *statsAppImpl) OutOfStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		for _, entry := range stock {
			if entry.Qty == 0 {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *statsAppImpl) UniqueProducts(ctx context.Context) (int64, error) {
	unique := make(map[string]struct{})
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		for name := range stock {
			unique[name] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int64(len(unique)), nil
}

// TopProduct returns the product with the highest quantity summed across all
// locations, ties broken by whichever was seen first. Products within one
// location are visited in name order so the tie-break is deterministic. Nil
// when no stock exists anywhere.
func (s *statsAppImpl) TopProduct(ctx context.Context) (*model.TopProduct, error) {
	totals := make(map[string]int64)
	order := make([]string, 0)
	err := s.stockApp.ForEachLocation(ctx, func(loc *model.LocationEntity, stock map[string]model.StockEntry) error {
		names := make([]string, 0, len(stock))
		for name := range stock {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name] += stock[name].Qty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, nil
	}

	top := order[0]
	for _, name := range order[1:] {
		if totals[name] > totals[top] {
			top = name
		}
	}
	return &model.TopProduct{ProductName: top, AvailableQty: totals[top]}, nil
}

func (s *statsAppImpl) SuppliersCount(ctx context.Context) (int64, error) {
	count, err := s.directoryRepo.CountSuppliers(ctx)
	if err != nil {
		logger.Error("[SuppliersCount] count suppliers", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return count, nil
}

func (s *statsAppImpl) WarehousesCount(ctx context.Context) (int64, error) {
	count, err := s.directoryRepo.CountLocations(ctx, constant.LocationTypeWarehouse)
	if err != nil {
		logger.Error("[WarehousesCount] count warehouses", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return count, nil
}
