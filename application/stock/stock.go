package stock

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	directoryrepo "github.com/muhammadheryan/supply-chain/repository/directory"
	ledgerrepo "github.com/muhammadheryan/supply-chain/repository/ledger"
	stockrepo "github.com/muhammadheryan/supply-chain/repository/stock"
	txrepo "github.com/muhammadheryan/supply-chain/repository/tx"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
)

// StockApp is the single authority over per-location product quantities.
// Every mutation goes through ApplyDelta/ApplyDeltaTx, which writes the stock
// row and its ledger entry in one database transaction.
type StockApp interface {
	GetQuantity(ctx context.Context, locationID uint64, product string) (int64, error)
	ApplyDelta(ctx context.Context, actor model.Actor, req *model.ApplyDeltaRequest) (*model.ApplyDeltaResult, error)
	// ApplyDeltaTx runs inside a caller-owned transaction so order approval
	// can deduct several lines all-or-nothing.
	ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, req *model.ApplyDeltaRequest) (*model.ApplyDeltaResult, error)
	// GetItemTx reads a stock row under the same row lock ApplyDeltaTx uses.
	GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error)
	ListStock(ctx context.Context, locationID uint64) (*model.LocationStockResponse, error)
	QueryLedger(ctx context.Context, filter *model.LedgerFilter) ([]model.StockTransaction, error)
	// ForEachLocation walks every location with its current stock map. Each
	// call re-reads state; it is not a snapshot iterator.
	ForEachLocation(ctx context.Context, fn func(loc *model.LocationEntity, stock map[string]model.StockEntry) error) error
}

type stockAppImpl struct {
	txRepo        txrepo.TxRepository
	stockRepo     stockrepo.StockRepository
	ledgerRepo    ledgerrepo.LedgerRepository
	directoryRepo directoryrepo.DirectoryRepository
}

func NewStockApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, ledgerRepo ledgerrepo.LedgerRepository, directoryRepo directoryrepo.DirectoryRepository) StockApp {
	return &stockAppImpl{
		txRepo:        txRepo,
		stockRepo:     stockRepo,
		ledgerRepo:    ledgerRepo,
		directoryRepo: directoryRepo,
	}
}

func (s *stockAppImpl) GetQuantity(ctx context.Context, locationID uint64, product string) (int64, error) {
	qty, err := s.stockRepo.GetQuantity(ctx, locationID, product)
	if err != nil {
		logger.Error("[GetQuantity] get quantity", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return qty, nil
}

func (s *stockAppImpl) GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error) {
	return s.stockRepo.GetItemTx(ctx, tx, locationID, product)
}

func (s *stockAppImpl) ApplyDelta(ctx context.Context, actor model.Actor, req *model.ApplyDeltaRequest) (*model.ApplyDeltaResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ApplyDelta] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	result, err := s.ApplyDeltaTx(ctx, tx, actor, req)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ApplyDelta] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true
	return result, nil
}

func (s *stockAppImpl) ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, req *model.ApplyDeltaRequest) (*model.ApplyDeltaResult, error) {
	location, err := s.directoryRepo.GetLocationByID(ctx, req.LocationID)
	if err != nil {
		logger.Error("[ApplyDelta] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if location == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if req.LocationType != "" && location.Type != req.LocationType {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{
			"entity": string(req.LocationType),
		})
	}

	item, err := s.stockRepo.GetItemTx(ctx, tx, req.LocationID, req.Product)
	if err != nil {
		logger.Error("[ApplyDelta] get stock item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	var prevQty int64
	unit := req.Unit
	if item != nil {
		prevQty = item.Qty
		// A positive delta records the most recent unit of measure; a
		// deduction keeps the stored one.
		if req.Delta <= 0 || req.Unit == "" {
			unit = item.Unit
		}
	}

	newQty := prevQty + req.Delta
	if newQty < 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, map[string]interface{}{
			"product":   req.Product,
			"available": prevQty,
		})
	}

	if err := s.stockRepo.UpsertItemTx(ctx, tx, req.LocationID, req.Product, req.Delta, unit); err != nil {
		logger.Error("[ApplyDelta] upsert stock item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	txn := &model.StockTransaction{
		LocationID:   location.ID,
		LocationName: location.Name,
		Product:      req.Product,
		DeltaQty:     req.Delta,
		Unit:         unit,
		PreviousQty:  prevQty,
		NewQty:       newQty,
		Reason:       req.Reason,
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.ledgerRepo.AppendTx(ctx, tx, txn); err != nil {
		logger.Error("[ApplyDelta] append ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	return &model.ApplyDeltaResult{
		Product:     req.Product,
		PreviousQty: prevQty,
		NewQty:      newQty,
	}, nil
}

func (s *stockAppImpl) ListStock(ctx context.Context, locationID uint64) (*model.LocationStockResponse, error) {
	location, err := s.directoryRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		logger.Error("[ListStock] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if location == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.stockRepo.ListByLocation(ctx, locationID)
	if err != nil {
		logger.Error("[ListStock] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	stock := make(map[string]model.StockEntry, len(items))
	for _, item := range items {
		stock[item.Product] = model.StockEntry{Qty: item.Qty, Unit: item.Unit}
	}

	return &model.LocationStockResponse{
		LocationID:   location.ID,
		LocationName: location.Name,
		Stock:        stock,
	}, nil
}

func (s *stockAppImpl) QueryLedger(ctx context.Context, filter *model.LedgerFilter) ([]model.StockTransaction, error) {
	txns, err := s.ledgerRepo.Query(ctx, filter)
	if err != nil {
		logger.Error("[QueryLedger] query ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return txns, nil
}

func (s *stockAppImpl) ForEachLocation(ctx context.Context, fn func(loc *model.LocationEntity, stock map[string]model.StockEntry) error) error {
	locations, err := s.directoryRepo.ListLocations(ctx, "")
	if err != nil {
		logger.Error("[ForEachLocation] list locations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	for i := range locations {
		items, err := s.stockRepo.ListByLocation(ctx, locations[i].ID)
		if err != nil {
			logger.Error("[ForEachLocation] list stock", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrStorageUnavailable)
		}
		stock := make(map[string]model.StockEntry, len(items))
		for _, item := range items {
			stock[item.Product] = model.StockEntry{Qty: item.Qty, Unit: item.Unit}
		}
		if err := fn(&locations[i], stock); err != nil {
			return err
		}
	}
	return nil
}
