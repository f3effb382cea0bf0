package directory

import (
	"context"
	"database/sql"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	directoryrepo "github.com/muhammadheryan/supply-chain/repository/directory"
	stockrepo "github.com/muhammadheryan/supply-chain/repository/stock"
	txrepo "github.com/muhammadheryan/supply-chain/repository/tx"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
)

// DirectoryApp is plain document CRUD over suppliers, warehouses and stores.
// Stock maps are owned by the stock application; nothing here touches
// quantities.
type DirectoryApp interface {
	CreateSupplier(ctx context.Context, req *model.SupplierRequest) (*model.SupplierEntity, error)
	GetSupplier(ctx context.Context, id uint64) (*model.SupplierEntity, error)
	ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error)
	UpdateSupplier(ctx context.Context, id uint64, req *model.SupplierUpdateRequest) (*model.SupplierEntity, error)
	DeleteSupplier(ctx context.Context, id uint64) error

	CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.LocationEntity, error)
	CreateStore(ctx context.Context, req *model.StoreRequest) (*model.LocationEntity, error)
	GetLocation(ctx context.Context, id uint64, locType constant.LocationType) (*model.LocationEntity, error)
	ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error)
	UpdateLocation(ctx context.Context, id uint64, locType constant.LocationType, req *model.LocationUpdateRequest) (*model.LocationEntity, error)
	DeleteLocation(ctx context.Context, id uint64, locType constant.LocationType) error
}

type directoryAppImpl struct {
	txRepo        txrepo.TxRepository
	directoryRepo directoryrepo.DirectoryRepository
	stockRepo     stockrepo.StockRepository
}

func NewDirectoryApp(txRepo txrepo.TxRepository, directoryRepo directoryrepo.DirectoryRepository, stockRepo stockrepo.StockRepository) DirectoryApp {
	return &directoryAppImpl{
		txRepo:        txRepo,
		directoryRepo: directoryRepo,
		stockRepo:     stockRepo,
	}
}

func (s *directoryAppImpl) CreateSupplier(ctx context.Context, req *model.SupplierRequest) (*model.SupplierEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSupplier] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	seq, err := s.directoryRepo.NextCodeTx(ctx, tx, constant.SequenceSupplier)
	if err != nil {
		logger.Error("[CreateSupplier] next code", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	supplier := &model.SupplierEntity{
		Code:          directoryrepo.FormatCode(constant.SequenceSupplier, seq),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}

	id, err := s.directoryRepo.CreateSupplier(ctx, tx, supplier)
	if err != nil {
		logger.Error("[CreateSupplier] insert supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSupplier] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true

	supplier.ID = id
	return supplier, nil
}

func (s *directoryAppImpl) GetSupplier(ctx context.Context, id uint64) (*model.SupplierEntity, error) {
	supplier, err := s.directoryRepo.GetSupplierByID(ctx, id)
	if err != nil {
		logger.Error("[GetSupplier] get supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if supplier == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return supplier, nil
}

func (s *directoryAppImpl) ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error) {
	suppliers, err := s.directoryRepo.ListSuppliers(ctx)
	if err != nil {
		logger.Error("[ListSuppliers] list suppliers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return suppliers, nil
}

func (s *directoryAppImpl) UpdateSupplier(ctx context.Context, id uint64, req *model.SupplierUpdateRequest) (*model.SupplierEntity, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}

	if err := s.directoryRepo.UpdateSupplier(ctx, supplier); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateSupplier] update supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return supplier, nil
}

func (s *directoryAppImpl) DeleteSupplier(ctx context.Context, id uint64) error {
	if err := s.directoryRepo.DeleteSupplier(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteSupplier] delete supplier", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return nil
}

func (s *directoryAppImpl) CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.LocationEntity, error) {
	capacity := req.Capacity
	loc := &model.LocationEntity{
		Type:     constant.LocationTypeWarehouse,
		Name:     req.Name,
		Address:  req.Address,
		Capacity: &capacity,
		Manager:  req.Manager,
		Phone:    req.Phone,
	}
	return s.createLocation(ctx, constant.SequenceWarehouse, loc)
}

func (s *directoryAppImpl) CreateStore(ctx context.Context, req *model.StoreRequest) (*model.LocationEntity, error) {
	warehouse, err := s.directoryRepo.GetLocationByID(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateStore] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if warehouse == nil || warehouse.Type != constant.LocationTypeWarehouse {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "warehouse"})
	}

	warehouseID := req.WarehouseID
	loc := &model.LocationEntity{
		Type:        constant.LocationTypeStore,
		Name:        req.Name,
		Address:     req.Address,
		Manager:     req.Manager,
		Phone:       req.Phone,
		WarehouseID: &warehouseID,
	}
	return s.createLocation(ctx, constant.SequenceStore, loc)
}

func (s *directoryAppImpl) createLocation(ctx context.Context, sequence string, loc *model.LocationEntity) (*model.LocationEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateLocation] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	seq, err := s.directoryRepo.NextCodeTx(ctx, tx, sequence)
	if err != nil {
		logger.Error("[CreateLocation] next code", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	loc.Code = directoryrepo.FormatCode(sequence, seq)

	id, err := s.directoryRepo.CreateLocation(ctx, tx, loc)
	if err != nil {
		logger.Error("[CreateLocation] insert location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateLocation] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true

	loc.ID = id
	return loc, nil
}

func (s *directoryAppImpl) GetLocation(ctx context.Context, id uint64, locType constant.LocationType) (*model.LocationEntity, error) {
	loc, err := s.directoryRepo.GetLocationByID(ctx, id)
	if err != nil {
		logger.Error("[GetLocation] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if loc == nil || (locType != "" && loc.Type != locType) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return loc, nil
}

func (s *directoryAppImpl) ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error) {
	locations, err := s.directoryRepo.ListLocations(ctx, locType)
	if err != nil {
		logger.Error("[ListLocations] list locations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return locations, nil
}

func (s *directoryAppImpl) UpdateLocation(ctx context.Context, id uint64, locType constant.LocationType, req *model.LocationUpdateRequest) (*model.LocationEntity, error) {
	loc, err := s.GetLocation(ctx, id, locType)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.Capacity != nil && loc.Type == constant.LocationTypeWarehouse {
		// Capacity is advisory. Lowering it below current stock is flagged,
		// not blocked.
		items, err := s.stockRepo.ListByLocation(ctx, id)
		if err != nil {
			logger.Error("[UpdateLocation] list stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
		}
		var total int64
		for _, item := range items {
			total += item.Qty
		}
		if total > *req.Capacity {
			logger.Warn("[UpdateLocation] capacity below current stock",
				zap.Uint64("location_id", id),
				zap.Int64("capacity", *req.Capacity),
				zap.Int64("current_stock", total))
		}
		loc.Capacity = req.Capacity
	}
	if req.Manager != nil {
		loc.Manager = *req.Manager
	}
	if req.Phone != nil {
		loc.Phone = *req.Phone
	}

	if err := s.directoryRepo.UpdateLocation(ctx, loc); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateLocation] update location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return loc, nil
}

func (s *directoryAppImpl) DeleteLocation(ctx context.Context, id uint64, locType constant.LocationType) error {
	if _, err := s.GetLocation(ctx, id, locType); err != nil {
		return err
	}
	if err := s.directoryRepo.DeleteLocation(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteLocation] delete location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return nil
}
