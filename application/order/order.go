package order

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	stockapp "github.com/muhammadheryan/supply-chain/application/stock"
	"github.com/muhammadheryan/supply-chain/cmd/config"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	directoryrepo "github.com/muhammadheryan/supply-chain/repository/directory"
	orderrepo "github.com/muhammadheryan/supply-chain/repository/order"
	txrepo "github.com/muhammadheryan/supply-chain/repository/tx"
	"github.com/muhammadheryan/supply-chain/thirdparty/rabbitmq"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
)

// OrderApp drives a replenishment order from request to delivery or
// cancellation. Stock is validated at creation and deducted at approval; the
// approval transaction re-checks availability line by line, so of two orders
// racing for the same stock the second one loses at approval time.
type OrderApp interface {
	CreateOrder(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	TransitionStatus(ctx context.Context, actor model.Actor, orderID uint64, req *model.UpdateOrderRequest) (*model.OrderEntity, error)
	ExpireOrder(ctx context.Context, orderID uint64) error
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
}

type orderAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	orderRepo     orderrepo.OrderRepository
	directoryRepo directoryrepo.DirectoryRepository
	stockApp      stockapp.StockApp
	publisher     *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, directoryRepo directoryrepo.DirectoryRepository, stockApp stockapp.StockApp, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:        config,
		txRepo:        txRepo,
		orderRepo:     orderRepo,
		directoryRepo: directoryRepo,
		stockApp:      stockApp,
		publisher:     publisher,
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, actor model.Actor, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	priority, ok := constant.ParseOrderPriority(req.Priority)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidPriority)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// resolve store -> warehouse -> supplier
	store, err := s.directoryRepo.GetLocationByID(ctx, req.StoreID)
	if err != nil {
		logger.Error("[CreateOrder] get store", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if store == nil || store.Type != constant.LocationTypeStore {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "store"})
	}
	if store.WarehouseID == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "warehouse"})
	}

	warehouse, err := s.directoryRepo.GetLocationByID(ctx, *store.WarehouseID)
	if err != nil {
		logger.Error("[CreateOrder] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if warehouse == nil || warehouse.Type != constant.LocationTypeWarehouse {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "warehouse"})
	}

	supplier, err := s.directoryRepo.GetSupplierByID(ctx, req.SupplierID)
	if err != nil {
		logger.Error("[CreateOrder] get supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if supplier == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "supplier"})
	}

	// Validate every line against warehouse stock under row locks, so a
	// competing creation touching the same products waits its turn. Either
	// all lines pass or the whole order is rejected.
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.RequestedQty <= 0 {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, map[string]interface{}{
				"product": line.ProductName,
				"reason":  "requested_qty must be greater than 0",
			})
		}

		item, err := s.stockApp.GetItemTx(ctx, tx, warehouse.ID, line.ProductName)
		if err != nil {
			logger.Error("[CreateOrder] get stock item", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
		}
		if item == nil {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrProductNotInStock, map[string]interface{}{
				"product": line.ProductName,
			})
		}
		if line.RequestedQty > item.Qty {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, map[string]interface{}{
				"product":   line.ProductName,
				"available": item.Qty,
			})
		}

		items = append(items, model.OrderItem{
			Product:      line.ProductName,
			RequestedQty: line.RequestedQty,
			Unit:         item.Unit,
		})
	}

	seq, err := s.directoryRepo.NextCodeTx(ctx, tx, constant.SequenceOrder)
	if err != nil {
		logger.Error("[CreateOrder] next order code", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	orderCode := directoryrepo.FormatCode(constant.SequenceOrder, seq)

	now := time.Now().UTC()
	order := &model.OrderEntity{
		OrderCode:       orderCode,
		StoreID:         store.ID,
		StoreName:       store.Name,
		WarehouseID:     warehouse.ID,
		WarehouseName:   warehouse.Name,
		SupplierID:      supplier.ID,
		SupplierName:    supplier.Name,
		Status:          constant.OrderStatusPending,
		Priority:        priority,
		RequestedDate:   now,
		RequestedByID:   actor.ID,
		RequestedByName: actor.Name,
		Notes:           req.Notes,
		LastUpdated:     now,
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			OrderCode: orderCode,
			ExpiresAt: now.Add(s.config.Order.PendingExpiration),
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	return &model.CreateOrderResponse{
		OrderID:   orderID,
		OrderCode: orderCode,
		Status:    string(constant.OrderStatusPending),
	}, nil
}

func (s *orderAppImpl) TransitionStatus(ctx context.Context, actor model.Actor, orderID uint64, req *model.UpdateOrderRequest) (*model.OrderEntity, error) {
	if req.Status == "" && req.DeliveryAgent == nil && req.Notes == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[TransitionStatus] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[TransitionStatus] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if order == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "order"})
	}

	if order.Status.IsTerminal() {
		return nil, errors.SetCustomError(constant.ErrOrderNotModifiable)
	}

	now := time.Now().UTC()

	if req.Status != "" {
		newStatus, ok := constant.ParseOrderStatus(req.Status)
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidStatus)
		}
		if !order.Status.CanTransitionTo(newStatus) {
			return nil, errors.SetCustomErrorWithDetails(constant.ErrInvalidTransition, map[string]interface{}{
				"from": string(order.Status),
				"to":   string(newStatus),
			})
		}

		switch newStatus {
		case constant.OrderStatusApproved:
			if err := s.approveTx(ctx, tx, actor, order, req.ApprovedItems, now); err != nil {
				return nil, err
			}
		case constant.OrderStatusDispatched:
			order.DispatchedDate = &now
		case constant.OrderStatusDelivered:
			order.DeliveredDate = &now
		case constant.OrderStatusCancelled:
			// Cancelling an approved order gives back what approval took.
			if order.Status == constant.OrderStatusApproved {
				if err := s.restoreStockTx(ctx, tx, actor, order); err != nil {
					return nil, err
				}
			}
		}
		order.Status = newStatus
	}

	if req.DeliveryAgent != nil {
		order.DeliveryAgent = req.DeliveryAgent
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	order.LastUpdated = now

	if err := s.orderRepo.UpdateOrderTx(ctx, tx, order); err != nil {
		logger.Error("[TransitionStatus] update order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[TransitionStatus] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true
	return order, nil
}

// approveTx deducts every line from the warehouse inside the caller's
// transaction. Any failing line rolls the whole transition back.
func (s *orderAppImpl) approveTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, order *model.OrderEntity, approvedItems []model.ApprovedItemRequest, now time.Time) error {
	approvedQtys := make(map[string]int64, len(approvedItems))
	for _, ai := range approvedItems {
		if ai.ApprovedQty <= 0 {
			return errors.SetCustomErrorWithDetails(constant.ErrInvalidRequest, map[string]interface{}{
				"product": ai.ProductName,
				"reason":  "approved_qty must be greater than 0",
			})
		}
		approvedQtys[ai.ProductName] = ai.ApprovedQty
	}

	for i := range order.Items {
		item := &order.Items[i]
		qty := item.RequestedQty
		if approved, ok := approvedQtys[item.Product]; ok {
			qty = approved
		}

		if _, err := s.stockApp.ApplyDeltaTx(ctx, tx, actor, &model.ApplyDeltaRequest{
			LocationID:   order.WarehouseID,
			LocationType: constant.LocationTypeWarehouse,
			Product:      item.Product,
			Delta:        -qty,
			Reason:       constant.StockReasonOrderDeduction,
			Notes:        "order " + order.OrderCode,
		}); err != nil {
			return err
		}

		if err := s.orderRepo.UpdateItemApprovedQtyTx(ctx, tx, order.ID, item.Product, qty); err != nil {
			logger.Error("[TransitionStatus] update approved qty", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrStorageUnavailable)
		}
		approvedQty := qty
		item.ApprovedQty = &approvedQty
	}

	order.ApprovedDate = &now
	order.ApprovedByID = &actor.ID
	order.ApprovedByName = &actor.Name
	return nil
}

func (s *orderAppImpl) restoreStockTx(ctx context.Context, tx *sqlx.Tx, actor model.Actor, order *model.OrderEntity) error {
	for _, item := range order.Items {
		qty := item.RequestedQty
		if item.ApprovedQty != nil {
			qty = *item.ApprovedQty
		}
		if _, err := s.stockApp.ApplyDeltaTx(ctx, tx, actor, &model.ApplyDeltaRequest{
			LocationID:   order.WarehouseID,
			LocationType: constant.LocationTypeWarehouse,
			Product:      item.Product,
			Delta:        qty,
			Unit:         item.Unit,
			Reason:       constant.StockReasonAdjustment,
			Notes:        "order " + order.OrderCode + " cancelled",
		}); err != nil {
			return err
		}
	}
	return nil
}

// ExpireOrder cancels an order that has sat pending past the configured
// deadline. Called from the internal endpoint driven by the expiration
// consumer; a no-op when the order has since moved on.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExpireOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ExpireOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if order == nil {
		return errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "order"})
	}
	if order.Status != constant.OrderStatusPending {
		return nil
	}
	if time.Since(order.RequestedDate) < s.config.Order.PendingExpiration {
		return nil
	}

	order.Status = constant.OrderStatusCancelled
	order.LastUpdated = time.Now().UTC()
	if err := s.orderRepo.UpdateOrderTx(ctx, tx, order); err != nil {
		logger.Error("[ExpireOrder] update order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExpireOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	committed = true

	logger.Info("[ExpireOrder] pending order expired", zap.Uint64("order_id", orderID), zap.String("order_code", order.OrderCode))
	return nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	if order == nil {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrNotFound, map[string]interface{}{"entity": "order"})
	}
	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	if filter != nil && filter.Status != "" {
		if _, ok := constant.ParseOrderStatus(filter.Status); !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidStatus)
		}
	}
	if filter != nil && filter.Priority != "" {
		if _, ok := constant.ParseOrderPriority(filter.Priority); !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidPriority)
		}
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return orders, nil
}
