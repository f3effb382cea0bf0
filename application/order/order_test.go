package order_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/supply-chain/application/order"
	appstock "github.com/muhammadheryan/supply-chain/application/stock"
	"github.com/muhammadheryan/supply-chain/cmd/config"
	"github.com/muhammadheryan/supply-chain/constant"
	stockappmocks "github.com/muhammadheryan/supply-chain/mocks/application/stock"
	directorymocks "github.com/muhammadheryan/supply-chain/mocks/repository/directory"
	ordermocks "github.com/muhammadheryan/supply-chain/mocks/repository/order"
	txmocks "github.com/muhammadheryan/supply-chain/mocks/repository/tx"
	"github.com/muhammadheryan/supply-chain/model"
	cerr "github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Publisher is nil throughout: CreateOrder checks for nil before publishing,
// so the expiration message is simply skipped.

func warehouseLoc(id uint64) *model.LocationEntity {
	return &model.LocationEntity{ID: id, Type: constant.LocationTypeWarehouse, Name: "Central Warehouse"}
}

func storeLoc(id, warehouseID uint64) *model.LocationEntity {
	return &model.LocationEntity{ID: id, Type: constant.LocationTypeStore, Name: "Main Street Store", WarehouseID: &warehouseID}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		orderRepo     *ordermocks.OrderRepository
		directoryRepo *directorymocks.DirectoryRepository
		stockApp      *stockappmocks.StockApp
	}
	type args struct {
		ctx   context.Context
		actor model.Actor
		req   *model.CreateOrderRequest
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config: &config.Config{
				Order: config.OrderConfig{PendingExpiration: 72 * time.Hour},
			},
			txRepo:        txmocks.NewTxRepository(t),
			orderRepo:     ordermocks.NewOrderRepository(t),
			directoryRepo: directorymocks.NewDirectoryRepository(t),
			stockApp:      stockappmocks.NewStockApp(t),
		}
	}
	tests := []struct {
		name      string
		args      args
		mockCall  func(f fields)
		want      *model.CreateOrderResponse
		wantErr   bool
		errCode   constant.ErrorType
		available int64
	}{
		{
			name: "success: create order with two lines",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1, Name: "alice"},
				req: &model.CreateOrderRequest{
					StoreID:    2,
					SupplierID: 3,
					Priority:   "HIGH",
					Items: []model.OrderItemRequest{
						{ProductName: "widgets", RequestedQty: 5},
						{ProductName: "gadgets", RequestedQty: 2},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(2)).Return(storeLoc(2, 1), nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(warehouseLoc(1), nil).Once()
				f.directoryRepo.On("GetSupplierByID", mock.Anything, uint64(3)).Return(&model.SupplierEntity{ID: 3, Name: "Acme"}, nil).Once()

				f.stockApp.On("GetItemTx", mock.Anything, tx, uint64(1), "widgets").
					Return(&model.StockItem{LocationID: 1, Product: "widgets", Qty: 10, Unit: "pcs"}, nil).Once()
				f.stockApp.On("GetItemTx", mock.Anything, tx, uint64(1), "gadgets").
					Return(&model.StockItem{LocationID: 1, Product: "gadgets", Qty: 2, Unit: "pcs"}, nil).Once()

				f.directoryRepo.On("NextCodeTx", mock.Anything, tx, constant.SequenceOrder).Return(int64(7), nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(order *model.OrderEntity) bool {
					return order.OrderCode == "ORD-007" &&
						order.Status == constant.OrderStatusPending &&
						order.Priority == constant.OrderPriorityHigh &&
						order.StoreName == "Main Street Store" &&
						order.WarehouseName == "Central Warehouse" &&
						order.SupplierName == "Acme"
				})).Return(uint64(42), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
					return len(items) == 2 && items[0].ApprovedQty == nil
				})).Return(nil).Once()
			},
			want: &model.CreateOrderResponse{OrderID: 42, OrderCode: "ORD-007", Status: "pending"},
		},
		{
			name: "error: empty items",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1},
				req:   &model.CreateOrderRequest{StoreID: 2, SupplierID: 3, Priority: "low"},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown priority",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1},
				req: &model.CreateOrderRequest{
					StoreID: 2, SupplierID: 3, Priority: "asap",
					Items: []model.OrderItemRequest{{ProductName: "widgets", RequestedQty: 1}},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidPriority,
		},
		{
			name: "error: store not found",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1},
				req: &model.CreateOrderRequest{
					StoreID: 99, SupplierID: 3, Priority: "low",
					Items: []model.OrderItemRequest{{ProductName: "widgets", RequestedQty: 1}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: product not in warehouse stock",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1},
				req: &model.CreateOrderRequest{
					StoreID: 2, SupplierID: 3, Priority: "low",
					Items: []model.OrderItemRequest{{ProductName: "sprockets", RequestedQty: 1}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(2)).Return(storeLoc(2, 1), nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(warehouseLoc(1), nil).Once()
				f.directoryRepo.On("GetSupplierByID", mock.Anything, uint64(3)).Return(&model.SupplierEntity{ID: 3}, nil).Once()
				f.stockApp.On("GetItemTx", mock.Anything, tx, uint64(1), "sprockets").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotInStock,
		},
		{
			name: "error: insufficient stock carries available qty",
			args: args{
				ctx:   context.Background(),
				actor: model.Actor{ID: 1},
				req: &model.CreateOrderRequest{
					StoreID: 2, SupplierID: 3, Priority: "low",
					Items: []model.OrderItemRequest{{ProductName: "widgets", RequestedQty: 50}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(2)).Return(storeLoc(2, 1), nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(warehouseLoc(1), nil).Once()
				f.directoryRepo.On("GetSupplierByID", mock.Anything, uint64(3)).Return(&model.SupplierEntity{ID: 3}, nil).Once()
				f.stockApp.On("GetItemTx", mock.Anything, tx, uint64(1), "widgets").
					Return(&model.StockItem{LocationID: 1, Product: "widgets", Qty: 8, Unit: "pcs"}, nil).Once()
			},
			wantErr:   true,
			errCode:   constant.ErrInsufficientStock,
			available: 8,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, f.directoryRepo, f.stockApp, nil)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.actor, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.available != 0 {
					if got := ce.Details()["available"]; got != tt.available {
						t.Fatalf("available detail = %v, want %v", got, tt.available)
					}
				}
				return
			}

			if got.OrderID != tt.want.OrderID || got.OrderCode != tt.want.OrderCode || got.Status != tt.want.Status {
				t.Fatalf("CreateOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func pendingOrder() *model.OrderEntity {
	return &model.OrderEntity{
		ID:          42,
		OrderCode:   "ORD-007",
		WarehouseID: 1,
		Status:      constant.OrderStatusPending,
		Priority:    constant.OrderPriorityHigh,
		Items: []model.OrderItem{
			{OrderID: 42, Product: "widgets", RequestedQty: 5, Unit: "pcs"},
			{OrderID: 42, Product: "gadgets", RequestedQty: 2, Unit: "pcs"},
		},
	}
}

func TestOrderApp_TransitionStatus(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		orderRepo     *ordermocks.OrderRepository
		directoryRepo *directorymocks.DirectoryRepository
		stockApp      *stockappmocks.StockApp
	}
	type args struct {
		orderID uint64
		req     *model.UpdateOrderRequest
	}
	actor := model.Actor{ID: 9, Name: "bob"}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        &config.Config{},
			txRepo:        txmocks.NewTxRepository(t),
			orderRepo:     ordermocks.NewOrderRepository(t),
			directoryRepo: directorymocks.NewDirectoryRepository(t),
			stockApp:      stockappmocks.NewStockApp(t),
		}
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		check    func(t *testing.T, got *model.OrderEntity)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: approval deducts every line and stamps milestones",
			args: args{
				orderID: 42,
				req: &model.UpdateOrderRequest{
					Status:        "approved",
					ApprovedItems: []model.ApprovedItemRequest{{ProductName: "widgets", ApprovedQty: 3}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(pendingOrder(), nil).Once()

				// widgets approved at 3, gadgets default to requested 2
				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "widgets" && req.Delta == -3 && req.Reason == constant.StockReasonOrderDeduction
				})).Return(&model.ApplyDeltaResult{Product: "widgets", PreviousQty: 10, NewQty: 7}, nil).Once()
				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "gadgets" && req.Delta == -2 && req.Reason == constant.StockReasonOrderDeduction
				})).Return(&model.ApplyDeltaResult{Product: "gadgets", PreviousQty: 2, NewQty: 0}, nil).Once()

				f.orderRepo.On("UpdateItemApprovedQtyTx", mock.Anything, tx, uint64(42), "widgets", int64(3)).Return(nil).Once()
				f.orderRepo.On("UpdateItemApprovedQtyTx", mock.Anything, tx, uint64(42), "gadgets", int64(2)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.OrderEntity) {
				if got.Status != constant.OrderStatusApproved {
					t.Fatalf("status = %s, want approved", got.Status)
				}
				if got.ApprovedDate == nil || got.ApprovedByID == nil || *got.ApprovedByID != 9 {
					t.Fatal("approval milestone not stamped")
				}
			},
		},
		{
			name: "error: one short line rejects the whole approval",
			args: args{
				orderID: 42,
				req:     &model.UpdateOrderRequest{Status: "approved"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(pendingOrder(), nil).Once()

				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "widgets"
				})).Return(&model.ApplyDeltaResult{Product: "widgets", PreviousQty: 10, NewQty: 5}, nil).Once()
				f.orderRepo.On("UpdateItemApprovedQtyTx", mock.Anything, tx, uint64(42), "widgets", int64(5)).Return(nil).Once()

				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "gadgets"
				})).Return(nil, cerr.SetCustomErrorWithDetails(constant.ErrInsufficientStock, map[string]interface{}{
					"product": "gadgets", "available": int64(1),
				})).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: pending cannot skip to dispatched",
			args: args{
				orderID: 42,
				req:     &model.UpdateOrderRequest{Status: "dispatched"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(pendingOrder(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: delivered order is frozen",
			args: args{
				orderID: 42,
				req:     &model.UpdateOrderRequest{Status: "cancelled"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				delivered := pendingOrder()
				delivered.Status = constant.OrderStatusDelivered
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(delivered, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderNotModifiable,
		},
		{
			name: "error: unknown status string",
			args: args{
				orderID: 42,
				req:     &model.UpdateOrderRequest{Status: "shipped"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(pendingOrder(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStatus,
		},
		{
			name: "success: cancelling an approved order restores its stock",
			args: args{
				orderID: 42,
				req:     &model.UpdateOrderRequest{Status: "cancelled"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				approved := pendingOrder()
				approved.Status = constant.OrderStatusApproved
				three := int64(3)
				approved.Items[0].ApprovedQty = &three
				two := int64(2)
				approved.Items[1].ApprovedQty = &two
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(approved, nil).Once()

				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "widgets" && req.Delta == 3 && req.Reason == constant.StockReasonAdjustment
				})).Return(&model.ApplyDeltaResult{}, nil).Once()
				f.stockApp.On("ApplyDeltaTx", mock.Anything, tx, actor, mock.MatchedBy(func(req *model.ApplyDeltaRequest) bool {
					return req.Product == "gadgets" && req.Delta == 2 && req.Reason == constant.StockReasonAdjustment
				})).Return(&model.ApplyDeltaResult{}, nil).Once()

				f.orderRepo.On("UpdateOrderTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.OrderEntity) {
				if got.Status != constant.OrderStatusCancelled {
					t.Fatalf("status = %s, want cancelled", got.Status)
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.config, f.txRepo, f.orderRepo, f.directoryRepo, f.stockApp, nil)

			got, err := app.TransitionStatus(context.Background(), actor, tt.args.orderID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TransitionStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestOrderApp_ExpireOrder(t *testing.T) {
	cfg := &config.Config{Order: config.OrderConfig{PendingExpiration: time.Hour}}

	t.Run("pending order past deadline is cancelled", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		orderRepo := ordermocks.NewOrderRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		stale := pendingOrder()
		stale.RequestedDate = time.Now().UTC().Add(-2 * time.Hour)
		orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(stale, nil).Once()
		orderRepo.On("UpdateOrderTx", mock.Anything, tx, mock.MatchedBy(func(order *model.OrderEntity) bool {
			return order.Status == constant.OrderStatusCancelled
		})).Return(nil).Once()

		app := apporder.NewOrderApp(cfg, txRepo, orderRepo, directorymocks.NewDirectoryRepository(t), stockappmocks.NewStockApp(t), nil)
		if err := app.ExpireOrder(context.Background(), 42); err != nil {
			t.Fatalf("ExpireOrder() error = %v", err)
		}
	})

	t.Run("approved order is left alone", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		orderRepo := ordermocks.NewOrderRepository(t)
		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		approved := pendingOrder()
		approved.Status = constant.OrderStatusApproved
		orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(42)).Return(approved, nil).Once()

		app := apporder.NewOrderApp(cfg, txRepo, orderRepo, directorymocks.NewDirectoryRepository(t), stockappmocks.NewStockApp(t), nil)
		if err := app.ExpireOrder(context.Background(), 42); err != nil {
			t.Fatalf("ExpireOrder() error = %v", err)
		}
	})
}

// Ten concurrent creations must come away with ten distinct sequential order
// codes: the counter is bumped inside the same serialized transaction that
// inserts the order, so no two creations can read the same value.
func TestOrderApp_CreateOrder_ConcurrentCodes(t *testing.T) {
	const orders = 10

	store := &codeGenStore{}
	app := apporder.NewOrderApp(&config.Config{}, store, store, store, &fixedStockApp{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := app.CreateOrder(context.Background(), model.Actor{ID: 1, Name: "alice"}, &model.CreateOrderRequest{
				StoreID: 3, SupplierID: 2,
				Items:    []model.OrderItemRequest{{ProductName: "widgets", RequestedQty: 1}},
				Priority: "medium",
			}); err != nil {
				t.Errorf("CreateOrder() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if len(store.codes) != orders {
		t.Fatalf("orders created = %d, want %d", len(store.codes), orders)
	}
	sort.Strings(store.codes)
	for i, code := range store.codes {
		want := fmt.Sprintf("ORD-%03d", i+1)
		if code != want {
			t.Fatalf("code[%d] = %s, want %s", i, code, want)
		}
	}
}

// codeGenStore backs the concurrent creation test: the mutex held from
// BeginTx to commit or rollback stands in for the database locks, and the
// sequence counter and order table live in memory behind it. It satisfies the
// tx, order and directory repository interfaces at once.
type codeGenStore struct {
	mu     sync.Mutex
	seq    int64
	nextID uint64
	codes  []string
}

func (s *codeGenStore) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	s.mu.Lock()
	return &sqlx.Tx{}, nil
}

func (s *codeGenStore) CommitTx(tx *sqlx.Tx) error {
	s.mu.Unlock()
	return nil
}

func (s *codeGenStore) RollbackTx(tx *sqlx.Tx) error {
	s.mu.Unlock()
	return nil
}

func (s *codeGenStore) NextCodeTx(ctx context.Context, tx *sqlx.Tx, sequence string) (int64, error) {
	s.seq++
	return s.seq, nil
}

func (s *codeGenStore) GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	switch id {
	case 3:
		return storeLoc(3, 1), nil
	case 1:
		return warehouseLoc(1), nil
	}
	return nil, nil
}

func (s *codeGenStore) GetSupplierByID(ctx context.Context, id uint64) (*model.SupplierEntity, error) {
	return &model.SupplierEntity{ID: id, Code: "SUP-001", Name: "Acme"}, nil
}

func (s *codeGenStore) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (uint64, error) {
	s.nextID++
	s.codes = append(s.codes, order.OrderCode)
	return s.nextID, nil
}

func (s *codeGenStore) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	return nil
}

func (s *codeGenStore) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	return nil, nil
}

func (s *codeGenStore) UpdateOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error {
	return nil
}

func (s *codeGenStore) UpdateItemApprovedQtyTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, product string, approvedQty int64) error {
	return nil
}

func (s *codeGenStore) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	return nil, nil
}

func (s *codeGenStore) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	return nil, nil
}

func (s *codeGenStore) CreateSupplier(ctx context.Context, tx *sqlx.Tx, supplier *model.SupplierEntity) (uint64, error) {
	return 0, nil
}

func (s *codeGenStore) ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error) {
	return nil, nil
}

func (s *codeGenStore) UpdateSupplier(ctx context.Context, supplier *model.SupplierEntity) error {
	return nil
}

func (s *codeGenStore) DeleteSupplier(ctx context.Context, id uint64) error { return nil }

func (s *codeGenStore) CountSuppliers(ctx context.Context) (int64, error) { return 0, nil }

func (s *codeGenStore) CreateLocation(ctx context.Context, tx *sqlx.Tx, loc *model.LocationEntity) (uint64, error) {
	return 0, nil
}

func (s *codeGenStore) ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error) {
	return nil, nil
}

func (s *codeGenStore) UpdateLocation(ctx context.Context, loc *model.LocationEntity) error {
	return nil
}

func (s *codeGenStore) DeleteLocation(ctx context.Context, id uint64) error { return nil }

func (s *codeGenStore) CountLocations(ctx context.Context, locType constant.LocationType) (int64, error) {
	return 0, nil
}

// fixedStockApp always has plenty on hand; only GetItemTx is reachable from
// order creation.
type fixedStockApp struct {
	appstock.StockApp
}

func (f *fixedStockApp) GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error) {
	return &model.StockItem{LocationID: locationID, Product: product, Qty: 1000, Unit: "pcs"}, nil
}
