package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	appstock "github.com/muhammadheryan/supply-chain/application/stock"
	"github.com/muhammadheryan/supply-chain/constant"
	directorymocks "github.com/muhammadheryan/supply-chain/mocks/repository/directory"
	ledgermocks "github.com/muhammadheryan/supply-chain/mocks/repository/ledger"
	stockmocks "github.com/muhammadheryan/supply-chain/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/supply-chain/mocks/repository/tx"
	"github.com/muhammadheryan/supply-chain/model"
	cerr "github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestStockApp_ApplyDelta(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		stockRepo     *stockmocks.StockRepository
		ledgerRepo    *ledgermocks.LedgerRepository
		directoryRepo *directorymocks.DirectoryRepository
	}
	actor := model.Actor{ID: 7, Name: "carol"}
	location := &model.LocationEntity{ID: 1, Type: constant.LocationTypeWarehouse, Name: "Central Warehouse"}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:        txmocks.NewTxRepository(t),
			stockRepo:     stockmocks.NewStockRepository(t),
			ledgerRepo:    ledgermocks.NewLedgerRepository(t),
			directoryRepo: directorymocks.NewDirectoryRepository(t),
		}
	}
	tests := []struct {
		name     string
		req      *model.ApplyDeltaRequest
		mockCall func(f fields)
		want     *model.ApplyDeltaResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: positive delta creates the product",
			req: &model.ApplyDeltaRequest{
				LocationID: 1, Product: "widgets", Delta: 25, Unit: "pcs",
				Reason: constant.StockReasonAdd,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(location, nil).Once()
				f.stockRepo.On("GetItemTx", mock.Anything, tx, uint64(1), "widgets").Return(nil, nil).Once()
				f.stockRepo.On("UpsertItemTx", mock.Anything, tx, uint64(1), "widgets", int64(25), "pcs").Return(nil).Once()

				f.ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(txn *model.StockTransaction) bool {
					return txn.Product == "widgets" &&
						txn.DeltaQty == 25 &&
						txn.PreviousQty == 0 &&
						txn.NewQty == 25 &&
						txn.Reason == constant.StockReasonAdd &&
						txn.ActorID == 7
				})).Return(uint64(1), nil).Once()
			},
			want: &model.ApplyDeltaResult{Product: "widgets", PreviousQty: 0, NewQty: 25},
		},
		{
			name: "success: deduction keeps the stored unit",
			req: &model.ApplyDeltaRequest{
				LocationID: 1, Product: "widgets", Delta: -2,
				Reason: constant.StockReasonOrderDeduction,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(location, nil).Once()
				f.stockRepo.On("GetItemTx", mock.Anything, tx, uint64(1), "widgets").
					Return(&model.StockItem{LocationID: 1, Product: "widgets", Qty: 10, Unit: "boxes"}, nil).Once()
				f.stockRepo.On("UpsertItemTx", mock.Anything, tx, uint64(1), "widgets", int64(-2), "boxes").Return(nil).Once()
				f.ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(txn *model.StockTransaction) bool {
					return txn.Unit == "boxes" && txn.NewQty == 8
				})).Return(uint64(2), nil).Once()
			},
			want: &model.ApplyDeltaResult{Product: "widgets", PreviousQty: 10, NewQty: 8},
		},
		{
			name: "error: delta below zero is rejected with available qty",
			req: &model.ApplyDeltaRequest{
				LocationID: 1, Product: "widgets", Delta: -12,
				Reason: constant.StockReasonOrderDeduction,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(1)).Return(location, nil).Once()
				f.stockRepo.On("GetItemTx", mock.Anything, tx, uint64(1), "widgets").
					Return(&model.StockItem{LocationID: 1, Product: "widgets", Qty: 5, Unit: "pcs"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: store id rejected for a warehouse-scoped add",
			req: &model.ApplyDeltaRequest{
				LocationID: 3, LocationType: constant.LocationTypeWarehouse,
				Product: "widgets", Delta: 10, Unit: "pcs",
				Reason: constant.StockReasonAdd,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.directoryRepo.On("GetLocationByID", mock.Anything, uint64(3)).
					Return(&model.LocationEntity{ID: 3, Type: constant.LocationTypeStore, Name: "Main Street Store"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: unknown location",
			req: &model.ApplyDeltaRequest{
				LocationID: 99, Product: "widgets", Delta: 1, Unit: "pcs",
				Reason: constant.StockReasonAdd,
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
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appstock.NewStockApp(f.txRepo, f.stockRepo, f.ledgerRepo, f.directoryRepo)

			got, err := app.ApplyDelta(context.Background(), actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyDelta() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errCode == constant.ErrInsufficientStock {
					if available := ce.Details()["available"]; available != int64(5) {
						t.Fatalf("available detail = %v, want 5", available)
					}
				}
				return
			}

			if *got != *tt.want {
				t.Fatalf("ApplyDelta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Draining a product one unit at a time must stop exactly at zero: quantity
// never goes negative no matter how many deductions arrive.
func TestStockApp_ApplyDelta_DrainsToZero(t *testing.T) {
	const start = int64(20)

	store := newInMemoryStore(start)
	app := appstock.NewStockApp(store, store, store, store)
	actor := model.Actor{ID: 1, Name: "drain"}

	for i := int64(0); i < start; i++ {
		result, err := app.ApplyDelta(context.Background(), actor, &model.ApplyDeltaRequest{
			LocationID: 1, Product: "widgets", Delta: -1,
			Reason: constant.StockReasonOrderDeduction,
		})
		if err != nil {
			t.Fatalf("deduction %d failed: %v", i+1, err)
		}
		if result.NewQty != start-i-1 {
			t.Fatalf("after %d deductions qty = %d, want %d", i+1, result.NewQty, start-i-1)
		}
	}

	_, err := app.ApplyDelta(context.Background(), actor, &model.ApplyDeltaRequest{
		LocationID: 1, Product: "widgets", Delta: -1,
		Reason: constant.StockReasonOrderDeduction,
	})
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.ErrorType() != constant.ErrInsufficientStock {
		t.Fatalf("deduction past zero = %v, want insufficient stock", err)
	}
	if got := store.qty["widgets"]; got != 0 {
		t.Fatalf("final qty = %d, want 0", got)
	}
	if len(store.ledger) != int(start) {
		t.Fatalf("ledger rows = %d, want %d", len(store.ledger), start)
	}
}

// With N units on hand, N+1 concurrent single-unit deductions must yield
// exactly N successes and one insufficient-stock rejection: quantity lands on
// zero, never goes negative, and the ledger holds one row per success.
func TestStockApp_ApplyDelta_ConcurrentDrain(t *testing.T) {
	const start = 20

	store := newInMemoryStore(start)
	app := appstock.NewStockApp(store, store, store, store)
	actor := model.Actor{ID: 1, Name: "drain"}

	results := make(chan *model.ApplyDeltaResult, start+1)
	failures := make(chan error, start+1)

	var wg sync.WaitGroup
	for i := 0; i < start+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := app.ApplyDelta(context.Background(), actor, &model.ApplyDeltaRequest{
				LocationID: 1, Product: "widgets", Delta: -1,
				Reason: constant.StockReasonOrderDeduction,
			})
			if err != nil {
				failures <- err
				return
			}
			results <- result
		}()
	}
	wg.Wait()
	close(results)
	close(failures)

	var succeeded int
	for result := range results {
		succeeded++
		if result.NewQty < 0 || result.PreviousQty <= 0 {
			t.Fatalf("observed negative or impossible quantities: %+v", result)
		}
	}
	if succeeded != start {
		t.Fatalf("successful deductions = %d, want %d", succeeded, start)
	}

	var failed int
	for err := range failures {
		failed++
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorType() != constant.ErrInsufficientStock {
			t.Fatalf("rejected deduction error = %v, want insufficient stock", err)
		}
	}
	if failed != 1 {
		t.Fatalf("rejected deductions = %d, want 1", failed)
	}

	if got := store.qty["widgets"]; got != 0 {
		t.Fatalf("final qty = %d, want 0", got)
	}
	if len(store.ledger) != start {
		t.Fatalf("ledger rows = %d, want %d", len(store.ledger), start)
	}
	for _, txn := range store.ledger {
		if txn.NewQty < 0 || txn.NewQty != txn.PreviousQty+txn.DeltaQty {
			t.Fatalf("ledger row inconsistent: %+v", txn)
		}
	}
}

// inMemoryStore backs the drain tests with map state instead of MySQL. It
// satisfies the tx, stock, ledger and directory interfaces at once. The mutex
// stands in for the FOR UPDATE row lock: held from BeginTx until commit or
// rollback, so concurrent deltas serialize exactly as they do against the
// real database.
type inMemoryStore struct {
	mu     sync.Mutex
	qty    map[string]int64
	unit   map[string]string
	ledger []model.StockTransaction
}

func newInMemoryStore(widgets int64) *inMemoryStore {
	return &inMemoryStore{
		qty:  map[string]int64{"widgets": widgets},
		unit: map[string]string{"widgets": "pcs"},
	}
}

func (s *inMemoryStore) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	s.mu.Lock()
	return &sqlx.Tx{}, nil
}

func (s *inMemoryStore) CommitTx(tx *sqlx.Tx) error {
	s.mu.Unlock()
	return nil
}

func (s *inMemoryStore) RollbackTx(tx *sqlx.Tx) error {
	s.mu.Unlock()
	return nil
}

func (s *inMemoryStore) GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error) {
	qty, ok := s.qty[product]
	if !ok {
		return nil, nil
	}
	return &model.StockItem{LocationID: locationID, Product: product, Qty: qty, Unit: s.unit[product]}, nil
}

func (s *inMemoryStore) UpsertItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string, delta int64, unit string) error {
	s.qty[product] += delta
	s.unit[product] = unit
	return nil
}

func (s *inMemoryStore) GetQuantity(ctx context.Context, locationID uint64, product string) (int64, error) {
	return s.qty[product], nil
}

func (s *inMemoryStore) ListByLocation(ctx context.Context, locationID uint64) ([]model.StockItem, error) {
	items := make([]model.StockItem, 0, len(s.qty))
	for product, qty := range s.qty {
		items = append(items, model.StockItem{LocationID: locationID, Product: product, Qty: qty, Unit: s.unit[product]})
	}
	return items, nil
}

func (s *inMemoryStore) AppendTx(ctx context.Context, tx *sqlx.Tx, txn *model.StockTransaction) (uint64, error) {
	s.ledger = append(s.ledger, *txn)
	return uint64(len(s.ledger)), nil
}

func (s *inMemoryStore) Query(ctx context.Context, filter *model.LedgerFilter) ([]model.StockTransaction, error) {
	return append([]model.StockTransaction(nil), s.ledger...), nil
}

func (s *inMemoryStore) NextCodeTx(ctx context.Context, tx *sqlx.Tx, sequence string) (int64, error) {
	return 0, nil
}

func (s *inMemoryStore) CreateSupplier(ctx context.Context, tx *sqlx.Tx, supplier *model.SupplierEntity) (uint64, error) {
	return 0, nil
}

func (s *inMemoryStore) GetSupplierByID(ctx context.Context, id uint64) (*model.SupplierEntity, error) {
	return nil, nil
}

func (s *inMemoryStore) ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error) {
	return nil, nil
}

func (s *inMemoryStore) UpdateSupplier(ctx context.Context, supplier *model.SupplierEntity) error {
	return nil
}

func (s *inMemoryStore) DeleteSupplier(ctx context.Context, id uint64) error { return nil }

func (s *inMemoryStore) CountSuppliers(ctx context.Context) (int64, error) { return 0, nil }

func (s *inMemoryStore) CreateLocation(ctx context.Context, tx *sqlx.Tx, loc *model.LocationEntity) (uint64, error) {
	return 0, nil
}

func (s *inMemoryStore) GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	return &model.LocationEntity{ID: id, Type: constant.LocationTypeWarehouse, Name: "Central Warehouse"}, nil
}

func (s *inMemoryStore) ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error) {
	return []model.LocationEntity{{ID: 1, Type: constant.LocationTypeWarehouse, Name: "Central Warehouse"}}, nil
}

func (s *inMemoryStore) UpdateLocation(ctx context.Context, loc *model.LocationEntity) error {
	return nil
}

func (s *inMemoryStore) DeleteLocation(ctx context.Context, id uint64) error { return nil }

func (s *inMemoryStore) CountLocations(ctx context.Context, locType constant.LocationType) (int64, error) {
	return 0, nil
}
