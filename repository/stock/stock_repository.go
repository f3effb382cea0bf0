package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supply-chain/model"
)

type StockRepository interface {
	// GetItemTx reads one stock row under a row lock. Concurrent deltas
	// against the same (location, product) serialize on this lock.
	GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error)
	// UpsertItemTx adds delta to the stored quantity, inserting the row when
	// absent. The update is relative so it stays correct at any isolation
	// level; the caller validates the resulting quantity under the row lock.
	UpsertItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string, delta int64, unit string) error
	GetQuantity(ctx context.Context, locationID uint64, product string) (int64, error)
	ListByLocation(ctx context.Context, locationID uint64) ([]model.StockItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string) (*model.StockItem, error) {
	var item model.StockItem
	q := "SELECT id, location_id, product_name, qty, unit FROM stock_item WHERE location_id = ? AND product_name = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, locationID, product).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) UpsertItemTx(ctx context.Context, tx *sqlx.Tx, locationID uint64, product string, delta int64, unit string) error {
	q := `INSERT INTO stock_item (location_id, product_name, qty, unit) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE qty = qty + VALUES(qty), unit = VALUES(unit)`
	_, err := tx.ExecContext(ctx, q, locationID, product, delta, unit)
	return err
}

func (r *SQL) GetQuantity(ctx context.Context, locationID uint64, product string) (int64, error) {
	var qty sql.NullInt64
	q := "SELECT COALESCE(SUM(qty), 0) FROM stock_item WHERE location_id = ? AND product_name = ?"
	if err := r.conn.GetContext(ctx, &qty, q, locationID, product); err != nil {
		return 0, err
	}
	if !qty.Valid {
		return 0, nil
	}
	return qty.Int64, nil
}

func (r *SQL) ListByLocation(ctx context.Context, locationID uint64) ([]model.StockItem, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, location_id, product_name, qty, unit FROM stock_item WHERE location_id = ? ORDER BY product_name", locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StockItem, 0)
	for rows.Next() {
		var item model.StockItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
