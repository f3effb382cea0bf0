package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supply-chain/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	// GetOrderForUpdateTx locks the order row so concurrent transitions
	// against the same order serialize.
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	UpdateOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error
	UpdateItemApprovedQtyTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, product string, approvedQty int64) error
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const orderColumns = `id, order_code, store_id, store_name, warehouse_id, warehouse_name, supplier_id, supplier_name,
	status, priority, requested_date, approved_date, dispatched_date, delivered_date,
	requested_by_id, requested_by_name, approved_by_id, approved_by_name, delivery_agent, notes, last_updated`

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (uint64, error) {
	q := `INSERT INTO purchase_order
		(order_code, store_id, store_name, warehouse_id, warehouse_name, supplier_id, supplier_name,
		status, priority, requested_date, requested_by_id, requested_by_name, notes, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		order.OrderCode, order.StoreID, order.StoreName, order.WarehouseID, order.WarehouseName,
		order.SupplierID, order.SupplierName, order.Status, order.Priority,
		order.RequestedDate, order.RequestedByID, order.RequestedByName, order.Notes, order.LastUpdated)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	q := "INSERT INTO purchase_order_item (order_id, product_name, requested_qty, approved_qty, unit) VALUES (?, ?, ?, ?, ?)"
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, item.Product, item.RequestedQty, item.ApprovedQty, item.Unit); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	q := "SELECT " + orderColumns + " FROM purchase_order WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, orderID).StructScan(&order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.getItemsTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *SQL) getItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, order_id, product_name, requested_qty, approved_qty, unit FROM purchase_order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQL) UpdateOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) error {
	q := `UPDATE purchase_order SET status = ?, approved_date = ?, dispatched_date = ?, delivered_date = ?,
		approved_by_id = ?, approved_by_name = ?, delivery_agent = ?, notes = ?, last_updated = ?
		WHERE id = ?`
	_, err := tx.ExecContext(ctx, q,
		order.Status, order.ApprovedDate, order.DispatchedDate, order.DeliveredDate,
		order.ApprovedByID, order.ApprovedByName, order.DeliveryAgent, order.Notes, order.LastUpdated,
		order.ID)
	return err
}

func (r *SQL) UpdateItemApprovedQtyTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, product string, approvedQty int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE purchase_order_item SET approved_qty = ? WHERE order_id = ? AND product_name = ?", approvedQty, orderID, product)
	return err
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	q := "SELECT " + orderColumns + " FROM purchase_order WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, orderID).StructScan(&order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, "SELECT id, order_id, product_name, requested_qty, approved_qty, unit FROM purchase_order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *SQL) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	query := "SELECT " + orderColumns + " FROM purchase_order WHERE true"
	args := make([]any, 0, 4)

	if filter != nil {
		if filter.Status != "" {
			query += " AND status = ?"
			args = append(args, filter.Status)
		}
		if filter.Priority != "" {
			query += " AND priority = ?"
			args = append(args, filter.Priority)
		}
		if filter.StoreID != 0 {
			query += " AND store_id = ?"
			args = append(args, filter.StoreID)
		}
		if filter.WarehouseID != 0 {
			query += " AND warehouse_id = ?"
			args = append(args, filter.WarehouseID)
		}
	}
	query += " ORDER BY id"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var order model.OrderEntity
		if err := rows.StructScan(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		itemRows, err := r.conn.QueryxContext(ctx, "SELECT id, order_id, product_name, requested_qty, approved_qty, unit FROM purchase_order_item WHERE order_id = ? ORDER BY id", orders[i].ID)
		if err != nil {
			return nil, err
		}
		items, err := scanItems(itemRows)
		itemRows.Close()
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func scanItems(rows *sqlx.Rows) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var item model.OrderItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
