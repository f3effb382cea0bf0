package ledger

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supply-chain/model"
)

// LedgerRepository is append-only: there is deliberately no update or delete.
type LedgerRepository interface {
	// AppendTx writes a transaction in the same database transaction as the
	// stock mutation it records, so both commit or neither does.
	AppendTx(ctx context.Context, tx *sqlx.Tx, txn *model.StockTransaction) (uint64, error)
	Query(ctx context.Context, filter *model.LedgerFilter) ([]model.StockTransaction, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLedgerRepository(conn *sqlx.DB) LedgerRepository {
	return &SQL{conn: conn}
}

const insertTransactionQuery = `INSERT INTO stock_transaction
	(location_id, location_name, product_name, delta_qty, unit, previous_qty, new_qty, reason, actor_id, actor_name, notes, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *SQL) AppendTx(ctx context.Context, tx *sqlx.Tx, txn *model.StockTransaction) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertTransactionQuery,
		txn.LocationID, txn.LocationName, txn.Product, txn.DeltaQty, txn.Unit,
		txn.PreviousQty, txn.NewQty, txn.Reason, txn.ActorID, txn.ActorName, txn.Notes, txn.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Query(ctx context.Context, filter *model.LedgerFilter) ([]model.StockTransaction, error) {
	query := `SELECT id, location_id, location_name, product_name, delta_qty, unit, previous_qty, new_qty, reason, actor_id, actor_name, notes, created_at
		FROM stock_transaction WHERE true`
	args := make([]any, 0, 4)

	if filter != nil {
		if filter.LocationID != 0 {
			query += " AND location_id = ?"
			args = append(args, filter.LocationID)
		}
		if filter.Product != "" {
			query += " AND product_name = ?"
			args = append(args, filter.Product)
		}
		if filter.From != nil {
			query += " AND created_at >= ?"
			args = append(args, *filter.From)
		}
		if filter.To != nil {
			query += " AND created_at <= ?"
			args = append(args, *filter.To)
		}
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]model.StockTransaction, 0)
	for rows.Next() {
		var txn model.StockTransaction
		if err := rows.StructScan(&txn); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
