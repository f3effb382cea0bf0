package directory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
)

// DirectoryRepository persists the supplier and location directories and owns
// the code_sequence counter used for human-readable codes.
type DirectoryRepository interface {
	NextCodeTx(ctx context.Context, tx *sqlx.Tx, sequence string) (int64, error)

	CreateSupplier(ctx context.Context, tx *sqlx.Tx, supplier *model.SupplierEntity) (uint64, error)
	GetSupplierByID(ctx context.Context, id uint64) (*model.SupplierEntity, error)
	ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error)
	UpdateSupplier(ctx context.Context, supplier *model.SupplierEntity) error
	DeleteSupplier(ctx context.Context, id uint64) error
	CountSuppliers(ctx context.Context) (int64, error)

	CreateLocation(ctx context.Context, tx *sqlx.Tx, loc *model.LocationEntity) (uint64, error)
	GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error)
	ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error)
	UpdateLocation(ctx context.Context, loc *model.LocationEntity) error
	DeleteLocation(ctx context.Context, id uint64) error
	CountLocations(ctx context.Context, locType constant.LocationType) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewDirectoryRepository(conn *sqlx.DB) DirectoryRepository {
	return &SQL{conn: conn}
}

// NextCodeTx atomically increments a named sequence and returns the new
// value. The single UPDATE plus LAST_INSERT_ID() never hands the same value
// to two callers; rolling back the surrounding transaction rolls the counter
// back too.
func (r *SQL) NextCodeTx(ctx context.Context, tx *sqlx.Tx, sequence string) (int64, error) {
	if _, err := tx.ExecContext(ctx, "UPDATE code_sequence SET value = LAST_INSERT_ID(value + 1) WHERE name = ?", sequence); err != nil {
		return 0, err
	}
	var value int64
	if err := tx.GetContext(ctx, &value, "SELECT LAST_INSERT_ID()"); err != nil {
		return 0, err
	}
	return value, nil
}

const supplierColumns = "id, code, name, contact_person, email, phone, address, created_at, updated_at"

func (r *SQL) CreateSupplier(ctx context.Context, tx *sqlx.Tx, supplier *model.SupplierEntity) (uint64, error) {
	q := "INSERT INTO supplier (code, name, contact_person, email, phone, address, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())"
	res, err := tx.ExecContext(ctx, q, supplier.Code, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetSupplierByID(ctx context.Context, id uint64) (*model.SupplierEntity, error) {
	var entity model.SupplierEntity
	q := "SELECT " + supplierColumns + " FROM supplier WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) ListSuppliers(ctx context.Context) ([]model.SupplierEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT "+supplierColumns+" FROM supplier ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]model.SupplierEntity, 0)
	for rows.Next() {
		var entity model.SupplierEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, entity)
	}
	return suppliers, rows.Err()
}

func (r *SQL) UpdateSupplier(ctx context.Context, supplier *model.SupplierEntity) error {
	q := `UPDATE supplier SET name = ?, contact_person = ?, email = ?, phone = ?, address = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, q, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address, supplier.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *SQL) DeleteSupplier(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM supplier WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *SQL) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM supplier"); err != nil {
		return 0, err
	}
	return count, nil
}

const locationColumns = "id, code, loc_type, name, address, capacity, manager, phone, warehouse_id, created_at, updated_at"

func (r *SQL) CreateLocation(ctx context.Context, tx *sqlx.Tx, loc *model.LocationEntity) (uint64, error) {
	q := `INSERT INTO location (code, loc_type, name, address, capacity, manager, phone, warehouse_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	res, err := tx.ExecContext(ctx, q, loc.Code, loc.Type, loc.Name, loc.Address, loc.Capacity, loc.Manager, loc.Phone, loc.WarehouseID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetLocationByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	var entity model.LocationEntity
	q := "SELECT " + locationColumns + " FROM location WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) ListLocations(ctx context.Context, locType constant.LocationType) ([]model.LocationEntity, error) {
	query := "SELECT " + locationColumns + " FROM location WHERE true"
	args := make([]any, 0, 1)
	if locType != "" {
		query += " AND loc_type = ?"
		args = append(args, locType)
	}
	query += " ORDER BY id"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]model.LocationEntity, 0)
	for rows.Next() {
		var entity model.LocationEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		locations = append(locations, entity)
	}
	return locations, rows.Err()
}

func (r *SQL) UpdateLocation(ctx context.Context, loc *model.LocationEntity) error {
	q := `UPDATE location SET name = ?, address = ?, capacity = ?, manager = ?, phone = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, q, loc.Name, loc.Address, loc.Capacity, loc.Manager, loc.Phone, loc.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *SQL) DeleteLocation(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM location WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *SQL) CountLocations(ctx context.Context, locType constant.LocationType) (int64, error) {
	query := "SELECT COUNT(*) FROM location"
	args := make([]any, 0, 1)
	if locType != "" {
		query += " WHERE loc_type = ?"
		args = append(args, locType)
	}
	var count int64
	if err := r.conn.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FormatCode renders a sequence value as its human code, e.g. ORD-001.
func FormatCode(sequence string, value int64) string {
	prefix, ok := constant.SequenceCodePrefix[sequence]
	if !ok {
		prefix = strings.ToUpper(sequence)
	}
	return fmt.Sprintf("%s-%03d", prefix, value)
}
