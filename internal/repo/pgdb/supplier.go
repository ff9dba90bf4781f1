package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo/repo_errors"
	"procurement-management-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type SupplierRepo struct {
	*postgres.Postgres
}

func NewSupplierRepo(pgdb *postgres.Postgres) *SupplierRepo {
	return &SupplierRepo{pgdb}
}

const supplierColumns = "id, name, website, email, phone, description, created_at, updated_at"

func (r *SupplierRepo) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("supplier").
		Columns("name", "website", "email", "phone", "description").
		Values(input.Name, input.Website, input.Email, input.Phone, input.Description).
		Suffix("RETURNING id").
		ToSql()

	var supplierId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&supplierId); err != nil {
		return uuid.Nil, err
	}

	return supplierId, nil
}

func scanSupplier(row squirrel.RowScanner) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := row.Scan(&supplier.Id, &supplier.Name, &supplier.Website, &supplier.Email,
		&supplier.Phone, &supplier.Description, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &supplier, nil
}

func (r *SupplierRepo) GetSupplierById(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(supplierColumns).
		From("supplier").
		Where("id = ?", id).
		ToSql()

	supplier, err := scanSupplier(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return supplier, nil
}

func (r *SupplierRepo) GetAllSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(supplierColumns).
		From("supplier").
		OrderBy("name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]entity.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return suppliers, err
		}
		suppliers = append(suppliers, *supplier)
	}
	if err = rows.Err(); err != nil {
		return suppliers, err
	}

	return suppliers, nil
}

func (r *SupplierRepo) UpdateSupplierById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("supplier").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *SupplierRepo) DeleteSupplierById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("supplier").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}
