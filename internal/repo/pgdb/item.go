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

type ItemRepo struct {
	*postgres.Postgres
}

func NewItemRepo(pgdb *postgres.Postgres) *ItemRepo {
	return &ItemRepo{pgdb}
}

const itemColumns = "id, bidding_id, code, name, description, unit, quantity, notes, created_at, updated_at"

func (r *ItemRepo) CreateItem(ctx context.Context, input *entity.CreateItemInput) (uuid.UUID, error) {
	biddingId, err := uuid.Parse(input.BiddingId)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("item").
		Columns("bidding_id", "code", "name", "description", "unit", "quantity", "notes").
		Values(biddingId, input.Code, input.Name, input.Description, input.Unit, input.Quantity, input.Notes).
		Suffix("RETURNING id").
		ToSql()

	var itemId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&itemId); err != nil {
		return uuid.Nil, err
	}

	return itemId, nil
}

func scanItem(row squirrel.RowScanner) (*entity.Item, error) {
	var item entity.Item
	err := row.Scan(&item.Id, &item.BiddingId, &item.Code, &item.Name, &item.Description,
		&item.Unit, &item.Quantity, &item.Notes, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepo) GetItemById(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(itemColumns).
		From("item").
		Where("id = ?", id).
		ToSql()

	item, err := scanItem(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return item, nil
}

func (r *ItemRepo) GetAllItems(ctx context.Context) ([]entity.Item, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(itemColumns).
		From("item").
		OrderBy("code ASC").
		ToSql()

	return r.queryItems(ctx, listSql, args)
}

func (r *ItemRepo) GetItemsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Item, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(itemColumns).
		From("item").
		Where("bidding_id = ?", biddingId).
		OrderBy("code ASC").
		ToSql()

	return r.queryItems(ctx, listSql, args)
}

func (r *ItemRepo) queryItems(ctx context.Context, listSql string, args []interface{}) ([]entity.Item, error) {
	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return items, err
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return items, err
	}

	return items, nil
}

func (r *ItemRepo) UpdateItemById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("item").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *ItemRepo) DeleteItemById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("item").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}
