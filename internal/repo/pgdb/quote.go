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

type QuoteRepo struct {
	*postgres.Postgres
}

func NewQuoteRepo(pgdb *postgres.Postgres) *QuoteRepo {
	return &QuoteRepo{pgdb}
}

const quoteColumns = "id, item_id, supplier_id, base_price, freight, additional_costs, tax_pct, margin_pct, notes, link, created_at, updated_at"

func (r *QuoteRepo) CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error) {
	itemId, err := uuid.Parse(input.ItemId)
	if err != nil {
		return uuid.Nil, err
	}
	supplierId, err := uuid.Parse(input.SupplierId)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("quote").
		Columns("item_id", "supplier_id", "base_price", "freight", "additional_costs", "tax_pct", "margin_pct", "notes", "link").
		Values(itemId, supplierId, input.BasePrice, input.Freight, input.AdditionalCosts,
			input.TaxPct, input.MarginPct, input.Notes, input.Link).
		Suffix("RETURNING id").
		ToSql()

	var quoteId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&quoteId); err != nil {
		return uuid.Nil, err
	}

	return quoteId, nil
}

func scanQuote(row squirrel.RowScanner) (*entity.Quote, error) {
	var quote entity.Quote
	err := row.Scan(&quote.Id, &quote.ItemId, &quote.SupplierId, &quote.BasePrice,
		&quote.Freight, &quote.AdditionalCosts, &quote.TaxPct, &quote.MarginPct,
		&quote.Notes, &quote.Link, &quote.CreatedAt, &quote.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *QuoteRepo) GetQuoteById(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("id = ?", id).
		ToSql()

	quote, err := scanQuote(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return quote, nil
}

func (r *QuoteRepo) GetAllQuotes(ctx context.Context) ([]entity.Quote, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		OrderBy("created_at ASC").
		ToSql()

	return r.queryQuotes(ctx, listSql, args)
}

func (r *QuoteRepo) GetQuotesByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Quote, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("item_id = ?", itemId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryQuotes(ctx, listSql, args)
}

func (r *QuoteRepo) GetQuotesBySupplierId(ctx context.Context, supplierId uuid.UUID) ([]entity.Quote, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("supplier_id = ?", supplierId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryQuotes(ctx, listSql, args)
}

func (r *QuoteRepo) queryQuotes(ctx context.Context, listSql string, args []interface{}) ([]entity.Quote, error) {
	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]entity.Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return quotes, err
		}
		quotes = append(quotes, *quote)
	}
	if err = rows.Err(); err != nil {
		return quotes, err
	}

	return quotes, nil
}

func (r *QuoteRepo) UpdateQuoteById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("quote").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *QuoteRepo) DeleteQuoteById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("quote").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}
