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

type BiddingRepo struct {
	*postgres.Postgres
}

func NewBiddingRepo(pgdb *postgres.Postgres) *BiddingRepo {
	return &BiddingRepo{pgdb}
}

const biddingColumns = "id, city, date, mode, process_number, created_at, updated_at"

func (r *BiddingRepo) CreateBidding(ctx context.Context, input *entity.CreateBiddingInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("bidding").
		Columns("city", "date", "mode", "process_number").
		Values(input.City, input.Date, input.Mode, input.ProcessNumber).
		Suffix("RETURNING id").
		ToSql()

	var biddingId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&biddingId)
	if err != nil {
		return uuid.Nil, err
	}

	return biddingId, nil
}

func scanBidding(row squirrel.RowScanner) (*entity.Bidding, error) {
	var bidding entity.Bidding
	err := row.Scan(&bidding.Id, &bidding.City, &bidding.Date, &bidding.Mode,
		&bidding.ProcessNumber, &bidding.CreatedAt, &bidding.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &bidding, nil
}

func (r *BiddingRepo) GetBiddingById(ctx context.Context, id uuid.UUID) (*entity.Bidding, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(biddingColumns).
		From("bidding").
		Where("id = ?", id).
		ToSql()

	bidding, err := scanBidding(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bidding, nil
}

func (r *BiddingRepo) GetBiddings(ctx context.Context, pg *entity.PaginationInput) ([]entity.Bidding, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(biddingColumns).
		From("bidding").
		OrderBy("date DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBiddings(ctx, listSql, args)
}

func (r *BiddingRepo) GetAllBiddings(ctx context.Context) ([]entity.Bidding, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(biddingColumns).
		From("bidding").
		OrderBy("date DESC").
		ToSql()

	return r.queryBiddings(ctx, listSql, args)
}

func (r *BiddingRepo) queryBiddings(ctx context.Context, listSql string, args []interface{}) ([]entity.Bidding, error) {
	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	biddings := make([]entity.Bidding, 0)
	for rows.Next() {
		bidding, err := scanBidding(rows)
		if err != nil {
			return biddings, err
		}
		biddings = append(biddings, *bidding)
	}
	if err = rows.Err(); err != nil {
		return biddings, err
	}

	return biddings, nil
}

func (r *BiddingRepo) UpdateBiddingById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("bidding").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *BiddingRepo) DeleteBiddingById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("bidding").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}

// execExpectingRow runs a statement that must touch exactly the addressed
// row; zero affected rows maps to ErrNotFound.
func execExpectingRow(ctx context.Context, db *sql.DB, query string, args []interface{}) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
