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

type BidderRepo struct {
	*postgres.Postgres
}

func NewBidderRepo(pgdb *postgres.Postgres) *BidderRepo {
	return &BidderRepo{pgdb}
}

const bidderColumns = "id, name, website, email, phone, description, created_at, updated_at"

func (r *BidderRepo) CreateBidder(ctx context.Context, input *entity.CreateBidderInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("bidder").
		Columns("name", "website", "email", "phone", "description").
		Values(input.Name, input.Website, input.Email, input.Phone, input.Description).
		Suffix("RETURNING id").
		ToSql()

	var bidderId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&bidderId); err != nil {
		return uuid.Nil, err
	}

	return bidderId, nil
}

func scanBidder(row squirrel.RowScanner) (*entity.Bidder, error) {
	var bidder entity.Bidder
	err := row.Scan(&bidder.Id, &bidder.Name, &bidder.Website, &bidder.Email,
		&bidder.Phone, &bidder.Description, &bidder.CreatedAt, &bidder.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &bidder, nil
}

func (r *BidderRepo) GetBidderById(ctx context.Context, id uuid.UUID) (*entity.Bidder, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(bidderColumns).
		From("bidder").
		Where("id = ?", id).
		ToSql()

	bidder, err := scanBidder(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bidder, nil
}

func (r *BidderRepo) GetAllBidders(ctx context.Context) ([]entity.Bidder, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(bidderColumns).
		From("bidder").
		OrderBy("name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bidders := make([]entity.Bidder, 0)
	for rows.Next() {
		bidder, err := scanBidder(rows)
		if err != nil {
			return bidders, err
		}
		bidders = append(bidders, *bidder)
	}
	if err = rows.Err(); err != nil {
		return bidders, err
	}

	return bidders, nil
}

func (r *BidderRepo) UpdateBidderById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("bidder").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *BidderRepo) DeleteBidderById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("bidder").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}
