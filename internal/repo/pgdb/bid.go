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

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

const bidColumns = "id, item_id, bidding_id, bidder_id, price, notes, created_at, updated_at"

func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	itemId, err := uuid.Parse(input.ItemId)
	if err != nil {
		return uuid.Nil, err
	}
	biddingId, err := uuid.Parse(input.BiddingId)
	if err != nil {
		return uuid.Nil, err
	}

	var bidderId interface{}
	if input.BidderId != nil {
		parsed, err := uuid.Parse(*input.BidderId)
		if err != nil {
			return uuid.Nil, err
		}
		bidderId = parsed
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("item_id", "bidding_id", "bidder_id", "price", "notes").
		Values(itemId, biddingId, bidderId, input.Price, input.Notes).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&bidId); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func scanBid(row squirrel.RowScanner) (*entity.Bid, error) {
	var bid entity.Bid
	var bidderId uuid.NullUUID
	err := row.Scan(&bid.Id, &bid.ItemId, &bid.BiddingId, &bidderId,
		&bid.Price, &bid.Notes, &bid.CreatedAt, &bid.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if bidderId.Valid {
		bid.BidderId = &bidderId.UUID
	}

	return &bid, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id uuid.UUID) (*entity.Bid, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", id).
		ToSql()

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetAllBids(ctx context.Context) ([]entity.Bid, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		OrderBy("created_at ASC").
		ToSql()

	return r.queryBids(ctx, listSql, args)
}

func (r *BidRepo) GetBidsByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Bid, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("item_id = ?", itemId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryBids(ctx, listSql, args)
}

func (r *BidRepo) GetBidsByBidderId(ctx context.Context, bidderId uuid.UUID) ([]entity.Bid, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("bidder_id = ?", bidderId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryBids(ctx, listSql, args)
}

// GetBidsByBiddingId uses the denormalized bidding_id column so the
// bidding-level cascade never has to walk through items.
func (r *BidRepo) GetBidsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Bid, error) {
	listSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("bidding_id = ?", biddingId).
		OrderBy("created_at ASC").
		ToSql()

	return r.queryBids(ctx, listSql, args)
}

func (r *BidRepo) queryBids(ctx context.Context, listSql string, args []interface{}) ([]entity.Bid, error) {
	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return bids, err
		}
		bids = append(bids, *bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) UpdateBidById(ctx context.Context, id uuid.UUID, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("bid").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, updateSql, args)
}

func (r *BidRepo) DeleteBidById(ctx context.Context, id uuid.UUID) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("bid").
		Where("id = ?", id).
		ToSql()

	return execExpectingRow(ctx, r.Database, deleteSql, args)
}
