package repo

import (
	"context"
	"fmt"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo/pgdb"
	"procurement-management-api/pkg/postgres"

	"github.com/google/uuid"
)

// Fields is a partial update payload: persisted column name -> new value.
// Values are driver-ready (string, decimal.Decimal, time.Time or nil).
type Fields = pgdb.Fields

type Diagnostics interface {
	Ping() error
}

type Bidding interface {
	CreateBidding(ctx context.Context, input *entity.CreateBiddingInput) (uuid.UUID, error)
	GetBiddingById(ctx context.Context, id uuid.UUID) (*entity.Bidding, error)
	GetBiddings(ctx context.Context, pg *entity.PaginationInput) ([]entity.Bidding, error)
	GetAllBiddings(ctx context.Context) ([]entity.Bidding, error)
	UpdateBiddingById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteBiddingById(ctx context.Context, id uuid.UUID) error
}

type Item interface {
	CreateItem(ctx context.Context, input *entity.CreateItemInput) (uuid.UUID, error)
	GetItemById(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetAllItems(ctx context.Context) ([]entity.Item, error)
	GetItemsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Item, error)
	UpdateItemById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteItemById(ctx context.Context, id uuid.UUID) error
}

type Supplier interface {
	CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (uuid.UUID, error)
	GetSupplierById(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetAllSuppliers(ctx context.Context) ([]entity.Supplier, error)
	UpdateSupplierById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteSupplierById(ctx context.Context, id uuid.UUID) error
}

type Bidder interface {
	CreateBidder(ctx context.Context, input *entity.CreateBidderInput) (uuid.UUID, error)
	GetBidderById(ctx context.Context, id uuid.UUID) (*entity.Bidder, error)
	GetAllBidders(ctx context.Context) ([]entity.Bidder, error)
	UpdateBidderById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteBidderById(ctx context.Context, id uuid.UUID) error
}

type Quote interface {
	CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error)
	GetQuoteById(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetAllQuotes(ctx context.Context) ([]entity.Quote, error)
	GetQuotesByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Quote, error)
	GetQuotesBySupplierId(ctx context.Context, supplierId uuid.UUID) ([]entity.Quote, error)
	UpdateQuoteById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteQuoteById(ctx context.Context, id uuid.UUID) error
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id uuid.UUID) (*entity.Bid, error)
	GetAllBids(ctx context.Context) ([]entity.Bid, error)
	GetBidsByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Bid, error)
	GetBidsByBidderId(ctx context.Context, bidderId uuid.UUID) ([]entity.Bid, error)
	GetBidsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Bid, error)
	UpdateBidById(ctx context.Context, id uuid.UUID, fields Fields) error
	DeleteBidById(ctx context.Context, id uuid.UUID) error
}

// RecordStore is the kind-agnostic persistence contract the reconciliation
// engine depends on: one entity kind's update and delete, nothing else.
type RecordStore interface {
	Update(ctx context.Context, id uuid.UUID, fields Fields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Diagnostics
	Bidding
	Item
	Supplier
	Bidder
	Quote
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Bidding:     pgdb.NewBiddingRepo(p),
		Item:        pgdb.NewItemRepo(p),
		Supplier:    pgdb.NewSupplierRepo(p),
		Bidder:      pgdb.NewBidderRepo(p),
		Quote:       pgdb.NewQuoteRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}

// Store selects the RecordStore for one entity kind.
func (r *Repositories) Store(kind common.EntityKind) (RecordStore, error) {
	switch kind {
	case common.KindBidding:
		return biddingStore{r.Bidding}, nil
	case common.KindItem:
		return itemStore{r.Item}, nil
	case common.KindSupplier:
		return supplierStore{r.Supplier}, nil
	case common.KindBidder:
		return bidderStore{r.Bidder}, nil
	case common.KindQuote:
		return quoteStore{r.Quote}, nil
	case common.KindBid:
		return bidStore{r.Bid}, nil
	}

	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

type biddingStore struct{ Bidding }

func (s biddingStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateBiddingById(ctx, id, fields)
}

func (s biddingStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteBiddingById(ctx, id)
}

type itemStore struct{ Item }

func (s itemStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateItemById(ctx, id, fields)
}

func (s itemStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteItemById(ctx, id)
}

type supplierStore struct{ Supplier }

func (s supplierStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateSupplierById(ctx, id, fields)
}

func (s supplierStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteSupplierById(ctx, id)
}

type bidderStore struct{ Bidder }

func (s bidderStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateBidderById(ctx, id, fields)
}

func (s bidderStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteBidderById(ctx, id)
}

type quoteStore struct{ Quote }

func (s quoteStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateQuoteById(ctx, id, fields)
}

func (s quoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteQuoteById(ctx, id)
}

type bidStore struct{ Bid }

func (s bidStore) Update(ctx context.Context, id uuid.UUID, fields Fields) error {
	return s.UpdateBidById(ctx, id, fields)
}

func (s bidStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteBidById(ctx, id)
}
