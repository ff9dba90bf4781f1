package service

import (
	"context"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Bidding interface {
	CreateBidding(ctx context.Context, input *entity.CreateBiddingInput) (*entity.BiddingOutputModel, error)
	GetBiddings(ctx context.Context, pg *entity.PaginationInput) ([]entity.BiddingOutputModel, error)
	GetBiddingItems(ctx context.Context, biddingId string) ([]entity.ItemOutputModel, error)
	CreateItem(ctx context.Context, input *entity.CreateItemInput) (*entity.ItemOutputModel, error)
}

type Party interface {
	CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (*entity.SupplierOutputModel, error)
	GetSuppliers(ctx context.Context) ([]entity.SupplierOutputModel, error)
	CreateBidder(ctx context.Context, input *entity.CreateBidderInput) (*entity.BidderOutputModel, error)
	GetBidders(ctx context.Context) ([]entity.BidderOutputModel, error)
}

type Trade interface {
	CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (*entity.QuoteOutputModel, error)
	GetQuoteSalePrice(ctx context.Context, quoteId string) (string, error)
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
}

type Grid interface {
	BuildSnapshot(ctx context.Context, kind common.EntityKind) (*entity.Snapshot, []string, error)
	SaveSnapshot(ctx context.Context, kind common.EntityKind, baseline, edited *entity.Snapshot) (*entity.GridSaveReport, error)
	DeleteWithCascade(ctx context.Context, kind common.EntityKind, id uuid.UUID) (*entity.CascadeReport, error)
}

type Services struct {
	Diagnostics Diagnostics
	Bidding     Bidding
	Party       Party
	Trade       Trade
	Grid        Grid
}

func NewServices(repos *repo.Repositories) (*Services, error) {
	grid, err := NewGridService(repos)
	if err != nil {
		return nil, err
	}

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Bidding:     NewBiddingService(repos),
		Party:       NewPartyService(repos),
		Trade:       NewTradeService(repos),
		Grid:        grid,
	}, nil
}
