package service

import (
	"context"
	"errors"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"
	"procurement-management-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// TradeService manages cost quotes and competitor bids on items.
type TradeService struct {
	itemRepo     repo.Item
	supplierRepo repo.Supplier
	bidderRepo   repo.Bidder
	quoteRepo    repo.Quote
	bidRepo      repo.Bid
}

func NewTradeService(repos *repo.Repositories) *TradeService {
	return &TradeService{
		itemRepo:     repos.Item,
		supplierRepo: repos.Supplier,
		bidderRepo:   repos.Bidder,
		quoteRepo:    repos.Quote,
		bidRepo:      repos.Bid,
	}
}

func (s *TradeService) CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (*entity.QuoteOutputModel, error) {
	if !input.BasePrice.IsPositive() {
		return nil, ErrBasePriceNotPositive
	}

	itemId, err := uuid.Parse(input.ItemId)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if _, err := s.itemRepo.GetItemById(ctx, itemId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	supplierId, err := uuid.Parse(input.SupplierId)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	if _, err := s.supplierRepo.GetSupplierById(ctx, supplierId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}

	id, err := s.quoteRepo.CreateQuote(ctx, input)
	if err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetQuoteById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapQuote(quote), nil
}

// GetQuoteSalePrice computes the sellable price for one quote.
func (s *TradeService) GetQuoteSalePrice(ctx context.Context, quoteId string) (string, error) {
	id, err := uuid.Parse(quoteId)
	if err != nil {
		return "", ErrQuoteNotFound
	}

	quote, err := s.quoteRepo.GetQuoteById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return "", ErrQuoteNotFound
		}

		return "", err
	}

	return QuoteSalePrice(quote).StringFixed(2), nil
}

// CreateBid stores a bid. The bidding reference is denormalized onto the
// bid and must match the item's bidding. A nil bidder is a valid,
// unassigned bid.
func (s *TradeService) CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	itemId, err := uuid.Parse(input.ItemId)
	if err != nil {
		return nil, ErrItemNotFound
	}
	item, err := s.itemRepo.GetItemById(ctx, itemId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	if item.BiddingId.String() != input.BiddingId {
		return nil, ErrBidBiddingMismatch
	}

	bidderName := common.UnassignedBidderLabel
	if input.BidderId != nil {
		bidderId, err := uuid.Parse(*input.BidderId)
		if err != nil {
			return nil, ErrBidderNotFound
		}
		bidder, err := s.bidderRepo.GetBidderById(ctx, bidderId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrBidderNotFound
			}

			return nil, err
		}
		bidderName = bidder.Name
	}

	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapBid(bid, bidderName), nil
}
