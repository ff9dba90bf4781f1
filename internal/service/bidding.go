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

type BiddingService struct {
	biddingRepo repo.Bidding
	itemRepo    repo.Item
}

func NewBiddingService(repos *repo.Repositories) *BiddingService {
	return &BiddingService{
		biddingRepo: repos.Bidding,
		itemRepo:    repos.Item,
	}
}

func (s *BiddingService) CreateBidding(ctx context.Context, input *entity.CreateBiddingInput) (*entity.BiddingOutputModel, error) {
	if input.Mode != common.InPerson && input.Mode != common.Electronic {
		return nil, ErrUnknownBiddingMode
	}

	id, err := s.biddingRepo.CreateBidding(ctx, input)
	if err != nil {
		return nil, err
	}

	bidding, err := s.biddingRepo.GetBiddingById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapBidding(bidding), nil
}

func (s *BiddingService) GetBiddings(ctx context.Context, pg *entity.PaginationInput) ([]entity.BiddingOutputModel, error) {
	biddings, err := s.biddingRepo.GetBiddings(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapBiddings(biddings), nil
}

func (s *BiddingService) GetBiddingItems(ctx context.Context, biddingId string) ([]entity.ItemOutputModel, error) {
	id, err := uuid.Parse(biddingId)
	if err != nil {
		return nil, ErrBiddingNotFound
	}

	if _, err := s.biddingRepo.GetBiddingById(ctx, id); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBiddingNotFound
		}

		return nil, err
	}

	items, err := s.itemRepo.GetItemsByBiddingId(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapItems(items), nil
}

func (s *BiddingService) CreateItem(ctx context.Context, input *entity.CreateItemInput) (*entity.ItemOutputModel, error) {
	if input.Quantity.IsNegative() {
		return nil, ErrQuantityNegative
	}

	biddingId, err := uuid.Parse(input.BiddingId)
	if err != nil {
		return nil, ErrBiddingNotFound
	}
	if _, err := s.biddingRepo.GetBiddingById(ctx, biddingId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBiddingNotFound
		}

		return nil, err
	}

	id, err := s.itemRepo.CreateItem(ctx, input)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetItemById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapItem(item), nil
}
