package service

import (
	"context"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"
)

// PartyService manages the two participant registries: suppliers who
// quote costs and bidders who compete in biddings.
type PartyService struct {
	supplierRepo repo.Supplier
	bidderRepo   repo.Bidder
}

func NewPartyService(repos *repo.Repositories) *PartyService {
	return &PartyService{
		supplierRepo: repos.Supplier,
		bidderRepo:   repos.Bidder,
	}
}

func (s *PartyService) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (*entity.SupplierOutputModel, error) {
	// Supplier names are unique; the database enforces it too, but checking
	// here keeps the error a sentinel instead of a driver error.
	suppliers, err := s.supplierRepo.GetAllSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for _, supplier := range suppliers {
		if supplier.Name == input.Name {
			return nil, ErrSupplierNameTaken
		}
	}

	id, err := s.supplierRepo.CreateSupplier(ctx, input)
	if err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.GetSupplierById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *PartyService) GetSuppliers(ctx context.Context) ([]entity.SupplierOutputModel, error) {
	suppliers, err := s.supplierRepo.GetAllSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	return mapSuppliers(suppliers), nil
}

func (s *PartyService) CreateBidder(ctx context.Context, input *entity.CreateBidderInput) (*entity.BidderOutputModel, error) {
	bidders, err := s.bidderRepo.GetAllBidders(ctx)
	if err != nil {
		return nil, err
	}
	for _, bidder := range bidders {
		if bidder.Name == input.Name {
			return nil, ErrBidderNameTaken
		}
	}

	id, err := s.bidderRepo.CreateBidder(ctx, input)
	if err != nil {
		return nil, err
	}

	bidder, err := s.bidderRepo.GetBidderById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapBidder(bidder), nil
}

func (s *PartyService) GetBidders(ctx context.Context) ([]entity.BidderOutputModel, error) {
	bidders, err := s.bidderRepo.GetAllBidders(ctx)
	if err != nil {
		return nil, err
	}

	return mapBidders(bidders), nil
}
