package service

import (
	"context"
	"fmt"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// CascadeService removes a record together with every record that
// references it, across the fixed dependency graph:
//
//	Bidding  -> Item -> {Quote, Bid}
//	Item     -> {Quote, Bid}
//	Supplier -> {Quote}
//	Bidder   -> {Bid}
//
// The cascade is best-effort: a failing dependent delete is recorded and
// the remaining deletions still run. The operation as a whole succeeds
// only if the root record itself is deleted.
type CascadeService struct {
	biddingRepo  repo.Bidding
	itemRepo     repo.Item
	supplierRepo repo.Supplier
	bidderRepo   repo.Bidder
	quoteRepo    repo.Quote
	bidRepo      repo.Bid
}

func NewCascadeService(repos *repo.Repositories) *CascadeService {
	return &CascadeService{
		biddingRepo:  repos.Bidding,
		itemRepo:     repos.Item,
		supplierRepo: repos.Supplier,
		bidderRepo:   repos.Bidder,
		quoteRepo:    repos.Quote,
		bidRepo:      repos.Bid,
	}
}

// cascadeRun accumulates per-record outcomes of one cascade.
type cascadeRun struct {
	report   *entity.CascadeReport
	failures *multierror.Error
}

func (c *cascadeRun) fail(format string, args ...interface{}) {
	c.failures = multierror.Append(c.failures, fmt.Errorf(format, args...))
}

func (c *cascadeRun) count(kind common.EntityKind) {
	c.report.Deleted[string(kind)]++
}

func (s *CascadeService) DeleteWithCascade(ctx context.Context, kind common.EntityKind, id uuid.UUID) (*entity.CascadeReport, error) {
	run := &cascadeRun{
		report: &entity.CascadeReport{
			Kind:    string(kind),
			Id:      id.String(),
			Deleted: make(map[string]int),
		},
	}

	var rootErr error
	switch kind {
	case common.KindBidding:
		s.deleteBiddingDependents(ctx, id, run)
		rootErr = s.biddingRepo.DeleteBiddingById(ctx, id)
	case common.KindItem:
		s.deleteItemQuotes(ctx, id, run)
		s.deleteItemBids(ctx, id, run)
		rootErr = s.itemRepo.DeleteItemById(ctx, id)
	case common.KindSupplier:
		s.deleteSupplierQuotes(ctx, id, run)
		rootErr = s.supplierRepo.DeleteSupplierById(ctx, id)
	case common.KindBidder:
		s.deleteBidderBids(ctx, id, run)
		rootErr = s.bidderRepo.DeleteBidderById(ctx, id)
	case common.KindQuote:
		rootErr = s.quoteRepo.DeleteQuoteById(ctx, id)
	case common.KindBid:
		rootErr = s.bidRepo.DeleteBidById(ctx, id)
	default:
		return nil, ErrUnknownEntityKind
	}

	for _, failure := range run.failures.WrappedErrors() {
		run.report.Failures = append(run.report.Failures, failure.Error())
	}

	if rootErr != nil {
		return run.report, fmt.Errorf("deleting %s %s: %w", kind, id, rootErr)
	}

	run.report.RootDeleted = true
	run.count(kind)

	return run.report, nil
}

// deleteBiddingDependents removes the bidding's bids through the
// denormalized bidding_id first, then each item with its quotes.
func (s *CascadeService) deleteBiddingDependents(ctx context.Context, id uuid.UUID, run *cascadeRun) {
	bids, err := s.bidRepo.GetBidsByBiddingId(ctx, id)
	if err != nil {
		run.fail("listing bids of bidding %s: %v", id, err)
	}
	for _, bid := range bids {
		if err := s.bidRepo.DeleteBidById(ctx, bid.Id); err != nil {
			run.fail("deleting bid %s: %v", bid.Id, err)
			continue
		}
		run.count(common.KindBid)
	}

	items, err := s.itemRepo.GetItemsByBiddingId(ctx, id)
	if err != nil {
		run.fail("listing items of bidding %s: %v", id, err)
	}
	for _, item := range items {
		s.deleteItemQuotes(ctx, item.Id, run)
		if err := s.itemRepo.DeleteItemById(ctx, item.Id); err != nil {
			run.fail("deleting item %s: %v", item.Id, err)
			continue
		}
		run.count(common.KindItem)
	}
}

func (s *CascadeService) deleteItemQuotes(ctx context.Context, itemId uuid.UUID, run *cascadeRun) {
	quotes, err := s.quoteRepo.GetQuotesByItemId(ctx, itemId)
	if err != nil {
		run.fail("listing quotes of item %s: %v", itemId, err)
	}
	for _, quote := range quotes {
		if err := s.quoteRepo.DeleteQuoteById(ctx, quote.Id); err != nil {
			run.fail("deleting quote %s: %v", quote.Id, err)
			continue
		}
		run.count(common.KindQuote)
	}
}

func (s *CascadeService) deleteItemBids(ctx context.Context, itemId uuid.UUID, run *cascadeRun) {
	bids, err := s.bidRepo.GetBidsByItemId(ctx, itemId)
	if err != nil {
		run.fail("listing bids of item %s: %v", itemId, err)
	}
	for _, bid := range bids {
		if err := s.bidRepo.DeleteBidById(ctx, bid.Id); err != nil {
			run.fail("deleting bid %s: %v", bid.Id, err)
			continue
		}
		run.count(common.KindBid)
	}
}

func (s *CascadeService) deleteSupplierQuotes(ctx context.Context, supplierId uuid.UUID, run *cascadeRun) {
	quotes, err := s.quoteRepo.GetQuotesBySupplierId(ctx, supplierId)
	if err != nil {
		run.fail("listing quotes of supplier %s: %v", supplierId, err)
	}
	for _, quote := range quotes {
		if err := s.quoteRepo.DeleteQuoteById(ctx, quote.Id); err != nil {
			run.fail("deleting quote %s: %v", quote.Id, err)
			continue
		}
		run.count(common.KindQuote)
	}
}

func (s *CascadeService) deleteBidderBids(ctx context.Context, bidderId uuid.UUID, run *cascadeRun) {
	bids, err := s.bidRepo.GetBidsByBidderId(ctx, bidderId)
	if err != nil {
		run.fail("listing bids of bidder %s: %v", bidderId, err)
	}
	for _, bid := range bids {
		if err := s.bidRepo.DeleteBidById(ctx, bid.Id); err != nil {
			run.fail("deleting bid %s: %v", bid.Id, err)
			continue
		}
		run.count(common.KindBid)
	}
}
