package service_test

import (
	"context"
	"errors"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"
	"procurement-management-api/internal/service"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// cascadeFixture is one bidding with two items, a quote and a bid on each
// item, plus an unrelated bidding that must survive every cascade.
type cascadeFixture struct {
	repos     *repo.Repositories
	biddings  *mockBiddingRepo
	items     *mockItemRepo
	suppliers *mockSupplierRepo
	bidders   *mockBidderRepo
	quotes    *mockQuoteRepo
	bids      *mockBidRepo

	biddingId  uuid.UUID
	otherId    uuid.UUID
	itemIds    []uuid.UUID
	supplierId uuid.UUID
	bidderId   uuid.UUID
	quoteIds   []uuid.UUID
	bidIds     []uuid.UUID
}

func newCascadeFixture() *cascadeFixture {
	f := &cascadeFixture{
		biddingId:  uuid.New(),
		otherId:    uuid.New(),
		supplierId: uuid.New(),
		bidderId:   uuid.New(),
	}

	f.biddings = &mockBiddingRepo{biddings: []entity.Bidding{
		{Id: f.biddingId, ProcessNumber: "PA-2026-001"},
		{Id: f.otherId, ProcessNumber: "PA-2026-002"},
	}}
	f.suppliers = &mockSupplierRepo{suppliers: []entity.Supplier{{Id: f.supplierId, Name: "Acme"}}}
	f.bidders = &mockBidderRepo{bidders: []entity.Bidder{{Id: f.bidderId, Name: "Globex"}}}

	f.items = &mockItemRepo{}
	f.quotes = &mockQuoteRepo{}
	f.bids = &mockBidRepo{}
	for i := 0; i < 2; i++ {
		itemId := uuid.New()
		quoteId := uuid.New()
		bidId := uuid.New()
		f.itemIds = append(f.itemIds, itemId)
		f.quoteIds = append(f.quoteIds, quoteId)
		f.bidIds = append(f.bidIds, bidId)

		f.items.items = append(f.items.items, entity.Item{Id: itemId, BiddingId: f.biddingId})
		f.quotes.quotes = append(f.quotes.quotes, entity.Quote{Id: quoteId, ItemId: itemId, SupplierId: f.supplierId})
		bidderId := f.bidderId
		f.bids.bids = append(f.bids.bids, entity.Bid{Id: bidId, ItemId: itemId, BiddingId: f.biddingId, BidderId: &bidderId})
	}

	f.repos = &repo.Repositories{
		Bidding:  f.biddings,
		Item:     f.items,
		Supplier: f.suppliers,
		Bidder:   f.bidders,
		Quote:    f.quotes,
		Bid:      f.bids,
	}

	return f
}

func TestCascadeDeleteBidding(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindBidding, f.biddingId)
	require.NoError(t, err)
	require.True(t, report.RootDeleted)
	require.Empty(t, report.Failures)
	require.Equal(t, map[string]int{
		string(common.KindBidding): 1,
		string(common.KindItem):    2,
		string(common.KindQuote):   2,
		string(common.KindBid):     2,
	}, report.Deleted)

	require.Equal(t, []uuid.UUID{f.biddingId}, f.biddings.deleted)
	require.ElementsMatch(t, f.itemIds, f.items.deleted)
	require.ElementsMatch(t, f.quoteIds, f.quotes.deleted)
	require.ElementsMatch(t, f.bidIds, f.bids.deleted)
}

func TestCascadeDeleteItem(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindItem, f.itemIds[0])
	require.NoError(t, err)
	require.True(t, report.RootDeleted)
	require.Equal(t, map[string]int{
		string(common.KindItem):  1,
		string(common.KindQuote): 1,
		string(common.KindBid):   1,
	}, report.Deleted)

	// The sibling item and its dependents survive.
	require.Equal(t, []uuid.UUID{f.itemIds[0]}, f.items.deleted)
	require.Equal(t, []uuid.UUID{f.quoteIds[0]}, f.quotes.deleted)
	require.Equal(t, []uuid.UUID{f.bidIds[0]}, f.bids.deleted)
}

func TestCascadeDeleteSupplierRemovesQuotesOnly(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindSupplier, f.supplierId)
	require.NoError(t, err)
	require.True(t, report.RootDeleted)
	require.Equal(t, map[string]int{
		string(common.KindSupplier): 1,
		string(common.KindQuote):    2,
	}, report.Deleted)
	require.Empty(t, f.bids.deleted)
	require.Empty(t, f.items.deleted)
}

func TestCascadeDeleteBidderRemovesBidsOnly(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindBidder, f.bidderId)
	require.NoError(t, err)
	require.True(t, report.RootDeleted)
	require.Equal(t, map[string]int{
		string(common.KindBidder): 1,
		string(common.KindBid):    2,
	}, report.Deleted)
	require.Empty(t, f.quotes.deleted)
}

func TestCascadeIsBestEffort(t *testing.T) {
	f := newCascadeFixture()
	f.quotes.deleteErrFor = map[uuid.UUID]error{f.quoteIds[0]: errors.New("lock timeout")}
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindBidding, f.biddingId)
	require.NoError(t, err)
	require.True(t, report.RootDeleted)
	require.Len(t, report.Failures, 1)
	require.Contains(t, report.Failures[0], "lock timeout")

	// The failing quote was skipped, everything else still went down.
	require.Equal(t, 1, report.Deleted[string(common.KindQuote)])
	require.Equal(t, 2, report.Deleted[string(common.KindItem)])
	require.Equal(t, 2, report.Deleted[string(common.KindBid)])
}

func TestCascadeRootFailureIsReported(t *testing.T) {
	f := newCascadeFixture()
	f.biddings.deleteErr = errors.New("foreign key still referenced")
	svc := service.NewCascadeService(f.repos)

	report, err := svc.DeleteWithCascade(context.Background(), common.KindBidding, f.biddingId)
	require.Error(t, err)
	require.NotNil(t, report)
	require.False(t, report.RootDeleted)
	// Dependents were still removed before the root failed.
	require.Equal(t, 2, report.Deleted[string(common.KindItem)])
}

func TestCascadeUnknownKind(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewCascadeService(f.repos)

	_, err := svc.DeleteWithCascade(context.Background(), common.EntityKind("warehouse"), uuid.New())
	require.ErrorIs(t, err, service.ErrUnknownEntityKind)
}
