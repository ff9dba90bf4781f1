package service_test

import (
	"context"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateQuote(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)

	quote, err := svc.CreateQuote(context.Background(), &entity.CreateQuoteInput{
		ItemId:     f.itemIds[0].String(),
		SupplierId: f.supplierId.String(),
		BasePrice:  decimal.NewFromInt(100),
		Freight:    decimal.NewFromInt(10),
		TaxPct:     decimal.NewFromInt(10),
		MarginPct:  decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.Equal(t, "100.00", quote.BasePrice)
}

func TestCreateQuoteRejectsNonPositiveBasePrice(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)

	_, err := svc.CreateQuote(context.Background(), &entity.CreateQuoteInput{
		ItemId:     f.itemIds[0].String(),
		SupplierId: f.supplierId.String(),
		BasePrice:  decimal.Zero,
	})
	require.ErrorIs(t, err, service.ErrBasePriceNotPositive)
}

func TestCreateQuoteUnknownReferences(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)

	_, err := svc.CreateQuote(context.Background(), &entity.CreateQuoteInput{
		ItemId:     uuid.New().String(),
		SupplierId: f.supplierId.String(),
		BasePrice:  decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, service.ErrItemNotFound)

	_, err = svc.CreateQuote(context.Background(), &entity.CreateQuoteInput{
		ItemId:     f.itemIds[0].String(),
		SupplierId: uuid.New().String(),
		BasePrice:  decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, service.ErrSupplierNotFound)
}

func TestGetQuoteSalePrice(t *testing.T) {
	f := newCascadeFixture()
	f.quotes.quotes[0].BasePrice = decimal.NewFromInt(100)
	f.quotes.quotes[0].Freight = decimal.NewFromInt(10)
	f.quotes.quotes[0].AdditionalCosts = decimal.NewFromInt(5)
	f.quotes.quotes[0].TaxPct = decimal.NewFromInt(10)
	f.quotes.quotes[0].MarginPct = decimal.NewFromInt(20)
	svc := service.NewTradeService(f.repos)

	price, err := svc.GetQuoteSalePrice(context.Background(), f.quoteIds[0].String())
	require.NoError(t, err)
	require.Equal(t, "151.80", price)

	_, err = svc.GetQuoteSalePrice(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, service.ErrQuoteNotFound)

	_, err = svc.GetQuoteSalePrice(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, service.ErrQuoteNotFound)
}

func TestCreateBidUnassigned(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)

	bid, err := svc.CreateBid(context.Background(), &entity.CreateBidInput{
		ItemId:    f.itemIds[0].String(),
		BiddingId: f.biddingId.String(),
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)
	require.Equal(t, common.UnassignedBidderLabel, bid.Bidder)
	require.Equal(t, "90.00", bid.Price)
}

func TestCreateBidResolvesBidderName(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)
	bidderId := f.bidderId.String()

	bid, err := svc.CreateBid(context.Background(), &entity.CreateBidInput{
		ItemId:    f.itemIds[0].String(),
		BiddingId: f.biddingId.String(),
		BidderId:  &bidderId,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)
	require.Equal(t, "Globex", bid.Bidder)
}

func TestCreateBidBiddingMismatch(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)

	_, err := svc.CreateBid(context.Background(), &entity.CreateBidInput{
		ItemId:    f.itemIds[0].String(),
		BiddingId: f.otherId.String(),
		Price:     decimal.NewFromInt(90),
	})
	require.ErrorIs(t, err, service.ErrBidBiddingMismatch)
}

func TestCreateBidUnknownBidder(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewTradeService(f.repos)
	unknown := uuid.New().String()

	_, err := svc.CreateBid(context.Background(), &entity.CreateBidInput{
		ItemId:    f.itemIds[0].String(),
		BiddingId: f.biddingId.String(),
		BidderId:  &unknown,
		Price:     decimal.NewFromInt(90),
	})
	require.ErrorIs(t, err, service.ErrBidderNotFound)
}
