package service

import (
	"procurement-management-api/internal/entity"
	"time"
)

func mapBidding(b *entity.Bidding) *entity.BiddingOutputModel {
	return &entity.BiddingOutputModel{
		Id:            b.Id.String(),
		City:          b.City,
		Date:          b.Date.Format(time.RFC3339),
		Mode:          b.Mode,
		ProcessNumber: b.ProcessNumber,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func mapBiddings(biddings []entity.Bidding) []entity.BiddingOutputModel {
	s := make([]entity.BiddingOutputModel, 0)
	for _, bidding := range biddings {
		s = append(s, *mapBidding(&bidding))
	}

	return s
}

func mapItem(i *entity.Item) *entity.ItemOutputModel {
	return &entity.ItemOutputModel{
		Id:          i.Id.String(),
		BiddingId:   i.BiddingId.String(),
		Code:        i.Code,
		Name:        i.Name,
		Description: i.Description,
		Unit:        i.Unit,
		Quantity:    i.Quantity.String(),
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
	}
}

func mapItems(items []entity.Item) []entity.ItemOutputModel {
	s := make([]entity.ItemOutputModel, 0)
	for _, item := range items {
		s = append(s, *mapItem(&item))
	}

	return s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func mapSupplier(s *entity.Supplier) *entity.SupplierOutputModel {
	return &entity.SupplierOutputModel{
		Id:          s.Id.String(),
		Name:        s.Name,
		Website:     stringOrEmpty(s.Website),
		Email:       stringOrEmpty(s.Email),
		Phone:       stringOrEmpty(s.Phone),
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func mapSuppliers(suppliers []entity.Supplier) []entity.SupplierOutputModel {
	s := make([]entity.SupplierOutputModel, 0)
	for _, supplier := range suppliers {
		s = append(s, *mapSupplier(&supplier))
	}

	return s
}

func mapBidder(b *entity.Bidder) *entity.BidderOutputModel {
	return &entity.BidderOutputModel{
		Id:          b.Id.String(),
		Name:        b.Name,
		Website:     stringOrEmpty(b.Website),
		Email:       stringOrEmpty(b.Email),
		Phone:       stringOrEmpty(b.Phone),
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func mapBidders(bidders []entity.Bidder) []entity.BidderOutputModel {
	s := make([]entity.BidderOutputModel, 0)
	for _, bidder := range bidders {
		s = append(s, *mapBidder(&bidder))
	}

	return s
}

func mapQuote(q *entity.Quote) *entity.QuoteOutputModel {
	return &entity.QuoteOutputModel{
		Id:              q.Id.String(),
		ItemId:          q.ItemId.String(),
		SupplierId:      q.SupplierId.String(),
		BasePrice:       q.BasePrice.StringFixed(2),
		Freight:         q.Freight.StringFixed(2),
		AdditionalCosts: q.AdditionalCosts.StringFixed(2),
		TaxPct:          q.TaxPct.String(),
		MarginPct:       q.MarginPct.String(),
		SalePrice:       QuoteSalePrice(q).StringFixed(2),
		Notes:           q.Notes,
		Link:            stringOrEmpty(q.Link),
		CreatedAt:       q.CreatedAt.Format(time.RFC3339),
	}
}

// mapBid resolves the bidder display name at the call site so that a nil
// bidder reference renders with the fallback label instead of failing.
func mapBid(b *entity.Bid, bidderName string) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:        b.Id.String(),
		ItemId:    b.ItemId.String(),
		BiddingId: b.BiddingId.String(),
		Bidder:    bidderName,
		Price:     b.Price.StringFixed(2),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
