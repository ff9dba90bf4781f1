package service

import (
	"fmt"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"

	"github.com/google/uuid"
)

// Snapshot builders materialize repository records into the tabular form
// the grid edits. Foreign keys are joined to display names; timestamps are
// normalized to UTC so later equality checks are not confounded by zone
// metadata. A record whose references can't be resolved still produces a
// row; the miss is surfaced as a diagnostic instead of aborting the build.

func modeLabel(mode string) string {
	switch mode {
	case common.InPerson:
		return common.InPersonLabel
	case common.Electronic:
		return common.ElectronicLabel
	}

	return mode
}

func textOrNull(s *string) entity.Value {
	if s == nil {
		return entity.NullValue()
	}

	return entity.TextValue(*s)
}

func BuildBiddingSnapshot(biddings []entity.Bidding) *entity.Snapshot {
	snapshot := entity.NewSnapshot(common.KindBidding,
		[]string{"id", "city", "date", "mode", "process_number", "created_at", "updated_at"})

	for _, bidding := range biddings {
		snapshot.Put(bidding.Id, entity.Row{
			"id":             entity.TextValue(bidding.Id.String()),
			"city":           entity.TextValue(bidding.City),
			"date":           entity.TimeValue(bidding.Date),
			"mode":           entity.TextValue(modeLabel(bidding.Mode)),
			"process_number": entity.TextValue(bidding.ProcessNumber),
			"created_at":     entity.TimeValue(bidding.CreatedAt),
			"updated_at":     entity.TimeValue(bidding.UpdatedAt),
		})
	}

	return snapshot
}

func BuildItemSnapshot(items []entity.Item, processNumbers map[uuid.UUID]string) (*entity.Snapshot, []string) {
	snapshot := entity.NewSnapshot(common.KindItem,
		[]string{"id", "bidding", "code", "name", "description", "unit", "quantity", "notes", "created_at", "updated_at"})

	diagnostics := make([]string, 0)
	for _, item := range items {
		bidding, ok := processNumbers[item.BiddingId]
		if !ok {
			diagnostics = append(diagnostics,
				fmt.Sprintf("item %s: bidding %s can't be resolved", item.Id, item.BiddingId))
		}

		snapshot.Put(item.Id, entity.Row{
			"id":          entity.TextValue(item.Id.String()),
			"bidding":     entity.TextValue(bidding),
			"code":        entity.TextValue(item.Code),
			"name":        entity.TextValue(item.Name),
			"description": entity.TextValue(item.Description),
			"unit":        entity.TextValue(item.Unit),
			"quantity":    entity.DecimalValue(item.Quantity),
			"notes":       entity.TextValue(item.Notes),
			"created_at":  entity.TimeValue(item.CreatedAt),
			"updated_at":  entity.TimeValue(item.UpdatedAt),
		})
	}

	return snapshot, diagnostics
}

func BuildSupplierSnapshot(suppliers []entity.Supplier) *entity.Snapshot {
	snapshot := entity.NewSnapshot(common.KindSupplier,
		[]string{"id", "name", "website", "email", "phone", "description", "created_at", "updated_at"})

	for _, supplier := range suppliers {
		snapshot.Put(supplier.Id, entity.Row{
			"id":          entity.TextValue(supplier.Id.String()),
			"name":        entity.TextValue(supplier.Name),
			"website":     textOrNull(supplier.Website),
			"email":       textOrNull(supplier.Email),
			"phone":       textOrNull(supplier.Phone),
			"description": entity.TextValue(supplier.Description),
			"created_at":  entity.TimeValue(supplier.CreatedAt),
			"updated_at":  entity.TimeValue(supplier.UpdatedAt),
		})
	}

	return snapshot
}

func BuildBidderSnapshot(bidders []entity.Bidder) *entity.Snapshot {
	snapshot := entity.NewSnapshot(common.KindBidder,
		[]string{"id", "name", "website", "email", "phone", "description", "created_at", "updated_at"})

	for _, bidder := range bidders {
		snapshot.Put(bidder.Id, entity.Row{
			"id":          entity.TextValue(bidder.Id.String()),
			"name":        entity.TextValue(bidder.Name),
			"website":     textOrNull(bidder.Website),
			"email":       textOrNull(bidder.Email),
			"phone":       textOrNull(bidder.Phone),
			"description": entity.TextValue(bidder.Description),
			"created_at":  entity.TimeValue(bidder.CreatedAt),
			"updated_at":  entity.TimeValue(bidder.UpdatedAt),
		})
	}

	return snapshot
}

func BuildQuoteSnapshot(quotes []entity.Quote, itemCodes map[uuid.UUID]string, supplierNames map[uuid.UUID]string) (*entity.Snapshot, []string) {
	snapshot := entity.NewSnapshot(common.KindQuote,
		[]string{"id", "item", "supplier", "base_price", "freight", "additional_costs", "tax_pct", "margin_pct", "sale_price", "notes", "link", "created_at", "updated_at"})

	diagnostics := make([]string, 0)
	for _, quote := range quotes {
		item, ok := itemCodes[quote.ItemId]
		if !ok {
			diagnostics = append(diagnostics,
				fmt.Sprintf("quote %s: item %s can't be resolved", quote.Id, quote.ItemId))
		}
		supplier, ok := supplierNames[quote.SupplierId]
		if !ok {
			diagnostics = append(diagnostics,
				fmt.Sprintf("quote %s: supplier %s can't be resolved", quote.Id, quote.SupplierId))
		}

		snapshot.Put(quote.Id, entity.Row{
			"id":               entity.TextValue(quote.Id.String()),
			"item":             entity.TextValue(item),
			"supplier":         entity.TextValue(supplier),
			"base_price":       entity.DecimalValue(quote.BasePrice),
			"freight":          entity.DecimalValue(quote.Freight),
			"additional_costs": entity.DecimalValue(quote.AdditionalCosts),
			"tax_pct":          entity.DecimalValue(quote.TaxPct),
			"margin_pct":       entity.DecimalValue(quote.MarginPct),
			"sale_price":       entity.DecimalValue(QuoteSalePrice(&quote)),
			"notes":            entity.TextValue(quote.Notes),
			"link":             textOrNull(quote.Link),
			"created_at":       entity.TimeValue(quote.CreatedAt),
			"updated_at":       entity.TimeValue(quote.UpdatedAt),
		})
	}

	return snapshot, diagnostics
}

func BuildBidSnapshot(bids []entity.Bid, itemCodes map[uuid.UUID]string, processNumbers map[uuid.UUID]string, bidderNames map[uuid.UUID]string) (*entity.Snapshot, []string) {
	snapshot := entity.NewSnapshot(common.KindBid,
		[]string{"id", "item", "bidding", "bidder", "price", "notes", "created_at", "updated_at"})

	diagnostics := make([]string, 0)
	for _, bid := range bids {
		item, ok := itemCodes[bid.ItemId]
		if !ok {
			diagnostics = append(diagnostics,
				fmt.Sprintf("bid %s: item %s can't be resolved", bid.Id, bid.ItemId))
		}
		bidding, ok := processNumbers[bid.BiddingId]
		if !ok {
			diagnostics = append(diagnostics,
				fmt.Sprintf("bid %s: bidding %s can't be resolved", bid.Id, bid.BiddingId))
		}

		// An unassigned bid is valid; it renders with the fallback label.
		bidder := common.UnassignedBidderLabel
		if bid.BidderId != nil {
			name, ok := bidderNames[*bid.BidderId]
			if !ok {
				diagnostics = append(diagnostics,
					fmt.Sprintf("bid %s: bidder %s can't be resolved", bid.Id, *bid.BidderId))
			} else {
				bidder = name
			}
		}

		snapshot.Put(bid.Id, entity.Row{
			"id":         entity.TextValue(bid.Id.String()),
			"item":       entity.TextValue(item),
			"bidding":    entity.TextValue(bidding),
			"bidder":     entity.TextValue(bidder),
			"price":      entity.DecimalValue(bid.Price),
			"notes":      entity.TextValue(bid.Notes),
			"created_at": entity.TimeValue(bid.CreatedAt),
			"updated_at": entity.TimeValue(bid.UpdatedAt),
		})
	}

	return snapshot, diagnostics
}
