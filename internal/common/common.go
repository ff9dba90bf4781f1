package common

// Bidding modes
const (
	InPerson   = "InPerson"
	Electronic = "Electronic"
)

// Display labels shown in the editing grid for each bidding mode.
const (
	InPersonLabel   = "In-person tender"
	ElectronicLabel = "Electronic tender"
)

// Fallback label rendered for bids that carry no bidder reference.
const UnassignedBidderLabel = "Unassigned"

// EntityKind names one of the persisted record kinds.
type EntityKind string

const (
	KindBidding  EntityKind = "Bidding"
	KindItem     EntityKind = "Item"
	KindSupplier EntityKind = "Supplier"
	KindBidder   EntityKind = "Bidder"
	KindQuote    EntityKind = "Quote"
	KindBid      EntityKind = "Bid"
)

func (k EntityKind) Valid() bool {
	switch k {
	case KindBidding, KindItem, KindSupplier, KindBidder, KindQuote, KindBid:
		return true
	}

	return false
}
