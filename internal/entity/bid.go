package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model. BiddingId is denormalized onto the bid even though it is
// reachable through the item, so that bidding-level cascade queries stay
// one hop deep. BidderId is nullable: an anonymous bid is valid.
type Bid struct {
	Id        uuid.UUID       `json:"id" db:"id"`
	ItemId    uuid.UUID       `json:"itemId" db:"item_id"`
	BiddingId uuid.UUID       `json:"biddingId" db:"bidding_id"`
	BidderId  *uuid.UUID      `json:"bidderId" db:"bidder_id"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Notes     string          `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateBidInput struct {
	ItemId    string
	BiddingId string
	BidderId  *string // nil means the bid is unassigned
	Price     decimal.Decimal
	Notes     string
}

// controller model
type BidOutputModel struct {
	Id        string `json:"id"`
	ItemId    string `json:"itemId"`
	BiddingId string `json:"biddingId"`
	Bidder    string `json:"bidder"` // bidder name or the unassigned label
	Price     string `json:"price"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}
