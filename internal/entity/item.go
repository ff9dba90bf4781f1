package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model. BiddingId is fixed at creation and not user-editable afterwards.
type Item struct {
	Id          uuid.UUID       `json:"id" db:"id"`
	BiddingId   uuid.UUID       `json:"biddingId" db:"bidding_id"`
	Code        string          `json:"code" db:"code"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Unit        string          `json:"unit" db:"unit"`
	Quantity    decimal.Decimal `json:"quantity" db:"quantity"`
	Notes       string          `json:"notes" db:"notes"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateItemInput struct {
	BiddingId   string
	Code        string
	Name        string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	Notes       string
}

// controller model
type ItemOutputModel struct {
	Id          string `json:"id"`
	BiddingId   string `json:"biddingId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"createdAt"`
}
