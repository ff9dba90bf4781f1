package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model. All money columns are fixed-point decimals; base price is
// mandatory and positive, the rest default to zero. A supplier may quote
// the same item more than once.
type Quote struct {
	Id              uuid.UUID       `json:"id" db:"id"`
	ItemId          uuid.UUID       `json:"itemId" db:"item_id"`
	SupplierId      uuid.UUID       `json:"supplierId" db:"supplier_id"`
	BasePrice       decimal.Decimal `json:"basePrice" db:"base_price"`
	Freight         decimal.Decimal `json:"freight" db:"freight"`
	AdditionalCosts decimal.Decimal `json:"additionalCosts" db:"additional_costs"`
	TaxPct          decimal.Decimal `json:"taxPct" db:"tax_pct"`
	MarginPct       decimal.Decimal `json:"marginPct" db:"margin_pct"`
	Notes           string          `json:"notes" db:"notes"`
	Link            *string         `json:"link" db:"link"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateQuoteInput struct {
	ItemId          string
	SupplierId      string
	BasePrice       decimal.Decimal
	Freight         decimal.Decimal
	AdditionalCosts decimal.Decimal
	TaxPct          decimal.Decimal
	MarginPct       decimal.Decimal
	Notes           string
	Link            *string
}

// controller model
type QuoteOutputModel struct {
	Id              string `json:"id"`
	ItemId          string `json:"itemId"`
	SupplierId      string `json:"supplierId"`
	BasePrice       string `json:"basePrice"`
	Freight         string `json:"freight"`
	AdditionalCosts string `json:"additionalCosts"`
	TaxPct          string `json:"taxPct"`
	MarginPct       string `json:"marginPct"`
	SalePrice       string `json:"salePrice"`
	Notes           string `json:"notes"`
	Link            string `json:"link,omitempty"`
	CreatedAt       string `json:"createdAt"`
}
