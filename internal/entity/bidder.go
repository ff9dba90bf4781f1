package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model. Same shape as Supplier; bidders compete, suppliers quote costs.
type Bidder struct {
	Id          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Website     *string   `json:"website" db:"website"`
	Email       *string   `json:"email" db:"email"`
	Phone       *string   `json:"phone" db:"phone"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateBidderInput struct {
	Name        string
	Website     *string
	Email       *string
	Phone       *string
	Description string
}

// controller model
type BidderOutputModel struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}
