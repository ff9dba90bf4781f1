package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Bidding struct {
	Id            uuid.UUID `json:"id" db:"id"`
	City          string    `json:"city" db:"city"`
	Date          time.Time `json:"date" db:"date"`
	Mode          string    `json:"mode" db:"mode"`
	ProcessNumber string    `json:"processNumber" db:"process_number"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateBiddingInput struct {
	City          string // given
	Date          time.Time
	Mode          string // common.InPerson or common.Electronic
	ProcessNumber string
	// Id UUID sets automatically
	// CreatedAt/UpdatedAt set automatically
}

// controller model
type BiddingOutputModel struct {
	Id            string `json:"id"`
	City          string `json:"city"`
	Date          string `json:"date"`
	Mode          string `json:"mode"`
	ProcessNumber string `json:"processNumber"`
	CreatedAt     string `json:"createdAt"`
}
