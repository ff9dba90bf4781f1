package service

import (
	"errors"
	"fmt"
)

var (
	ErrBiddingNotFound  = errors.New("bidding not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrBidderNotFound   = errors.New("bidder not found")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrBidNotFound      = errors.New("bid not found")

	ErrSupplierNameTaken = errors.New("a supplier with this name already exists")
	ErrBidderNameTaken   = errors.New("a bidder with this name already exists")

	ErrUnknownBiddingMode   = errors.New("bidding mode must be InPerson or Electronic")
	ErrBasePriceNotPositive = errors.New("quote base price must be positive")
	ErrQuantityNegative     = errors.New("item quantity can't be negative")
	ErrBidBiddingMismatch   = errors.New("bid bidding doesn't match the item's bidding")

	ErrUnknownEntityKind = errors.New("unknown entity kind")
)

// Structural errors abort the whole reconciliation batch: without matching
// snapshots no row can be safely addressed.
var (
	ErrNilSnapshot          = errors.New("snapshot is missing")
	ErrSnapshotKindMismatch = errors.New("baseline and edited snapshots describe different entity kinds")
)

// ValidationError is row-scoped: a required field ended up blank or a
// numeric field failed its constraint. It aborts only the offending row.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Reason)
}

// ConversionError is row-scoped: a field conversion function rejected the
// edited value.
type ConversionError struct {
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// PersistenceError is row-scoped: the repository call itself failed.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
