package godown

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerListing is a selling partner's product bound to an area godown.
// Its stock figure is maintained by the seller and is not reconciled
// with the godown ledger.
type SellerListing struct {
	ID           uuid.UUID
	SellerID     uuid.UUID
	Name         string
	Price        decimal.Decimal
	MRP          decimal.Decimal
	Stock        int
	Category     string
	Approved     bool
	Active       bool
	AreaGodownID *uuid.UUID
}

// Visible reports whether the listing is shown under its area godown
func (l *SellerListing) Visible() bool {
	return l.Approved && l.Active
}
