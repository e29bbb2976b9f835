package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownProductName is shown for stock whose product is missing from the catalog
const UnknownProductName = "Unknown"

// Product is the catalog view the ledger needs: a display name and prices
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	MRP      decimal.Decimal
	Category string
	Active   bool
}

// ProductIndex looks products up by ID
type ProductIndex map[uuid.UUID]Product

// NewProductIndex indexes a product list
func NewProductIndex(products []Product) ProductIndex {
	idx := make(ProductIndex, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// Name returns the product name or UnknownProductName
func (idx ProductIndex) Name(id uuid.UUID) string {
	if p, ok := idx[id]; ok && p.Name != "" {
		return p.Name
	}
	return UnknownProductName
}

// MRP returns the product MRP, or zero when the product is unknown
func (idx ProductIndex) MRP(id uuid.UUID) decimal.Decimal {
	if p, ok := idx[id]; ok {
		return p.MRP
	}
	return decimal.Zero
}
