package inventory

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity bounds every stored quantity, positive or negative. It is the
// range of the INTEGER quantity column.
const MaxQuantity = math.MaxInt32

func quantityInRange(q int) bool {
	return q >= -MaxQuantity && q <= MaxQuantity
}

// StockEntry is one batch of a product held in a godown.
// Quantity is signed: a negative value is a ledger anomaly to be displayed,
// not rejected.
type StockEntry struct {
	ID             uuid.UUID
	GodownID       uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	PurchasePrice  decimal.Decimal
	BatchNumber    *string
	ExpiryDate     *time.Time
	PurchaseNumber *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewStockEntryParams carries the input of a stock-in
type NewStockEntryParams struct {
	GodownID       uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	PurchasePrice  decimal.Decimal
	BatchNumber    string
	ExpiryDate     *time.Time
	PurchaseNumber string
}

// NewStockEntry validates a stock-in and builds a new row.
// It never merges with an existing batch.
func NewStockEntry(p NewStockEntryParams) (*StockEntry, error) {
	if p.GodownID == uuid.Nil {
		return nil, shared.NewValidationError("Godown is required")
	}
	if p.ProductID == uuid.Nil {
		return nil, shared.NewValidationError("Product is required")
	}
	if p.Quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be greater than zero")
	}
	if p.Quantity > MaxQuantity {
		return nil, shared.NewValidationError(fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity))
	}
	if p.PurchasePrice.IsNegative() {
		return nil, shared.NewValidationError("Purchase price cannot be negative")
	}

	now := time.Now()
	return &StockEntry{
		ID:             uuid.New(),
		GodownID:       p.GodownID,
		ProductID:      p.ProductID,
		Quantity:       p.Quantity,
		PurchasePrice:  p.PurchasePrice.Round(2),
		BatchNumber:    optional(p.BatchNumber),
		ExpiryDate:     p.ExpiryDate,
		PurchaseNumber: optional(p.PurchaseNumber),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// newReceivedEntry is the row created in a destination godown that had no
// stock of the product when a transfer completed. It carries no cost.
func newReceivedEntry(godownID, productID uuid.UUID, quantity int, batchNumber *string) StockEntry {
	now := time.Now()
	return StockEntry{
		ID:            uuid.New(),
		GodownID:      godownID,
		ProductID:     productID,
		Quantity:      quantity,
		PurchasePrice: decimal.Zero,
		BatchNumber:   batchNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Amount is quantity × purchase price
func (e *StockEntry) Amount() decimal.Decimal {
	return e.PurchasePrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// adjust changes the quantity by delta
func (e *StockEntry) adjust(delta int) {
	e.Quantity += delta
	e.UpdatedAt = time.Now()
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
