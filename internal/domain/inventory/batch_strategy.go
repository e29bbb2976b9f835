package inventory

import (
	"fmt"
	"sort"
	"strings"
)

// BatchStrategyType names a policy for picking which stock rows a transfer
// touches first
type BatchStrategyType string

const (
	// BatchStrategyFIFOCreation picks the oldest-created row first
	BatchStrategyFIFOCreation BatchStrategyType = "fifo_creation"
	// BatchStrategyFIFOExpiry picks the soonest-expiring row first; rows
	// without an expiry date go last
	BatchStrategyFIFOExpiry BatchStrategyType = "fifo_expiry"
)

// IsValid checks if the strategy type is valid
func (t BatchStrategyType) IsValid() bool {
	switch t {
	case BatchStrategyFIFOCreation, BatchStrategyFIFOExpiry:
		return true
	}
	return false
}

// String returns the string representation
func (t BatchStrategyType) String() string {
	return string(t)
}

// BatchStrategy orders the stock rows of one (godown, product) pair
type BatchStrategy interface {
	Type() BatchStrategyType
	// Order returns a sorted copy of entries, first-to-touch first
	Order(entries []StockEntry) []StockEntry
}

// NewBatchStrategy returns the strategy registered under name.
// An empty name selects FIFO by creation.
func NewBatchStrategy(name string) (BatchStrategy, error) {
	switch BatchStrategyType(strings.ToLower(strings.TrimSpace(name))) {
	case "", BatchStrategyFIFOCreation:
		return FIFOCreationStrategy{}, nil
	case BatchStrategyFIFOExpiry:
		return FIFOExpiryStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown batch strategy %q", name)
}

// FIFOCreationStrategy orders rows by creation time, oldest first
type FIFOCreationStrategy struct{}

// Type returns BatchStrategyFIFOCreation
func (FIFOCreationStrategy) Type() BatchStrategyType { return BatchStrategyFIFOCreation }

// Order sorts by CreatedAt ascending
func (FIFOCreationStrategy) Order(entries []StockEntry) []StockEntry {
	sorted := make([]StockEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// FIFOExpiryStrategy orders rows by expiry date, earliest first
type FIFOExpiryStrategy struct{}

// Type returns BatchStrategyFIFOExpiry
func (FIFOExpiryStrategy) Type() BatchStrategyType { return BatchStrategyFIFOExpiry }

// Order sorts by ExpiryDate ascending with nil expiry last, then CreatedAt
func (FIFOExpiryStrategy) Order(entries []StockEntry) []StockEntry {
	sorted := make([]StockEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ExpiryDate, sorted[j].ExpiryDate
		switch {
		case a != nil && b != nil:
			if !a.Equal(*b) {
				return a.Before(*b)
			}
		case a != nil:
			return true
		case b != nil:
			return false
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
