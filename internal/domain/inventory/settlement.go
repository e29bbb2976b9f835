package inventory

import (
	"fmt"

	"github.com/erp/godown/internal/domain/shared"
)

// Settlement is the ledger effect of completing a transfer
type Settlement struct {
	// Updated holds existing rows whose quantity changed
	Updated []StockEntry
	// Created holds rows that did not exist before
	Created []StockEntry
	// SourceAvailable is the positive stock the source held before settling
	SourceAvailable int
	// Shortfall is the part of the quantity the source could not cover
	Shortfall int
	// Clamped is true when the shortfall was dropped instead of booked as
	// negative stock
	Clamped bool
}

// HasUnderflow reports whether the source could not cover the transfer
func (s *Settlement) HasUnderflow() bool {
	return s.Shortfall > 0
}

// Settle completes t and computes the destination increment and the source
// decrement.
//
// The destination row picked first by strategy receives the whole quantity,
// or a zero-cost row is created when the destination holds none of the
// product. The source is consumed row by row in strategy order and no row
// is taken below zero. Whatever remains is the shortfall. With
// allowNegative the first source row absorbs it (a negative row is created
// when the source has none); otherwise it is clamped away. A row pushed past
// MaxQuantity either way is a validation error and t stays pending.
func Settle(t *Transfer, destination, source []StockEntry, strategy BatchStrategy, allowNegative bool) (*Settlement, error) {
	if !t.IsPending() {
		return nil, t.Complete()
	}
	dest := strategy.Order(destination)
	if len(dest) > 0 && !quantityInRange(dest[0].Quantity+t.Quantity) {
		return nil, shared.NewValidationError(fmt.Sprintf(
			"Destination stock would exceed %d", MaxQuantity))
	}
	src := strategy.Order(source)
	if allowNegative && len(src) > 0 && !quantityInRange(min(src[0].Quantity, 0)-shortfall(src, t.Quantity)) {
		return nil, shared.NewValidationError(fmt.Sprintf(
			"Source stock would fall below -%d", MaxQuantity))
	}

	if err := t.Complete(); err != nil {
		return nil, err
	}
	s := &Settlement{}

	if len(dest) == 0 {
		s.Created = append(s.Created, newReceivedEntry(t.ToGodownID, t.ProductID, t.Quantity, t.BatchNumber))
	} else {
		dest[0].adjust(t.Quantity)
		s.Updated = append(s.Updated, dest[0])
	}

	touched := make([]bool, len(src))
	remaining := t.Quantity
	for i := range src {
		if src[i].Quantity > 0 {
			s.SourceAvailable += src[i].Quantity
		}
		if remaining == 0 || src[i].Quantity <= 0 {
			continue
		}
		take := min(remaining, src[i].Quantity)
		src[i].adjust(-take)
		touched[i] = true
		remaining -= take
	}

	if remaining > 0 {
		s.Shortfall = remaining
		switch {
		case !allowNegative:
			s.Clamped = true
		case len(src) > 0:
			src[0].adjust(-remaining)
			touched[0] = true
		default:
			s.Created = append(s.Created, newReceivedEntry(t.FromGodownID, t.ProductID, -remaining, t.BatchNumber))
		}
	}

	for i := range src {
		if touched[i] {
			s.Updated = append(s.Updated, src[i])
		}
	}

	t.AddDomainEvent(NewTransferCompletedEvent(t, s))
	if s.HasUnderflow() {
		t.AddDomainEvent(NewStockUnderflowWarningEvent(t, s))
	}
	return s, nil
}

// shortfall is the part of qty the positive rows of src cannot cover
func shortfall(src []StockEntry, qty int) int {
	for _, e := range src {
		if e.Quantity > 0 {
			qty -= min(qty, e.Quantity)
		}
	}
	return qty
}
