package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTransfer(t *testing.T, qty int) *Transfer {
	t.Helper()
	tr, err := NewTransfer(NewTransferParams{
		From:      testGodown(t, godown.TierLocal),
		To:        testGodown(t, godown.TierMicro),
		ProductID: uuid.New(),
		Quantity:  qty,
	})
	require.NoError(t, err)
	tr.ClearDomainEvents()
	return tr
}

func total(entries []StockEntry) int {
	sum := 0
	for _, e := range entries {
		sum += e.Quantity
	}
	return sum
}

func byID(entries []StockEntry) map[uuid.UUID]StockEntry {
	m := make(map[uuid.UUID]StockEntry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}

func eventTypes(tr *Transfer) []string {
	types := make([]string, 0)
	for _, e := range tr.GetDomainEvents() {
		types = append(types, e.EventType())
	}
	return types
}

func TestSettle(t *testing.T) {
	now := time.Now()

	t.Run("moves the full quantity when the source covers it", func(t *testing.T) {
		tr := pendingTransfer(t, 20)
		src := []StockEntry{entry(tr.FromGodownID, tr.ProductID, 20, "10", now)}
		dst := []StockEntry{entry(tr.ToGodownID, tr.ProductID, 5, "10", now)}

		s, err := Settle(tr, dst, src, FIFOCreationStrategy{}, false)
		require.NoError(t, err)

		assert.Equal(t, TransferStatusCompleted, tr.Status)
		assert.Zero(t, s.Shortfall)
		require.Len(t, s.Updated, 2)
		updated := byID(s.Updated)
		assert.Equal(t, 25, updated[dst[0].ID].Quantity)
		assert.Equal(t, 0, updated[src[0].ID].Quantity)
		assert.Equal(t, []string{EventTypeTransferCompleted}, eventTypes(tr))
	})

	t.Run("creates a zero-cost destination row when none exists", func(t *testing.T) {
		tr := pendingTransfer(t, 4)
		src := []StockEntry{entry(tr.FromGodownID, tr.ProductID, 10, "10", now)}

		s, err := Settle(tr, nil, src, FIFOCreationStrategy{}, false)
		require.NoError(t, err)

		require.Len(t, s.Created, 1)
		assert.Equal(t, tr.ToGodownID, s.Created[0].GodownID)
		assert.Equal(t, 4, s.Created[0].Quantity)
		assert.True(t, s.Created[0].PurchasePrice.Equal(decimal.Zero))
	})

	t.Run("adds to the oldest destination row", func(t *testing.T) {
		tr := pendingTransfer(t, 3)
		newer := entry(tr.ToGodownID, tr.ProductID, 1, "0", now)
		older := entry(tr.ToGodownID, tr.ProductID, 1, "0", now.Add(-time.Hour))

		s, err := Settle(tr, []StockEntry{newer, older}, nil, FIFOCreationStrategy{}, false)
		require.NoError(t, err)
		assert.Equal(t, 4, byID(s.Updated)[older.ID].Quantity)
		_, touchedNewer := byID(s.Updated)[newer.ID]
		assert.False(t, touchedNewer)
	})

	t.Run("consumes source rows in strategy order", func(t *testing.T) {
		tr := pendingTransfer(t, 12)
		soon := now.AddDate(0, 0, 7)
		a := entry(tr.FromGodownID, tr.ProductID, 10, "0", now.Add(-time.Hour))
		b := entry(tr.FromGodownID, tr.ProductID, 10, "0", now)
		b.ExpiryDate = &soon

		s, err := Settle(tr, nil, []StockEntry{a, b}, FIFOExpiryStrategy{}, false)
		require.NoError(t, err)
		updated := byID(s.Updated)
		assert.Equal(t, 0, updated[b.ID].Quantity)
		assert.Equal(t, 8, updated[a.ID].Quantity)
	})

	t.Run("clamps underflow and warns", func(t *testing.T) {
		tr := pendingTransfer(t, 20)
		src := []StockEntry{entry(tr.FromGodownID, tr.ProductID, 10, "0", now)}

		s, err := Settle(tr, nil, src, FIFOCreationStrategy{}, false)
		require.NoError(t, err)
		assert.Equal(t, 10, s.Shortfall)
		assert.Equal(t, 10, s.SourceAvailable)
		assert.True(t, s.Clamped)
		assert.Equal(t, 0, byID(s.Updated)[src[0].ID].Quantity)
		assert.Equal(t, []string{EventTypeTransferCompleted, EventTypeStockUnderflowWarning}, eventTypes(tr))
	})

	t.Run("books underflow as negative stock when allowed", func(t *testing.T) {
		tr := pendingTransfer(t, 20)
		src := []StockEntry{
			entry(tr.FromGodownID, tr.ProductID, 5, "0", now.Add(-time.Hour)),
			entry(tr.FromGodownID, tr.ProductID, 5, "0", now),
		}

		s, err := Settle(tr, nil, src, FIFOCreationStrategy{}, true)
		require.NoError(t, err)
		assert.False(t, s.Clamped)
		assert.Equal(t, -10, total(s.Updated))
		assert.Equal(t, -10, byID(s.Updated)[src[0].ID].Quantity)
		assert.Contains(t, eventTypes(tr), EventTypeStockUnderflowWarning)
	})

	t.Run("creates a negative source row when allowed and the source is empty", func(t *testing.T) {
		tr := pendingTransfer(t, 6)

		s, err := Settle(tr, nil, nil, FIFOCreationStrategy{}, true)
		require.NoError(t, err)
		require.Len(t, s.Created, 2)
		assert.Equal(t, tr.FromGodownID, s.Created[1].GodownID)
		assert.Equal(t, -6, s.Created[1].Quantity)
	})

	t.Run("skips rows that are already negative", func(t *testing.T) {
		tr := pendingTransfer(t, 3)
		neg := entry(tr.FromGodownID, tr.ProductID, -2, "0", now.Add(-time.Hour))
		pos := entry(tr.FromGodownID, tr.ProductID, 5, "0", now)

		s, err := Settle(tr, nil, []StockEntry{neg, pos}, FIFOCreationStrategy{}, false)
		require.NoError(t, err)
		assert.Equal(t, 2, byID(s.Updated)[pos.ID].Quantity)
		_, touchedNeg := byID(s.Updated)[neg.ID]
		assert.False(t, touchedNeg)
	})

	t.Run("destination overflow is a validation error and leaves the transfer pending", func(t *testing.T) {
		tr := pendingTransfer(t, 10)
		src := []StockEntry{entry(tr.FromGodownID, tr.ProductID, 10, "0", now)}
		dst := []StockEntry{entry(tr.ToGodownID, tr.ProductID, MaxQuantity-5, "0", now)}

		s, err := Settle(tr, dst, src, FIFOCreationStrategy{}, false)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, shared.ErrValidation), "got %v", err)
		assert.Equal(t, TransferStatusPending, tr.Status)
		assert.Equal(t, MaxQuantity-5, dst[0].Quantity)
		assert.Empty(t, tr.GetDomainEvents())
	})

	t.Run("negative booking past the range is a validation error", func(t *testing.T) {
		tr := pendingTransfer(t, 10)
		src := []StockEntry{entry(tr.FromGodownID, tr.ProductID, -MaxQuantity+5, "0", now)}

		_, err := Settle(tr, nil, src, FIFOCreationStrategy{}, true)
		assert.True(t, errors.Is(err, shared.ErrValidation), "got %v", err)
		assert.Equal(t, TransferStatusPending, tr.Status)

		clamped, err := Settle(tr, nil, src, FIFOCreationStrategy{}, false)
		require.NoError(t, err)
		assert.True(t, clamped.Clamped)
	})

	t.Run("refuses non-pending transfers", func(t *testing.T) {
		tr := pendingTransfer(t, 1)
		_, err := Settle(tr, nil, nil, FIFOCreationStrategy{}, false)
		require.NoError(t, err)

		_, err = Settle(tr, nil, nil, FIFOCreationStrategy{}, false)
		assert.True(t, errors.Is(err, shared.ErrInvalidState))
	})
}
