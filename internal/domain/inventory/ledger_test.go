package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(godownID, productID uuid.UUID, qty int, price string, createdAt time.Time) StockEntry {
	return StockEntry{
		ID:            uuid.New(),
		GodownID:      godownID,
		ProductID:     productID,
		Quantity:      qty,
		PurchasePrice: decimal.RequireFromString(price),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func strPtr(s string) *string { return &s }

func TestAggregateByProduct(t *testing.T) {
	g := uuid.New()
	rice := uuid.New()
	oil := uuid.New()
	now := time.Now()
	products := NewProductIndex([]Product{
		{ID: rice, Name: "Rice", MRP: decimal.NewFromInt(60)},
		{ID: oil, Name: "coconut oil", MRP: decimal.NewFromInt(210)},
	})

	entries := []StockEntry{
		entry(g, rice, 10, "50", now),
		entry(g, rice, 5, "52", now.Add(time.Minute)),
		entry(g, oil, 3, "190", now),
	}

	totals := AggregateByProduct(entries, products)
	require.Len(t, totals, 2)

	assert.Equal(t, "coconut oil", totals[0].ProductName)
	assert.Equal(t, 3, totals[0].TotalQuantity)
	assert.Equal(t, "Rice", totals[1].ProductName)
	assert.Equal(t, 15, totals[1].TotalQuantity)
	assert.True(t, decimal.NewFromInt(60).Equal(totals[1].ReferencePrice))
}

func TestGroupedAvailability(t *testing.T) {
	g := uuid.New()
	known := uuid.New()
	missing := uuid.New()
	now := time.Now()
	products := NewProductIndex([]Product{{ID: known, Name: "Atta"}})

	entries := []StockEntry{
		entry(g, known, 4, "0", now),
		entry(g, known, -9, "0", now),
		entry(g, missing, 2, "0", now),
	}

	rows := GroupedAvailability(entries, products)
	require.Len(t, rows, 2)

	assert.Equal(t, "Atta", rows[0].ProductName)
	assert.Equal(t, -5, rows[0].TotalQuantity)
	assert.True(t, rows[0].Anomaly)

	assert.Equal(t, UnknownProductName, rows[1].ProductName)
	assert.False(t, rows[1].Anomaly)
}

func TestBillGroupedHistory(t *testing.T) {
	g := uuid.New()
	p := uuid.New()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	pb1a := entry(g, p, 2, "10", base)
	pb1a.PurchaseNumber = strPtr("PB-001")
	pb1b := entry(g, p, 3, "20", base.Add(time.Minute))
	pb1b.PurchaseNumber = strPtr("PB-001")
	pb1c := entry(g, p, 1, "5.50", base.Add(2*time.Minute))
	pb1c.PurchaseNumber = strPtr("PB-001")
	loose := entry(g, p, 7, "1", base.Add(time.Hour))

	t.Run("groups shared purchase numbers and keeps singletons", func(t *testing.T) {
		bills := BillGroupedHistory([]StockEntry{pb1a, loose, pb1b, pb1c}, DateRange{})
		require.Len(t, bills, 2)

		assert.Equal(t, "no-bill-"+loose.ID.String(), bills[0].Key)
		assert.Nil(t, bills[0].BillNumber)
		assert.Equal(t, 1, bills[0].ItemCount)

		pb := bills[1]
		assert.Equal(t, "PB-001", pb.Key)
		require.NotNil(t, pb.BillNumber)
		assert.Equal(t, 3, pb.ItemCount)
		assert.Equal(t, 6, pb.TotalQuantity)
		assert.True(t, decimal.RequireFromString("85.50").Equal(pb.TotalAmount), pb.TotalAmount.String())
		assert.Equal(t, pb1c.CreatedAt, pb.Date)
		assert.Len(t, pb.Entries, 3)
	})

	t.Run("applies inclusive date bounds", func(t *testing.T) {
		old := entry(g, p, 1, "1", base.AddDate(0, 0, -2))
		r, err := ParseDateRange("2026-03-10", "2026-03-10", time.UTC)
		require.NoError(t, err)

		bills := BillGroupedHistory([]StockEntry{old, pb1a, loose}, r)
		require.Len(t, bills, 2)
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("to covers the whole day", func(t *testing.T) {
		r, err := ParseDateRange("", "2026-03-10", time.UTC)
		require.NoError(t, err)
		assert.Nil(t, r.From)
		assert.True(t, r.Contains(time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("from starts at midnight", func(t *testing.T) {
		r, err := ParseDateRange("2026-03-10", "", time.UTC)
		require.NoError(t, err)
		assert.True(t, r.Contains(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := ParseDateRange("10/03/2026", "", time.UTC)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("rejects inverted ranges", func(t *testing.T) {
		_, err := ParseDateRange("2026-03-11", "2026-03-10", time.UTC)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}
