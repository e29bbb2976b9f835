package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStockEntry(t *testing.T, godownID, productID uuid.UUID, qty int, createdAt time.Time) *inventory.StockEntry {
	t.Helper()
	e, err := inventory.NewStockEntry(inventory.NewStockEntryParams{
		GodownID:       godownID,
		ProductID:      productID,
		Quantity:       qty,
		PurchasePrice:  decimal.RequireFromString("12.50"),
		BatchNumber:    "B-1",
		PurchaseNumber: "PB-001",
	})
	require.NoError(t, err)
	e.CreatedAt = createdAt
	e.UpdatedAt = createdAt
	return e
}

func TestGormStockEntryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockEntryRepository(db)
	ctx := context.Background()

	godownID := uuid.New()
	productID := uuid.New()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	older := newTestStockEntry(t, godownID, productID, 10, base)
	newer := newTestStockEntry(t, godownID, productID, 4, base.Add(time.Hour))
	otherProduct := newTestStockEntry(t, godownID, uuid.New(), 7, base.Add(2*time.Hour))
	require.NoError(t, repo.Create(ctx, *older, *newer, *otherProduct))

	t.Run("round-trips every column", func(t *testing.T) {
		found, err := repo.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, found.Quantity)
		assert.True(t, found.PurchasePrice.Equal(decimal.RequireFromString("12.5")))
		require.NotNil(t, found.BatchNumber)
		assert.Equal(t, "B-1", *found.BatchNumber)
		require.NotNil(t, found.PurchaseNumber)
		assert.Equal(t, "PB-001", *found.PurchaseNumber)
		assert.Nil(t, found.ExpiryDate)
	})

	t.Run("lists a godown newest first", func(t *testing.T) {
		rows, err := repo.FindByGodown(ctx, godownID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, otherProduct.ID, rows[0].ID)
		assert.Equal(t, older.ID, rows[2].ID)
	})

	t.Run("locking read returns one product oldest first", func(t *testing.T) {
		rows, err := repo.LockByGodownProduct(ctx, godownID, productID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, older.ID, rows[0].ID)
		assert.Equal(t, newer.ID, rows[1].ID)
	})

	t.Run("updates quantity, including below zero", func(t *testing.T) {
		newer.Quantity = -3
		require.NoError(t, repo.UpdateQuantity(ctx, newer))

		found, err := repo.FindByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, -3, found.Quantity)

		missing := *newer
		missing.ID = uuid.New()
		assert.ErrorIs(t, repo.UpdateQuantity(ctx, &missing), shared.ErrNotFound)
	})

	t.Run("deletes an entry", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, otherProduct.ID))
		_, err := repo.FindByID(ctx, otherProduct.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, otherProduct.ID), shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, db.Create(&models.ProductModel{
		ID:       id,
		Name:     "Sugar 1kg",
		Price:    decimal.RequireFromString("42.00"),
		MRP:      decimal.RequireFromString("48.00"),
		IsActive: true,
	}).Error)

	products, err := repo.FindByIDs(ctx, []uuid.UUID{id, uuid.New()})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sugar 1kg", products[0].Name)
	assert.True(t, products[0].MRP.Equal(decimal.NewFromInt(48)))
	assert.Empty(t, products[0].Category)
}
