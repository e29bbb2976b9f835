package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockEntryRepository persists stock entries
type StockEntryRepository interface {
	// FindByID finds a stock entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockEntry, error)

	// FindByGodown lists every entry of a godown, newest first
	FindByGodown(ctx context.Context, godownID uuid.UUID) ([]StockEntry, error)

	// LockByGodownProduct returns the entries of one product in one godown,
	// locked for update when running inside a transaction
	LockByGodownProduct(ctx context.Context, godownID, productID uuid.UUID) ([]StockEntry, error)

	// Create inserts new entries
	Create(ctx context.Context, entries ...StockEntry) error

	// UpdateQuantity writes the quantity of an existing entry
	UpdateQuantity(ctx context.Context, entry *StockEntry) error

	// Delete removes an entry
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransferRepository persists transfers
type TransferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	// FindByIDForUpdate locks the transfer row for the rest of the transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transfer, error)
	// FindAll lists transfers newest first
	FindAll(ctx context.Context, filter TransferFilter) ([]Transfer, error)
	Create(ctx context.Context, t *Transfer) error
	// UpdateStatus writes the status; other columns are immutable
	UpdateStatus(ctx context.Context, t *Transfer) error
}

// ProductRepository reads the product catalog
type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
}
