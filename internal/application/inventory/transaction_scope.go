package inventory

import (
	"context"

	"github.com/erp/godown/internal/domain/inventory"
)

// TransactionScope defines an interface for executing operations within a transaction.
// Stock additions and transfer settlement run inside one scope so that
// ledger rows and transfer status commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories within a transaction context.
type TransactionalRepositories interface {
	StockRepo() inventory.StockEntryRepository
	TransferRepo() inventory.TransferRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing.
type NoOpTransactionScope struct {
	stockRepo    inventory.StockEntryRepository
	transferRepo inventory.TransferRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(stockRepo inventory.StockEntryRepository, transferRepo inventory.TransferRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{stockRepo: stockRepo, transferRepo: transferRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock entry repository.
func (s *NoOpTransactionScope) StockRepo() inventory.StockEntryRepository {
	return s.stockRepo
}

// TransferRepo returns the transfer repository.
func (s *NoOpTransactionScope) TransferRepo() inventory.TransferRepository {
	return s.transferRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
