package persistence

import (
	"context"

	appgodown "github.com/erp/godown/internal/application/godown"
	appinv "github.com/erp/godown/internal/application/inventory"
	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormTransactionScope implements both application TransactionScopes using
// GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// ForGodowns returns the scope used by assignment services.
func (s *GormTransactionScope) ForGodowns() appgodown.TransactionScope {
	return godownScope{db: s.db}
}

// ForInventory returns the scope used by ledger and transfer services.
func (s *GormTransactionScope) ForInventory() appinv.TransactionScope {
	return inventoryScope{db: s.db}
}

type godownScope struct {
	db *gorm.DB
}

// Execute runs fn inside a transaction. An error rolls back.
func (s godownScope) Execute(ctx context.Context, fn func(repos appgodown.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type inventoryScope struct {
	db *gorm.DB
}

// Execute runs fn inside a transaction. An error rolls back.
func (s inventoryScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) GodownRepo() godown.GodownRepository {
	return NewGormGodownRepository(r.tx)
}

func (r *gormTransactionalRepositories) AssignmentRepo() godown.AssignmentRepository {
	return NewGormAssignmentRepository(r.tx)
}

func (r *gormTransactionalRepositories) StockRepo() inventory.StockEntryRepository {
	return NewGormStockEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) TransferRepo() inventory.TransferRepository {
	return NewGormTransferRepository(r.tx)
}

var (
	_ appgodown.TransactionScope          = godownScope{}
	_ appinv.TransactionScope             = inventoryScope{}
	_ appgodown.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appinv.TransactionalRepositories    = (*gormTransactionalRepositories)(nil)
)
