package inventory

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGodownRepository is a mock implementation of GodownRepository
type MockGodownRepository struct {
	mock.Mock
}

func (m *MockGodownRepository) FindByID(ctx context.Context, id uuid.UUID) (*godown.Godown, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godown.Godown), args.Error(1)
}

func (m *MockGodownRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]godown.Godown, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]godown.Godown), args.Error(1)
}

func (m *MockGodownRepository) FindAll(ctx context.Context, filter godown.ListFilter) ([]godown.Godown, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]godown.Godown), args.Error(1)
}

func (m *MockGodownRepository) Save(ctx context.Context, g *godown.Godown) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGodownRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockStockEntryRepository is a mock implementation of StockEntryRepository
type MockStockEntryRepository struct {
	mock.Mock
}

func (m *MockStockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) FindByGodown(ctx context.Context, godownID uuid.UUID) ([]inventory.StockEntry, error) {
	args := m.Called(ctx, godownID)
	return args.Get(0).([]inventory.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) LockByGodownProduct(ctx context.Context, godownID, productID uuid.UUID) ([]inventory.StockEntry, error) {
	args := m.Called(ctx, godownID, productID)
	return args.Get(0).([]inventory.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) Create(ctx context.Context, entries ...inventory.StockEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockStockEntryRepository) UpdateQuantity(ctx context.Context, entry *inventory.StockEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockStockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockTransferRepository is a mock implementation of TransferRepository
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindAll(ctx context.Context, filter inventory.TransferFilter) ([]inventory.Transfer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Transfer), args.Error(1)
}

func (m *MockTransferRepository) Create(ctx context.Context, t *inventory.Transfer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransferRepository) UpdateStatus(ctx context.Context, t *inventory.Transfer) error {
	return m.Called(ctx, t).Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]inventory.Product), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockEventPublisher) published() []shared.DomainEvent {
	out := make([]shared.DomainEvent, 0)
	for _, call := range m.Calls {
		if call.Method == "Publish" {
			out = append(out, call.Arguments.Get(1).([]shared.DomainEvent)...)
		}
	}
	return out
}

func (m *MockEventPublisher) eventTypes() []string {
	types := make([]string, 0)
	for _, e := range m.published() {
		types = append(types, e.EventType())
	}
	return types
}

// MockTransferMetrics is a mock implementation of TransferMetrics
type MockTransferMetrics struct {
	mock.Mock
}

func (m *MockTransferMetrics) RecordTransferCreated(ctx context.Context, t *inventory.Transfer) {
	m.Called(ctx, t)
}

func (m *MockTransferMetrics) RecordTransferCompleted(ctx context.Context, t *inventory.Transfer) {
	m.Called(ctx, t)
}

func (m *MockTransferMetrics) RecordTransferRejected(ctx context.Context, t *inventory.Transfer) {
	m.Called(ctx, t)
}

func (m *MockTransferMetrics) RecordStockUnderflow(ctx context.Context, t *inventory.Transfer, shortfall int) {
	m.Called(ctx, t, shortfall)
}
