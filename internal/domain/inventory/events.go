package inventory

import (
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeStockEntry = "StockEntry"
	AggregateTypeTransfer   = "Transfer"
)

// Event type constants
const (
	EventTypeStockAdded            = "StockAdded"
	EventTypeStockEntryRemoved     = "StockEntryRemoved"
	EventTypeTransferRequested     = "TransferRequested"
	EventTypeTransferCompleted     = "TransferCompleted"
	EventTypeTransferRejected      = "TransferRejected"
	EventTypeStockUnderflowWarning = "StockUnderflowWarning"
)

// StockAddedEvent is published when a stock entry is recorded
type StockAddedEvent struct {
	shared.BaseDomainEvent
	GodownID      uuid.UUID       `json:"godown_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	BatchNumber   *string         `json:"batch_number,omitempty"`
}

// NewStockAddedEvent creates a new StockAddedEvent
func NewStockAddedEvent(e *StockEntry) *StockAddedEvent {
	return &StockAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAdded, AggregateTypeStockEntry, e.ID),
		GodownID:        e.GodownID,
		ProductID:       e.ProductID,
		Quantity:        e.Quantity,
		PurchasePrice:   e.PurchasePrice,
		BatchNumber:     e.BatchNumber,
	}
}

// StockEntryRemovedEvent is published when an admin deletes a stock entry
type StockEntryRemovedEvent struct {
	shared.BaseDomainEvent
	GodownID  uuid.UUID `json:"godown_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// NewStockEntryRemovedEvent creates a new StockEntryRemovedEvent
func NewStockEntryRemovedEvent(e *StockEntry) *StockEntryRemovedEvent {
	return &StockEntryRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockEntryRemoved, AggregateTypeStockEntry, e.ID),
		GodownID:        e.GodownID,
		ProductID:       e.ProductID,
		Quantity:        e.Quantity,
	}
}

// TransferRequestedEvent is published when a transfer is created
type TransferRequestedEvent struct {
	shared.BaseDomainEvent
	FromGodownID uuid.UUID    `json:"from_godown_id"`
	ToGodownID   uuid.UUID    `json:"to_godown_id"`
	ProductID    uuid.UUID    `json:"product_id"`
	Quantity     int          `json:"quantity"`
	TransferType TransferType `json:"transfer_type"`
}

// NewTransferRequestedEvent creates a new TransferRequestedEvent
func NewTransferRequestedEvent(t *Transfer) *TransferRequestedEvent {
	return &TransferRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferRequested, AggregateTypeTransfer, t.ID),
		FromGodownID:    t.FromGodownID,
		ToGodownID:      t.ToGodownID,
		ProductID:       t.ProductID,
		Quantity:        t.Quantity,
		TransferType:    t.Type,
	}
}

// TransferCompletedEvent is published after an approval has been applied
type TransferCompletedEvent struct {
	shared.BaseDomainEvent
	FromGodownID uuid.UUID `json:"from_godown_id"`
	ToGodownID   uuid.UUID `json:"to_godown_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `json:"quantity"`
	Shortfall    int       `json:"shortfall"`
}

// NewTransferCompletedEvent creates a new TransferCompletedEvent
func NewTransferCompletedEvent(t *Transfer, s *Settlement) *TransferCompletedEvent {
	return &TransferCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferCompleted, AggregateTypeTransfer, t.ID),
		FromGodownID:    t.FromGodownID,
		ToGodownID:      t.ToGodownID,
		ProductID:       t.ProductID,
		Quantity:        t.Quantity,
		Shortfall:       s.Shortfall,
	}
}

// TransferRejectedEvent is published when a pending transfer is rejected
type TransferRejectedEvent struct {
	shared.BaseDomainEvent
	FromGodownID uuid.UUID `json:"from_godown_id"`
	ToGodownID   uuid.UUID `json:"to_godown_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `json:"quantity"`
}

// NewTransferRejectedEvent creates a new TransferRejectedEvent
func NewTransferRejectedEvent(t *Transfer) *TransferRejectedEvent {
	return &TransferRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferRejected, AggregateTypeTransfer, t.ID),
		FromGodownID:    t.FromGodownID,
		ToGodownID:      t.ToGodownID,
		ProductID:       t.ProductID,
		Quantity:        t.Quantity,
	}
}

// StockUnderflowWarningEvent is published when a completed transfer asked
// for more than the source held
type StockUnderflowWarningEvent struct {
	shared.BaseDomainEvent
	GodownID  uuid.UUID `json:"godown_id"`
	ProductID uuid.UUID `json:"product_id"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
	Shortfall int       `json:"shortfall"`
	Clamped   bool      `json:"clamped"`
}

// NewStockUnderflowWarningEvent creates a new StockUnderflowWarningEvent
func NewStockUnderflowWarningEvent(t *Transfer, s *Settlement) *StockUnderflowWarningEvent {
	return &StockUnderflowWarningEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockUnderflowWarning, AggregateTypeTransfer, t.ID),
		GodownID:        t.FromGodownID,
		ProductID:       t.ProductID,
		Requested:       t.Quantity,
		Available:       s.SourceAvailable,
		Shortfall:       s.Shortfall,
		Clamped:         s.Clamped,
	}
}
