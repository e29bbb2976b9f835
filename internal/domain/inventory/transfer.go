package inventory

import (
	"fmt"
	"strings"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// TransferStatus is the lifecycle state of a transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusRejected  TransferStatus = "rejected"
)

// IsValid checks if the status is valid
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusRejected
}

// TransferType distinguishes forward movement from returns up the hierarchy
type TransferType string

const (
	TransferTypeTransfer TransferType = "transfer"
	TransferTypeReturn   TransferType = "return"
)

// IsValid checks if the type is valid
func (t TransferType) IsValid() bool {
	return t == TransferTypeTransfer || t == TransferTypeReturn
}

// ParseTransferType parses a transfer type; empty means "transfer"
func ParseTransferType(s string) (TransferType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TransferTypeTransfer, nil
	}
	t := TransferType(s)
	if !t.IsValid() {
		return "", shared.NewValidationError("Transfer type must be transfer or return")
	}
	return t, nil
}

// Transfer is a requested movement of one product between two godowns.
// Only Status changes after creation.
type Transfer struct {
	shared.BaseAggregateRoot
	FromGodownID uuid.UUID
	ToGodownID   uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	BatchNumber  *string
	Type         TransferType
	Status       TransferStatus
	CreatedBy    *uuid.UUID
}

// NewTransferParams carries the input of a transfer request
type NewTransferParams struct {
	From        *godown.Godown
	To          *godown.Godown
	ProductID   uuid.UUID
	Quantity    int
	BatchNumber string
	Type        TransferType
	CreatedBy   *uuid.UUID
}

// NewTransfer validates a request against the tier rules and creates a
// pending transfer. Available stock is deliberately not consulted.
func NewTransfer(p NewTransferParams) (*Transfer, error) {
	if p.From == nil {
		return nil, shared.NewValidationError("Source godown is required")
	}
	if p.To == nil {
		return nil, shared.NewValidationError("Destination godown is required")
	}
	if p.ProductID == uuid.Nil {
		return nil, shared.NewValidationError("Product is required")
	}
	if p.Quantity <= 0 {
		return nil, shared.NewValidationError("Quantity must be greater than zero")
	}
	if p.Quantity > MaxQuantity {
		return nil, shared.NewValidationError(fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity))
	}
	if p.Type == "" {
		p.Type = TransferTypeTransfer
	}
	if !p.Type.IsValid() {
		return nil, shared.NewValidationError("Transfer type must be transfer or return")
	}
	if !p.From.Active {
		return nil, shared.NewValidationError("Source godown is inactive")
	}
	if !p.To.Active {
		return nil, shared.NewValidationError("Destination godown is inactive")
	}
	if !p.From.CanTransferTo(p.To) {
		return nil, shared.NewValidationError(
			"A " + p.From.Tier.String() + " godown cannot transfer to a " + p.To.Tier.String() + " godown")
	}
	if err := validateTypeForTiers(p.Type, p.From.Tier, p.To.Tier); err != nil {
		return nil, err
	}

	t := &Transfer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FromGodownID:      p.From.ID,
		ToGodownID:        p.To.ID,
		ProductID:         p.ProductID,
		Quantity:          p.Quantity,
		BatchNumber:       optional(p.BatchNumber),
		Type:              p.Type,
		Status:            TransferStatusPending,
		CreatedBy:         p.CreatedBy,
	}
	t.AddDomainEvent(NewTransferRequestedEvent(t))
	return t, nil
}

// A micro godown only sends stock back up, and a local godown only sends
// it down. Area godowns may do either.
func validateTypeForTiers(tt TransferType, from, to godown.Tier) error {
	switch from {
	case godown.TierMicro:
		if tt != TransferTypeReturn {
			return shared.NewValidationError("A micro godown can only return stock to a local godown")
		}
	case godown.TierLocal:
		if tt != TransferTypeTransfer {
			return shared.NewValidationError("A local godown cannot return stock to a micro godown")
		}
	}
	return nil
}

// IsPending reports whether the transfer awaits a decision
func (t *Transfer) IsPending() bool {
	return t.Status == TransferStatusPending
}

// Complete moves a pending transfer to completed. Ledger effects are
// computed separately by Settle.
func (t *Transfer) Complete() error {
	if !t.IsPending() {
		return shared.NewInvalidStateError("Only pending transfers can be approved, this one is " + string(t.Status))
	}
	t.Status = TransferStatusCompleted
	t.Touch()
	return nil
}

// Reject moves a pending transfer to rejected
func (t *Transfer) Reject() error {
	if !t.IsPending() {
		return shared.NewInvalidStateError("Only pending transfers can be rejected, this one is " + string(t.Status))
	}
	t.Status = TransferStatusRejected
	t.Touch()
	t.AddDomainEvent(NewTransferRejectedEvent(t))
	return nil
}

// TransferFilter narrows a transfer listing. A godown matches as either end.
type TransferFilter struct {
	GodownID *uuid.UUID
	Status   *TransferStatus
}
