package godown

import (
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeGodown is the aggregate type name used on godown events
const AggregateTypeGodown = "Godown"

// Event type constants for Godown
const (
	EventTypeGodownCreated     = "GodownCreated"
	EventTypeGodownActivated   = "GodownActivated"
	EventTypeGodownDeactivated = "GodownDeactivated"
	EventTypeGodownDeleted     = "GodownDeleted"
	EventTypeWardsAssigned     = "WardsAssigned"
	EventTypeAreasAssigned     = "AreasAssigned"
	EventTypeAssignmentRemoved = "AssignmentRemoved"
)

// GodownCreatedEvent is published when a new godown is created
type GodownCreatedEvent struct {
	shared.BaseDomainEvent
	GodownID uuid.UUID `json:"godown_id"`
	Name     string    `json:"name"`
	Tier     Tier      `json:"tier"`
}

// NewGodownCreatedEvent creates a new GodownCreatedEvent
func NewGodownCreatedEvent(g *Godown) *GodownCreatedEvent {
	return &GodownCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGodownCreated, AggregateTypeGodown, g.ID),
		GodownID:        g.ID,
		Name:            g.Name,
		Tier:            g.Tier,
	}
}

// GodownStatusChangedEvent is published on activation and deactivation
type GodownStatusChangedEvent struct {
	shared.BaseDomainEvent
	GodownID uuid.UUID `json:"godown_id"`
	Name     string    `json:"name"`
	Active   bool      `json:"active"`
}

// NewGodownStatusChangedEvent creates an event of the given type
func NewGodownStatusChangedEvent(g *Godown, eventType string) *GodownStatusChangedEvent {
	return &GodownStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeGodown, g.ID),
		GodownID:        g.ID,
		Name:            g.Name,
		Active:          g.Active,
	}
}

// GodownDeletedEvent is published when a godown and its coverage are removed
type GodownDeletedEvent struct {
	shared.BaseDomainEvent
	GodownID uuid.UUID `json:"godown_id"`
	Name     string    `json:"name"`
}

// NewGodownDeletedEvent creates a new GodownDeletedEvent
func NewGodownDeletedEvent(g *Godown) *GodownDeletedEvent {
	return &GodownDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGodownDeleted, AggregateTypeGodown, g.ID),
		GodownID:        g.ID,
		Name:            g.Name,
	}
}

// WardsAssignedEvent is published after a ward set replaced the previous one
type WardsAssignedEvent struct {
	shared.BaseDomainEvent
	GodownID             uuid.UUID `json:"godown_id"`
	AdministrativeUnitID uuid.UUID `json:"administrative_unit_id"`
	Wards                []int     `json:"wards"`
}

// NewWardsAssignedEvent creates a new WardsAssignedEvent
func NewWardsAssignedEvent(godownID, unitID uuid.UUID, wards []int) *WardsAssignedEvent {
	return &WardsAssignedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeWardsAssigned, AggregateTypeGodown, godownID),
		GodownID:             godownID,
		AdministrativeUnitID: unitID,
		Wards:                wards,
	}
}

// AreasAssignedEvent is published when units are added to a godown's coverage
type AreasAssignedEvent struct {
	shared.BaseDomainEvent
	GodownID              uuid.UUID   `json:"godown_id"`
	AdministrativeUnitIDs []uuid.UUID `json:"administrative_unit_ids"`
}

// NewAreasAssignedEvent creates a new AreasAssignedEvent
func NewAreasAssignedEvent(godownID uuid.UUID, unitIDs []uuid.UUID) *AreasAssignedEvent {
	return &AreasAssignedEvent{
		BaseDomainEvent:       shared.NewBaseDomainEvent(EventTypeAreasAssigned, AggregateTypeGodown, godownID),
		GodownID:              godownID,
		AdministrativeUnitIDs: unitIDs,
	}
}

// AssignmentRemovedEvent is published when a unit is dropped from coverage
type AssignmentRemovedEvent struct {
	shared.BaseDomainEvent
	GodownID             uuid.UUID `json:"godown_id"`
	AdministrativeUnitID uuid.UUID `json:"administrative_unit_id"`
	WardsRemoved         int64     `json:"wards_removed"`
}

// NewAssignmentRemovedEvent creates a new AssignmentRemovedEvent
func NewAssignmentRemovedEvent(godownID, unitID uuid.UUID, wardsRemoved int64) *AssignmentRemovedEvent {
	return &AssignmentRemovedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeAssignmentRemoved, AggregateTypeGodown, godownID),
		GodownID:             godownID,
		AdministrativeUnitID: unitID,
		WardsRemoved:         wardsRemoved,
	}
}
