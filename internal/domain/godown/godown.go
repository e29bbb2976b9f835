package godown

import (
	"strings"

	"github.com/erp/godown/internal/domain/shared"
)

// Tier is the level of a godown in the distribution hierarchy
type Tier string

const (
	TierMicro Tier = "micro" // Under one panchayath, multi wards. Customer visible.
	TierLocal Tier = "local" // Multi panchayath backup. Not customer visible.
	TierArea  Tier = "area"  // Multi panchayath + selling partners. Customer visible.
)

// Tiers lists every known tier in display order
var Tiers = []Tier{TierMicro, TierLocal, TierArea}

// IsValid reports whether t is a known tier
func (t Tier) IsValid() bool {
	switch t {
	case TierMicro, TierLocal, TierArea:
		return true
	}
	return false
}

// String returns the tier string
func (t Tier) String() string {
	return string(t)
}

// CustomerVisible reports whether godowns of this tier serve customers directly
func (t Tier) CustomerVisible() bool {
	return t == TierMicro || t == TierArea
}

// Description returns the operator-facing description of the tier
func (t Tier) Description() string {
	switch t {
	case TierMicro:
		return "Under one panchayath, multi wards. Customer visible."
	case TierLocal:
		return "Multi panchayath backup. Not customer visible."
	case TierArea:
		return "Multi panchayath + selling partners. Customer visible."
	}
	return ""
}

// HoldsWards reports whether godowns of this tier are assigned individual wards
func (t Tier) HoldsWards() bool {
	return t == TierMicro
}

// ParseTier parses a tier string
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", shared.NewValidationError("Godown tier must be one of micro, local, area")
	}
	return t, nil
}

const maxNameLength = 255

// Godown is a stock-holding location. It is the aggregate root for
// ward and area coverage.
type Godown struct {
	shared.BaseAggregateRoot
	Name   string
	Tier   Tier
	Active bool
}

// NewGodown creates a new active godown
func NewGodown(name string, tier Tier) (*Godown, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !tier.IsValid() {
		return nil, shared.NewValidationError("Godown tier must be one of micro, local, area")
	}

	g := &Godown{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Tier:              tier,
		Active:            true,
	}
	g.AddDomainEvent(NewGodownCreatedEvent(g))
	return g, nil
}

// Activate makes the godown available for assignment and transfers again
func (g *Godown) Activate() error {
	if g.Active {
		return shared.NewInvalidStateError("Godown is already active")
	}
	g.Active = true
	g.Touch()
	g.AddDomainEvent(NewGodownStatusChangedEvent(g, EventTypeGodownActivated))
	return nil
}

// Deactivate soft-disables the godown
func (g *Godown) Deactivate() error {
	if !g.Active {
		return shared.NewInvalidStateError("Godown is already inactive")
	}
	g.Active = false
	g.Touch()
	g.AddDomainEvent(NewGodownStatusChangedEvent(g, EventTypeGodownDeactivated))
	return nil
}

// MarkDeleted records the deletion event. The caller removes the row.
func (g *Godown) MarkDeleted() {
	g.AddDomainEvent(NewGodownDeletedEvent(g))
}

// CanTransferTo reports whether stock may move from g to target.
//
//	local -> micro
//	micro -> local
//	area  -> any other godown
func (g *Godown) CanTransferTo(target *Godown) bool {
	if target == nil || target.ID == g.ID {
		return false
	}
	switch g.Tier {
	case TierLocal:
		return target.Tier == TierMicro
	case TierMicro:
		return target.Tier == TierLocal
	case TierArea:
		return true
	}
	return false
}

// TransferTargets filters candidates down to the ones g may send stock to.
// Inactive candidates are dropped.
func (g *Godown) TransferTargets(candidates []Godown) []Godown {
	targets := make([]Godown, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if c.Active && g.CanTransferTo(c) {
			targets = append(targets, *c)
		}
	}
	return targets
}

func validateName(name string) error {
	if name == "" {
		return shared.NewValidationError("Godown name cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewValidationError("Godown name cannot exceed 255 characters")
	}
	return nil
}

// ListFilter narrows a godown listing. Nil fields are not applied.
type ListFilter struct {
	Tier   *Tier
	Active *bool
}
