package godown

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// AreaAssignment links a godown to an administrative unit it covers.
// Micro godowns also carry one per unit they hold wards in.
type AreaAssignment struct {
	ID                   uuid.UUID
	GodownID             uuid.UUID
	AdministrativeUnitID uuid.UUID
	CreatedAt            time.Time
}

// NewAreaAssignment creates a new coverage row
func NewAreaAssignment(godownID, unitID uuid.UUID) AreaAssignment {
	return AreaAssignment{
		ID:                   uuid.New(),
		GodownID:             godownID,
		AdministrativeUnitID: unitID,
		CreatedAt:            time.Now(),
	}
}

// WardAssignment gives a micro godown one ward of a unit.
// A (unit, ward) pair belongs to at most one godown.
type WardAssignment struct {
	ID                   uuid.UUID
	GodownID             uuid.UUID
	AdministrativeUnitID uuid.UUID
	WardNumber           int
}

// NewWardAssignments builds one row per ward number
func NewWardAssignments(godownID, unitID uuid.UUID, wards []int) []WardAssignment {
	rows := make([]WardAssignment, 0, len(wards))
	for _, w := range wards {
		rows = append(rows, WardAssignment{
			ID:                   uuid.New(),
			GodownID:             godownID,
			AdministrativeUnitID: unitID,
			WardNumber:           w,
		})
	}
	return rows
}

// ResolveWards turns a ward request into a sorted, de-duplicated ward list.
// With allWards the request expands to every ward of the unit.
func ResolveWards(unit *AdministrativeUnit, wards []int, allWards bool) ([]int, error) {
	if allWards {
		wards = unit.Wards()
	}
	if len(wards) == 0 {
		return nil, shared.NewValidationError("Select at least one ward")
	}

	seen := make(map[int]struct{}, len(wards))
	resolved := make([]int, 0, len(wards))
	for _, w := range wards {
		if !unit.HasWard(w) {
			return nil, shared.NewValidationError(
				fmt.Sprintf("Ward %d is outside 1..%d for %s", w, unit.WardCount, unit.Name))
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		resolved = append(resolved, w)
	}
	sort.Ints(resolved)
	return resolved, nil
}

// WardsHeldByOthers returns the ward numbers from wanted that some godown
// other than godownID already holds, sorted ascending.
func WardsHeldByOthers(godownID uuid.UUID, existing []WardAssignment, wanted []int) []int {
	taken := make(map[int]struct{})
	for _, w := range existing {
		if w.GodownID != godownID {
			taken[w.WardNumber] = struct{}{}
		}
	}
	clashes := make([]int, 0)
	for _, w := range wanted {
		if _, ok := taken[w]; ok {
			clashes = append(clashes, w)
		}
	}
	sort.Ints(clashes)
	return clashes
}

// NewWardConflictError reports wards already held by other micro godowns
func NewWardConflictError(unit *AdministrativeUnit, wards []int) *shared.DomainError {
	return shared.NewConflictError(
		fmt.Sprintf("Ward %s of %s already assigned to other micro godowns", joinInts(wards), unit.Name),
	).WithDetail("wards", wards)
}

// WardAvailability describes one ward of a unit from the point of view of a godown
type WardAvailability struct {
	WardNumber  int
	HeldByOther bool
	HeldBySelf  bool
}

// Availability lists every ward of unit and who holds it
func Availability(godownID uuid.UUID, unit *AdministrativeUnit, existing []WardAssignment) []WardAvailability {
	holders := make(map[int]uuid.UUID, len(existing))
	for _, w := range existing {
		holders[w.WardNumber] = w.GodownID
	}
	out := make([]WardAvailability, 0, unit.WardCount)
	for _, n := range unit.Wards() {
		holder, held := holders[n]
		out = append(out, WardAvailability{
			WardNumber:  n,
			HeldByOther: held && holder != godownID,
			HeldBySelf:  held && holder == godownID,
		})
	}
	return out
}

// Coverage is an area row joined with its unit and the wards held in it
type Coverage struct {
	Assignment AreaAssignment
	Unit       *AdministrativeUnit
	Wards      []int
}

// AllWards reports whether every ward of the unit is held
func (c Coverage) AllWards() bool {
	return c.Unit != nil && c.Unit.WardCount > 0 && len(c.Wards) == c.Unit.WardCount
}

// NewUnitIDs drops requested ids the godown already covers, keeping request order
func NewUnitIDs(existing []AreaAssignment, requested []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		have[a.AdministrativeUnitID] = struct{}{}
	}
	out := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if _, ok := have[id]; ok {
			continue
		}
		have[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
