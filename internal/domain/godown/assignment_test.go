package godown

import (
	"errors"
	"testing"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnit(wards int) *AdministrativeUnit {
	return &AdministrativeUnit{
		ID:        uuid.New(),
		Name:      "Edathala",
		UnitType:  "panchayath",
		WardCount: wards,
		Active:    true,
	}
}

func TestResolveWards(t *testing.T) {
	unit := testUnit(12)

	t.Run("all wards expands to 1..wardCount", func(t *testing.T) {
		wards, err := ResolveWards(unit, nil, true)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, wards)
	})

	t.Run("explicit wards are sorted and de-duplicated", func(t *testing.T) {
		wards, err := ResolveWards(unit, []int{7, 2, 7, 5}, false)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5, 7}, wards)
	})

	t.Run("empty set is a validation error", func(t *testing.T) {
		_, err := ResolveWards(unit, []int{}, false)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("all wards on a unit without wards is a validation error", func(t *testing.T) {
		_, err := ResolveWards(testUnit(0), nil, true)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("ward outside range is a validation error", func(t *testing.T) {
		_, err := ResolveWards(unit, []int{0, 13}, false)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestWardsHeldByOthers(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	unitID := uuid.New()
	existing := append(
		NewWardAssignments(self, unitID, []int{1, 2}),
		NewWardAssignments(other, unitID, []int{4, 3})...,
	)

	assert.Empty(t, WardsHeldByOthers(self, existing, []int{1, 2, 5}))
	assert.Equal(t, []int{3, 4}, WardsHeldByOthers(self, existing, []int{4, 3, 5}))
}

func TestNewWardConflictError(t *testing.T) {
	err := NewWardConflictError(testUnit(10), []int{3, 4})
	assert.True(t, errors.Is(err, shared.ErrConflict))
	assert.Contains(t, err.Error(), "Ward 3, 4 of Edathala")
	assert.Equal(t, []int{3, 4}, err.Details["wards"])

	single := NewWardConflictError(testUnit(10), []int{12})
	assert.Contains(t, single.Error(), "Ward 12 of Edathala")
}

func TestAvailability(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	unit := testUnit(3)
	existing := []WardAssignment{
		{GodownID: self, AdministrativeUnitID: unit.ID, WardNumber: 1},
		{GodownID: other, AdministrativeUnitID: unit.ID, WardNumber: 3},
	}

	got := Availability(self, unit, existing)
	require.Len(t, got, 3)
	assert.Equal(t, WardAvailability{WardNumber: 1, HeldBySelf: true}, got[0])
	assert.Equal(t, WardAvailability{WardNumber: 2}, got[1])
	assert.Equal(t, WardAvailability{WardNumber: 3, HeldByOther: true}, got[2])
}

func TestNewUnitIDs(t *testing.T) {
	g := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	existing := []AreaAssignment{NewAreaAssignment(g, a)}

	assert.Equal(t, []uuid.UUID{b, c}, NewUnitIDs(existing, []uuid.UUID{a, b, c, b}))
	assert.Empty(t, NewUnitIDs(existing, []uuid.UUID{a}))
}

func TestCoverage_AllWards(t *testing.T) {
	unit := testUnit(2)
	assert.True(t, Coverage{Unit: unit, Wards: []int{1, 2}}.AllWards())
	assert.False(t, Coverage{Unit: unit, Wards: []int{1}}.AllWards())
	assert.False(t, Coverage{Wards: []int{1}}.AllWards())
}
