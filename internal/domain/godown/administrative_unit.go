package godown

import (
	"github.com/google/uuid"
)

// AdministrativeUnit is a local body (panchayath, municipality, corporation)
// split into numbered wards. It is reference data owned elsewhere.
type AdministrativeUnit struct {
	ID         uuid.UUID
	Name       string
	UnitType   string
	WardCount  int
	DistrictID *uuid.UUID
	Active     bool
	SortOrder  int
}

// Wards returns every ward number of the unit, 1..WardCount
func (u *AdministrativeUnit) Wards() []int {
	wards := make([]int, 0, u.WardCount)
	for i := 1; i <= u.WardCount; i++ {
		wards = append(wards, i)
	}
	return wards
}

// HasWard reports whether n is a ward of this unit
func (u *AdministrativeUnit) HasWard(n int) bool {
	return n >= 1 && n <= u.WardCount
}
