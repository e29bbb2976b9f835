package godown

import (
	"context"

	"github.com/google/uuid"
)

// GodownRepository defines the interface for godown persistence
type GodownRepository interface {
	// FindByID finds a godown by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Godown, error)

	// FindByIDs finds godowns by ID. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Godown, error)

	// FindAll lists godowns newest first
	FindAll(ctx context.Context, filter ListFilter) ([]Godown, error)

	// Save creates or updates a godown
	Save(ctx context.Context, g *Godown) error

	// Delete removes a godown together with its area and ward rows
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdministrativeUnitRepository reads local body reference data
type AdministrativeUnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdministrativeUnit, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]AdministrativeUnit, error)
	// FindActive lists active units whose name or type contains search
	// (case-insensitive). An empty search returns every active unit.
	FindActive(ctx context.Context, search string) ([]AdministrativeUnit, error)
}

// AssignmentRepository persists area and ward coverage
type AssignmentRepository interface {
	FindAreasByGodown(ctx context.Context, godownID uuid.UUID) ([]AreaAssignment, error)
	FindArea(ctx context.Context, godownID, unitID uuid.UUID) (*AreaAssignment, error)
	SaveAreas(ctx context.Context, rows []AreaAssignment) error
	DeleteArea(ctx context.Context, godownID, unitID uuid.UUID) (int64, error)

	FindWardsByGodown(ctx context.Context, godownID uuid.UUID) ([]WardAssignment, error)
	FindWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]WardAssignment, error)
	// LockWardsByUnit returns every ward row of the unit, locked for update
	// when running inside a transaction
	LockWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]WardAssignment, error)
	DeleteWards(ctx context.Context, godownID, unitID uuid.UUID) (int64, error)
	SaveWards(ctx context.Context, rows []WardAssignment) error
}

// SellerListingRepository reads seller listings bound to area godowns
type SellerListingRepository interface {
	FindByAreaGodown(ctx context.Context, godownID uuid.UUID) ([]SellerListing, error)
}
