package godown

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// AssignmentService manages which administrative units and wards a godown covers
type AssignmentService struct {
	godownRepo     godown.GodownRepository
	unitRepo       godown.AdministrativeUnitRepository
	assignmentRepo godown.AssignmentRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	godownRepo godown.GodownRepository,
	unitRepo godown.AdministrativeUnitRepository,
	assignmentRepo godown.AssignmentRepository,
	txScope TransactionScope,
) *AssignmentService {
	return &AssignmentService{
		godownRepo:     godownRepo,
		unitRepo:       unitRepo,
		assignmentRepo: assignmentRepo,
		txScope:        txScope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AssignmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *AssignmentService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// ListUnits lists active administrative units matching search
func (s *AssignmentService) ListUnits(ctx context.Context, search string) ([]AdministrativeUnitResponse, error) {
	units, err := s.unitRepo.FindActive(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]AdministrativeUnitResponse, 0, len(units))
	for i := range units {
		out = append(out, ToAdministrativeUnitResponse(&units[i]))
	}
	return out, nil
}

// activeUnit loads a unit that wards may be assigned in. Unknown and
// inactive units are input errors, not missing resources.
func (s *AssignmentService) activeUnit(ctx context.Context, unitID uuid.UUID) (*godown.AdministrativeUnit, error) {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewValidationError("Administrative unit does not exist")
		}
		return nil, err
	}
	if !unit.Active {
		return nil, shared.NewValidationError("Administrative unit " + unit.Name + " is inactive")
	}
	return unit, nil
}

// AssignWards replaces the wards a micro godown holds in one unit.
//
// The area row is created if missing, the other godowns' wards in the unit
// are read under lock and any clash aborts the whole replacement.
func (s *AssignmentService) AssignWards(ctx context.Context, godownID, unitID uuid.UUID, req AssignWardsRequest) (*AssignmentResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}
	if !g.Tier.HoldsWards() {
		return nil, shared.NewValidationError("Wards can only be assigned to micro godowns")
	}
	unit, err := s.activeUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	wards, err := godown.ResolveWards(unit, req.WardNumbers, req.AllWards)
	if err != nil {
		return nil, err
	}

	var area *godown.AreaAssignment
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		assignments := repos.AssignmentRepo()

		area, err = assignments.FindArea(ctx, g.ID, unit.ID)
		if err != nil {
			if !isNotFound(err) {
				return err
			}
			created := godown.NewAreaAssignment(g.ID, unit.ID)
			if err := assignments.SaveAreas(ctx, []godown.AreaAssignment{created}); err != nil {
				return err
			}
			area = &created
		}

		existing, err := assignments.LockWardsByUnit(ctx, unit.ID)
		if err != nil {
			return err
		}
		if clashes := godown.WardsHeldByOthers(g.ID, existing, wards); len(clashes) > 0 {
			return godown.NewWardConflictError(unit, clashes)
		}

		if _, err := assignments.DeleteWards(ctx, g.ID, unit.ID); err != nil {
			return err
		}
		return assignments.SaveWards(ctx, godown.NewWardAssignments(g.ID, unit.ID, wards))
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, godown.NewWardsAssignedEvent(g.ID, unit.ID, wards))

	response := ToAssignmentResponse(godown.Coverage{Assignment: *area, Unit: unit, Wards: wards})
	return &response, nil
}

// AssignAreas adds units to the coverage of a local or area godown.
// Units the godown already covers are skipped.
func (s *AssignmentService) AssignAreas(ctx context.Context, godownID uuid.UUID, req AssignAreasRequest) (*AssignAreasResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}
	if g.Tier.HoldsWards() {
		return nil, shared.NewValidationError("Micro godowns are assigned wards, not whole areas")
	}
	if len(req.UnitIDs) == 0 {
		return nil, shared.NewValidationError("Select at least one administrative unit")
	}

	units, err := s.unitRepo.FindByIDs(ctx, req.UnitIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]struct{}, len(units))
	for _, u := range units {
		known[u.ID] = struct{}{}
	}
	for _, id := range req.UnitIDs {
		if _, ok := known[id]; !ok {
			return nil, shared.NewValidationError("Administrative unit " + id.String() + " does not exist")
		}
	}

	var added []uuid.UUID
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		assignments := repos.AssignmentRepo()
		existing, err := assignments.FindAreasByGodown(ctx, g.ID)
		if err != nil {
			return err
		}
		added = godown.NewUnitIDs(existing, req.UnitIDs)
		if len(added) == 0 {
			return shared.NewValidationError("All selected administrative units are already assigned")
		}
		rows := make([]godown.AreaAssignment, 0, len(added))
		for _, id := range added {
			rows = append(rows, godown.NewAreaAssignment(g.ID, id))
		}
		return assignments.SaveAreas(ctx, rows)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, godown.NewAreasAssignedEvent(g.ID, added))
	return &AssignAreasResponse{Assigned: added, Count: len(added)}, nil
}

// RemoveAssignment drops a unit and its wards from a godown's coverage.
// Removing something that is not assigned succeeds without an event.
func (s *AssignmentService) RemoveAssignment(ctx context.Context, godownID, unitID uuid.UUID) error {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return err
	}

	var wardsRemoved, areasRemoved int64
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		assignments := repos.AssignmentRepo()
		if wardsRemoved, err = assignments.DeleteWards(ctx, g.ID, unitID); err != nil {
			return err
		}
		areasRemoved, err = assignments.DeleteArea(ctx, g.ID, unitID)
		return err
	})
	if err != nil {
		return err
	}

	if wardsRemoved+areasRemoved > 0 {
		s.publish(ctx, godown.NewAssignmentRemovedEvent(g.ID, unitID, wardsRemoved))
	}
	return nil
}

// ListAssignments lists a godown's covered units with their held wards
func (s *AssignmentService) ListAssignments(ctx context.Context, godownID uuid.UUID) ([]AssignmentResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}
	areas, err := s.assignmentRepo.FindAreasByGodown(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return []AssignmentResponse{}, nil
	}
	wards, err := s.assignmentRepo.FindWardsByGodown(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	unitIDs := make([]uuid.UUID, 0, len(areas))
	for _, a := range areas {
		unitIDs = append(unitIDs, a.AdministrativeUnitID)
	}
	units, err := s.unitRepo.FindByIDs(ctx, unitIDs)
	if err != nil {
		return nil, err
	}
	unitByID := make(map[uuid.UUID]*godown.AdministrativeUnit, len(units))
	for i := range units {
		unitByID[units[i].ID] = &units[i]
	}
	wardsByUnit := make(map[uuid.UUID][]int)
	for _, w := range wards {
		wardsByUnit[w.AdministrativeUnitID] = append(wardsByUnit[w.AdministrativeUnitID], w.WardNumber)
	}

	out := make([]AssignmentResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, ToAssignmentResponse(godown.Coverage{
			Assignment: a,
			Unit:       unitByID[a.AdministrativeUnitID],
			Wards:      wardsByUnit[a.AdministrativeUnitID],
		}))
	}
	return out, nil
}

// AvailableWards lists every ward of a unit and whether another godown
// holds it. The read takes no lock.
func (s *AssignmentService) AvailableWards(ctx context.Context, godownID, unitID uuid.UUID) ([]WardAvailabilityResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	existing, err := s.assignmentRepo.FindWardsByUnit(ctx, unit.ID)
	if err != nil {
		return nil, err
	}
	return ToWardAvailabilityResponses(godown.Availability(g.ID, unit, existing)), nil
}
