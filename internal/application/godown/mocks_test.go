package godown

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godown.Godown), args.Error(1)
}

func (m *MockGodownRepository) Save(ctx context.Context, g *godown.Godown) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGodownRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdministrativeUnitRepository is a mock implementation of AdministrativeUnitRepository
type MockAdministrativeUnitRepository struct {
	mock.Mock
}

func (m *MockAdministrativeUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*godown.AdministrativeUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godown.AdministrativeUnit), args.Error(1)
}

func (m *MockAdministrativeUnitRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]godown.AdministrativeUnit, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]godown.AdministrativeUnit), args.Error(1)
}

func (m *MockAdministrativeUnitRepository) FindActive(ctx context.Context, search string) ([]godown.AdministrativeUnit, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]godown.AdministrativeUnit), args.Error(1)
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindAreasByGodown(ctx context.Context, godownID uuid.UUID) ([]godown.AreaAssignment, error) {
	args := m.Called(ctx, godownID)
	return args.Get(0).([]godown.AreaAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindArea(ctx context.Context, godownID, unitID uuid.UUID) (*godown.AreaAssignment, error) {
	args := m.Called(ctx, godownID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godown.AreaAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) SaveAreas(ctx context.Context, rows []godown.AreaAssignment) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteArea(ctx context.Context, godownID, unitID uuid.UUID) (int64, error) {
	args := m.Called(ctx, godownID, unitID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) FindWardsByGodown(ctx context.Context, godownID uuid.UUID) ([]godown.WardAssignment, error) {
	args := m.Called(ctx, godownID)
	return args.Get(0).([]godown.WardAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]godown.WardAssignment, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]godown.WardAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) LockWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]godown.WardAssignment, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]godown.WardAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteWards(ctx context.Context, godownID, unitID uuid.UUID) (int64, error) {
	args := m.Called(ctx, godownID, unitID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) SaveWards(ctx context.Context, rows []godown.WardAssignment) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

// MockSellerListingRepository is a mock implementation of SellerListingRepository
type MockSellerListingRepository struct {
	mock.Mock
}

func (m *MockSellerListingRepository) FindByAreaGodown(ctx context.Context, godownID uuid.UUID) ([]godown.SellerListing, error) {
	args := m.Called(ctx, godownID)
	return args.Get(0).([]godown.SellerListing), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// eventTypes flattens the event types of every Publish call
func (m *MockEventPublisher) eventTypes() []string {
	types := make([]string, 0)
	for _, call := range m.Calls {
		if call.Method != "Publish" {
			continue
		}
		for _, e := range call.Arguments.Get(1).([]shared.DomainEvent) {
			types = append(types, e.EventType())
		}
	}
	return types
}
