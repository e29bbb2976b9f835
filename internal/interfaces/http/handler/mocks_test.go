package handler

import (
	"context"

	godownapp "github.com/erp/godown/internal/application/godown"
	appinv "github.com/erp/godown/internal/application/inventory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockGodownService struct {
	mock.Mock
}

func (m *MockGodownService) Create(ctx context.Context, req godownapp.CreateGodownRequest) (*godownapp.GodownResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) GetByID(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) List(ctx context.Context, filter godownapp.GodownListFilter) ([]godownapp.GodownResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) Activate(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) Deactivate(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGodownService) TransferTargets(ctx context.Context, id uuid.UUID) ([]godownapp.GodownResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.GodownResponse), args.Error(1)
}

func (m *MockGodownService) SellerListings(ctx context.Context, id uuid.UUID) ([]godownapp.SellerListingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.SellerListingResponse), args.Error(1)
}

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) ListUnits(ctx context.Context, search string) ([]godownapp.AdministrativeUnitResponse, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.AdministrativeUnitResponse), args.Error(1)
}

func (m *MockAssignmentService) AssignWards(ctx context.Context, godownID, unitID uuid.UUID, req godownapp.AssignWardsRequest) (*godownapp.AssignmentResponse, error) {
	args := m.Called(ctx, godownID, unitID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.AssignmentResponse), args.Error(1)
}

func (m *MockAssignmentService) AssignAreas(ctx context.Context, godownID uuid.UUID, req godownapp.AssignAreasRequest) (*godownapp.AssignAreasResponse, error) {
	args := m.Called(ctx, godownID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*godownapp.AssignAreasResponse), args.Error(1)
}

func (m *MockAssignmentService) RemoveAssignment(ctx context.Context, godownID, unitID uuid.UUID) error {
	return m.Called(ctx, godownID, unitID).Error(0)
}

func (m *MockAssignmentService) ListAssignments(ctx context.Context, godownID uuid.UUID) ([]godownapp.AssignmentResponse, error) {
	args := m.Called(ctx, godownID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.AssignmentResponse), args.Error(1)
}

func (m *MockAssignmentService) AvailableWards(ctx context.Context, godownID, unitID uuid.UUID) ([]godownapp.WardAvailabilityResponse, error) {
	args := m.Called(ctx, godownID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]godownapp.WardAvailabilityResponse), args.Error(1)
}

type MockStockLedgerService struct {
	mock.Mock
}

func (m *MockStockLedgerService) AddStock(ctx context.Context, godownID uuid.UUID, req appinv.AddStockRequest) (*appinv.StockEntryResponse, error) {
	args := m.Called(ctx, godownID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.StockEntryResponse), args.Error(1)
}

func (m *MockStockLedgerService) RemoveStockEntry(ctx context.Context, entryID uuid.UUID) error {
	return m.Called(ctx, entryID).Error(0)
}

func (m *MockStockLedgerService) ListStockEntries(ctx context.Context, godownID uuid.UUID) ([]appinv.StockEntryResponse, error) {
	args := m.Called(ctx, godownID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinv.StockEntryResponse), args.Error(1)
}

func (m *MockStockLedgerService) AggregateByProduct(ctx context.Context, godownID uuid.UUID) ([]appinv.ProductTotalResponse, error) {
	args := m.Called(ctx, godownID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinv.ProductTotalResponse), args.Error(1)
}

func (m *MockStockLedgerService) GroupedAvailability(ctx context.Context, godownID uuid.UUID) ([]appinv.AvailabilityResponse, error) {
	args := m.Called(ctx, godownID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinv.AvailabilityResponse), args.Error(1)
}

func (m *MockStockLedgerService) BillGroupedHistory(ctx context.Context, godownID uuid.UUID, filter appinv.HistoryFilter) ([]appinv.BillResponse, error) {
	args := m.Called(ctx, godownID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinv.BillResponse), args.Error(1)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Create(ctx context.Context, req appinv.CreateTransferRequest) (*appinv.TransferResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.TransferResponse), args.Error(1)
}

func (m *MockTransferService) GetByID(ctx context.Context, id uuid.UUID) (*appinv.TransferResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.TransferResponse), args.Error(1)
}

func (m *MockTransferService) List(ctx context.Context, filter appinv.TransferListFilter) ([]appinv.TransferResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appinv.TransferResponse), args.Error(1)
}

func (m *MockTransferService) Approve(ctx context.Context, id uuid.UUID) (*appinv.ApproveTransferResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.ApproveTransferResponse), args.Error(1)
}

func (m *MockTransferService) Reject(ctx context.Context, id uuid.UUID) (*appinv.TransferResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinv.TransferResponse), args.Error(1)
}
