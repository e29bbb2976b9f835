package inventory

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// TransferPolicy decides how an approval touches the ledger
type TransferPolicy struct {
	Strategy           inventory.BatchStrategy
	AllowNegativeStock bool
}

// TransferMetrics receives transfer workflow counters
type TransferMetrics interface {
	RecordTransferCreated(ctx context.Context, t *inventory.Transfer)
	RecordTransferCompleted(ctx context.Context, t *inventory.Transfer)
	RecordTransferRejected(ctx context.Context, t *inventory.Transfer)
	RecordStockUnderflow(ctx context.Context, t *inventory.Transfer, shortfall int)
}

// TransferService runs the pending -> completed | rejected workflow
type TransferService struct {
	godownRepo     godown.GodownRepository
	transferRepo   inventory.TransferRepository
	txScope        TransactionScope
	policy         TransferPolicy
	metrics        TransferMetrics
	eventPublisher shared.EventPublisher
}

// NewTransferService creates a new TransferService. A nil strategy selects
// FIFO by creation.
func NewTransferService(
	godownRepo godown.GodownRepository,
	transferRepo inventory.TransferRepository,
	txScope TransactionScope,
	policy TransferPolicy,
) *TransferService {
	if policy.Strategy == nil {
		policy.Strategy = inventory.FIFOCreationStrategy{}
	}
	return &TransferService{
		godownRepo:   godownRepo,
		transferRepo: transferRepo,
		txScope:      txScope,
		policy:       policy,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *TransferService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the metrics recorder (optional)
func (s *TransferService) SetMetrics(m TransferMetrics) {
	s.metrics = m
}

// publishDomainEvents publishes and clears the pending events of t
func (s *TransferService) publishDomainEvents(ctx context.Context, t *inventory.Transfer) {
	events := t.GetDomainEvents()
	t.ClearDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// endpoint loads one end of a requested transfer. A missing godown is an
// input error of the request.
func (s *TransferService) endpoint(ctx context.Context, id uuid.UUID, role string) (*godown.Godown, error) {
	if id == uuid.Nil {
		return nil, shared.NewValidationError(role + " godown is required")
	}
	g, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewValidationError(role + " godown does not exist")
		}
		return nil, err
	}
	return g, nil
}

// Create requests a transfer. Available stock is not checked.
func (s *TransferService) Create(ctx context.Context, req CreateTransferRequest) (*TransferResponse, error) {
	from, err := s.endpoint(ctx, req.FromGodownID, "Source")
	if err != nil {
		return nil, err
	}
	to, err := s.endpoint(ctx, req.ToGodownID, "Destination")
	if err != nil {
		return nil, err
	}
	transferType, err := inventory.ParseTransferType(req.TransferType)
	if err != nil {
		return nil, err
	}

	t, err := inventory.NewTransfer(inventory.NewTransferParams{
		From:        from,
		To:          to,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		BatchNumber: req.BatchNumber,
		Type:        transferType,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	if err := s.transferRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransferCreated(ctx, t)
	}
	s.publishDomainEvents(ctx, t)

	response := ToTransferResponse(t)
	return &response, nil
}

// GetByID retrieves a transfer by ID
func (s *TransferService) GetByID(ctx context.Context, id uuid.UUID) (*TransferResponse, error) {
	t, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransferResponse(t)
	return &response, nil
}

// List lists transfers newest first. A godown filter matches either end.
func (s *TransferService) List(ctx context.Context, filter TransferListFilter) ([]TransferResponse, error) {
	domainFilter := inventory.TransferFilter{GodownID: filter.GodownID}
	if filter.Status != "" {
		status := inventory.TransferStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewValidationError("status must be one of pending, completed, rejected")
		}
		domainFilter.Status = &status
	}
	transfers, err := s.transferRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToTransferResponses(transfers), nil
}

// Approve completes a pending transfer and applies it to the ledger.
//
// The transfer row and the stock rows of both ends are locked for the
// whole transaction, so a concurrent approve of the same transfer waits
// and then sees it is no longer pending.
func (s *TransferService) Approve(ctx context.Context, id uuid.UUID) (*ApproveTransferResponse, error) {
	var (
		transfer   *inventory.Transfer
		settlement *inventory.Settlement
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		t, err := repos.TransferRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !t.IsPending() {
			return shared.NewInvalidStateError("Only pending transfers can be approved, this one is " + string(t.Status))
		}

		destination, source, err := lockEnds(ctx, repos.StockRepo(), t)
		if err != nil {
			return err
		}
		settlement, err = inventory.Settle(t, destination, source, s.policy.Strategy, s.policy.AllowNegativeStock)
		if err != nil {
			return err
		}

		if err := repos.TransferRepo().UpdateStatus(ctx, t); err != nil {
			return err
		}
		for i := range settlement.Updated {
			if err := repos.StockRepo().UpdateQuantity(ctx, &settlement.Updated[i]); err != nil {
				return err
			}
		}
		if len(settlement.Created) > 0 {
			if err := repos.StockRepo().Create(ctx, settlement.Created...); err != nil {
				return err
			}
		}
		transfer = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransferCompleted(ctx, transfer)
		if settlement.HasUnderflow() {
			s.metrics.RecordStockUnderflow(ctx, transfer, settlement.Shortfall)
		}
	}
	s.publishDomainEvents(ctx, transfer)

	return &ApproveTransferResponse{
		Transfer:        ToTransferResponse(transfer),
		SourceAvailable: settlement.SourceAvailable,
		Shortfall:       settlement.Shortfall,
		Clamped:         settlement.Clamped,
	}, nil
}

// lockEnds locks the destination and source rows of the transferred product.
// Godowns are locked in id order so two opposite transfers cannot deadlock.
func lockEnds(ctx context.Context, stock inventory.StockEntryRepository, t *inventory.Transfer) (destination, source []inventory.StockEntry, err error) {
	first, second := t.ToGodownID, t.FromGodownID
	if second.String() < first.String() {
		first, second = second, first
	}
	rows := make(map[uuid.UUID][]inventory.StockEntry, 2)
	for _, g := range []uuid.UUID{first, second} {
		entries, err := stock.LockByGodownProduct(ctx, g, t.ProductID)
		if err != nil {
			return nil, nil, err
		}
		rows[g] = entries
	}
	return rows[t.ToGodownID], rows[t.FromGodownID], nil
}

// Reject closes a pending transfer without touching the ledger
func (s *TransferService) Reject(ctx context.Context, id uuid.UUID) (*TransferResponse, error) {
	var transfer *inventory.Transfer
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		t, err := repos.TransferRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := t.Reject(); err != nil {
			return err
		}
		if err := repos.TransferRepo().UpdateStatus(ctx, t); err != nil {
			return err
		}
		transfer = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransferRejected(ctx, transfer)
	}
	s.publishDomainEvents(ctx, transfer)

	response := ToTransferResponse(transfer)
	return &response, nil
}
