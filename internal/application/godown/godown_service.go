package godown

import (
	"context"
	"errors"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

// GodownService handles the godown registry
type GodownService struct {
	godownRepo     godown.GodownRepository
	sellerRepo     godown.SellerListingRepository
	eventPublisher shared.EventPublisher
}

// NewGodownService creates a new GodownService
func NewGodownService(godownRepo godown.GodownRepository, sellerRepo godown.SellerListingRepository) *GodownService {
	return &GodownService{
		godownRepo: godownRepo,
		sellerRepo: sellerRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *GodownService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishDomainEvents publishes and clears the pending events of g
func (s *GodownService) publishDomainEvents(ctx context.Context, g *godown.Godown) {
	events := g.GetDomainEvents()
	g.ClearDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
}

// Create creates a new active godown
func (s *GodownService) Create(ctx context.Context, req CreateGodownRequest) (*GodownResponse, error) {
	tier, err := godown.ParseTier(req.Tier)
	if err != nil {
		return nil, err
	}
	g, err := godown.NewGodown(req.Name, tier)
	if err != nil {
		return nil, err
	}
	if err := s.godownRepo.Save(ctx, g); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, g)

	response := ToGodownResponse(g)
	return &response, nil
}

// GetByID retrieves a godown by ID
func (s *GodownService) GetByID(ctx context.Context, id uuid.UUID) (*GodownResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToGodownResponse(g)
	return &response, nil
}

// List retrieves godowns newest first
func (s *GodownService) List(ctx context.Context, filter GodownListFilter) ([]GodownResponse, error) {
	domainFilter := godown.ListFilter{Active: filter.Active}
	if filter.Tier != "" {
		tier, err := godown.ParseTier(filter.Tier)
		if err != nil {
			return nil, err
		}
		domainFilter.Tier = &tier
	}

	godowns, err := s.godownRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToGodownResponses(godowns), nil
}

// Activate re-enables a deactivated godown
func (s *GodownService) Activate(ctx context.Context, id uuid.UUID) (*GodownResponse, error) {
	return s.changeStatus(ctx, id, (*godown.Godown).Activate)
}

// Deactivate soft-disables a godown
func (s *GodownService) Deactivate(ctx context.Context, id uuid.UUID) (*GodownResponse, error) {
	return s.changeStatus(ctx, id, (*godown.Godown).Deactivate)
}

func (s *GodownService) changeStatus(ctx context.Context, id uuid.UUID, transition func(*godown.Godown) error) (*GodownResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(g); err != nil {
		return nil, err
	}
	if err := s.godownRepo.Save(ctx, g); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, g)

	response := ToGodownResponse(g)
	return &response, nil
}

// Delete removes a godown and its coverage. Stock entries and transfers
// that reference it are left in place.
func (s *GodownService) Delete(ctx context.Context, id uuid.UUID) error {
	g, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.godownRepo.Delete(ctx, id); err != nil {
		return err
	}
	g.MarkDeleted()
	s.publishDomainEvents(ctx, g)
	return nil
}

// TransferTargets lists the active godowns the given godown may send stock to
func (s *GodownService) TransferTargets(ctx context.Context, id uuid.UUID) ([]GodownResponse, error) {
	source, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	active := true
	candidates, err := s.godownRepo.FindAll(ctx, godown.ListFilter{Active: &active})
	if err != nil {
		return nil, err
	}
	return ToGodownResponses(source.TransferTargets(candidates)), nil
}

// SellerListings lists the approved, active seller listings bound to an
// area godown. Other tiers carry no listings.
func (s *GodownService) SellerListings(ctx context.Context, id uuid.UUID) ([]SellerListingResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Tier != godown.TierArea {
		return []SellerListingResponse{}, nil
	}

	listings, err := s.sellerRepo.FindByAreaGodown(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	visible := listings[:0]
	for _, l := range listings {
		if l.Visible() {
			visible = append(visible, l)
		}
	}
	return ToSellerListingResponses(visible), nil
}

// isNotFound reports whether err is a NOT_FOUND domain error
func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
