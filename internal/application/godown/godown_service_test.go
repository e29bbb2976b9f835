package godown

import (
	"context"
	"testing"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGodown(t *testing.T, name string, tier godown.Tier) *godown.Godown {
	t.Helper()
	g, err := godown.NewGodown(name, tier)
	require.NoError(t, err)
	g.ClearDomainEvents()
	return g
}

func setupGodownService() (*GodownService, *MockGodownRepository, *MockSellerListingRepository, *MockEventPublisher) {
	godownRepo := new(MockGodownRepository)
	sellerRepo := new(MockSellerListingRepository)
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := NewGodownService(godownRepo, sellerRepo)
	svc.SetEventPublisher(publisher)
	return svc, godownRepo, sellerRepo, publisher
}

func TestGodownService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active godown and publishes GodownCreated", func(t *testing.T) {
		svc, repo, _, publisher := setupGodownService()
		repo.On("Save", ctx, mock.AnythingOfType("*godown.Godown")).Return(nil)

		resp, err := svc.Create(ctx, CreateGodownRequest{Name: "  Kumarakom Micro ", Tier: "MICRO"})
		require.NoError(t, err)
		assert.Equal(t, "Kumarakom Micro", resp.Name)
		assert.Equal(t, "micro", resp.Tier)
		assert.True(t, resp.IsActive)
		assert.True(t, resp.CustomerVisible)
		assert.Equal(t, []string{godown.EventTypeGodownCreated}, publisher.eventTypes())
	})

	t.Run("rejects an unknown tier without saving", func(t *testing.T) {
		svc, repo, _, _ := setupGodownService()

		_, err := svc.Create(ctx, CreateGodownRequest{Name: "X", Tier: "regional"})
		assert.ErrorIs(t, err, shared.ErrValidation)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		svc, _, _, _ := setupGodownService()

		_, err := svc.Create(ctx, CreateGodownRequest{Name: "   ", Tier: "local"})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestGodownService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes tier and active filters through", func(t *testing.T) {
		svc, repo, _, _ := setupGodownService()
		active := true
		tier := godown.TierArea
		g := newTestGodown(t, "Area", godown.TierArea)
		repo.On("FindAll", ctx, godown.ListFilter{Tier: &tier, Active: &active}).Return([]godown.Godown{*g}, nil)

		list, err := svc.List(ctx, GodownListFilter{Tier: "area", Active: &active})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, g.ID, list[0].ID)
	})

	t.Run("rejects an unknown tier filter", func(t *testing.T) {
		svc, _, _, _ := setupGodownService()

		_, err := svc.List(ctx, GodownListFilter{Tier: "huge"})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestGodownService_ActivateDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate then activate", func(t *testing.T) {
		svc, repo, _, publisher := setupGodownService()
		g := newTestGodown(t, "Local", godown.TierLocal)
		repo.On("FindByID", ctx, g.ID).Return(g, nil)
		repo.On("Save", ctx, g).Return(nil)

		resp, err := svc.Deactivate(ctx, g.ID)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)

		resp, err = svc.Activate(ctx, g.ID)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)

		assert.Equal(t, []string{godown.EventTypeGodownDeactivated, godown.EventTypeGodownActivated}, publisher.eventTypes())
	})

	t.Run("activating an active godown is an invalid state", func(t *testing.T) {
		svc, repo, _, _ := setupGodownService()
		g := newTestGodown(t, "Local", godown.TierLocal)
		repo.On("FindByID", ctx, g.ID).Return(g, nil)

		_, err := svc.Activate(ctx, g.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown godown is not found", func(t *testing.T) {
		svc, repo, _, _ := setupGodownService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.NewNotFoundError("Godown"))

		_, err := svc.Deactivate(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGodownService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, publisher := setupGodownService()
	g := newTestGodown(t, "Micro", godown.TierMicro)
	repo.On("FindByID", ctx, g.ID).Return(g, nil)
	repo.On("Delete", ctx, g.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, g.ID))
	assert.Equal(t, []string{godown.EventTypeGodownDeleted}, publisher.eventTypes())
}

func TestGodownService_TransferTargets(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := setupGodownService()

	local := newTestGodown(t, "Local", godown.TierLocal)
	micro := newTestGodown(t, "Micro", godown.TierMicro)
	area := newTestGodown(t, "Area", godown.TierArea)
	active := true
	repo.On("FindByID", ctx, local.ID).Return(local, nil)
	repo.On("FindAll", ctx, godown.ListFilter{Active: &active}).
		Return([]godown.Godown{*local, *micro, *area}, nil)

	targets, err := svc.TransferTargets(ctx, local.ID)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, micro.ID, targets[0].ID)
}

func TestGodownService_SellerListings(t *testing.T) {
	ctx := context.Background()

	t.Run("area godown returns visible listings", func(t *testing.T) {
		svc, repo, sellers, _ := setupGodownService()
		area := newTestGodown(t, "Area", godown.TierArea)
		repo.On("FindByID", ctx, area.ID).Return(area, nil)
		sellers.On("FindByAreaGodown", ctx, area.ID).Return([]godown.SellerListing{
			{ID: uuid.New(), Name: "Banana chips", Price: decimal.NewFromInt(80), Approved: true, Active: true},
			{ID: uuid.New(), Name: "Pending", Approved: false, Active: true},
		}, nil)

		listings, err := svc.SellerListings(ctx, area.ID)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Banana chips", listings[0].Name)
	})

	t.Run("other tiers have no listings", func(t *testing.T) {
		svc, repo, sellers, _ := setupGodownService()
		micro := newTestGodown(t, "Micro", godown.TierMicro)
		repo.On("FindByID", ctx, micro.ID).Return(micro, nil)

		listings, err := svc.SellerListings(ctx, micro.ID)
		require.NoError(t, err)
		assert.Empty(t, listings)
		sellers.AssertNotCalled(t, "FindByAreaGodown", mock.Anything, mock.Anything)
	})
}
