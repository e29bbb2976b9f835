package handler

import (
	"context"

	appinv "github.com/erp/godown/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockLedgerService is the stock ledger use case set
type StockLedgerService interface {
	AddStock(ctx context.Context, godownID uuid.UUID, req appinv.AddStockRequest) (*appinv.StockEntryResponse, error)
	RemoveStockEntry(ctx context.Context, entryID uuid.UUID) error
	ListStockEntries(ctx context.Context, godownID uuid.UUID) ([]appinv.StockEntryResponse, error)
	AggregateByProduct(ctx context.Context, godownID uuid.UUID) ([]appinv.ProductTotalResponse, error)
	GroupedAvailability(ctx context.Context, godownID uuid.UUID) ([]appinv.AvailabilityResponse, error)
	BillGroupedHistory(ctx context.Context, godownID uuid.UUID, filter appinv.HistoryFilter) ([]appinv.BillResponse, error)
}

// StockHandler handles stock ledger endpoints
type StockHandler struct {
	BaseHandler
	ledger StockLedgerService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(ledger StockLedgerService) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// Add handles POST /godowns/:id/stock
func (h *StockHandler) Add(c *gin.Context) {
	godownID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req appinv.AddStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := h.ledger.AddStock(c.Request.Context(), godownID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// List handles GET /godowns/:id/stock
func (h *StockHandler) List(c *gin.Context) {
	h.godownView(c, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.ledger.ListStockEntries(ctx, id)
	})
}

// Aggregate handles GET /godowns/:id/stock/aggregate
func (h *StockHandler) Aggregate(c *gin.Context) {
	h.godownView(c, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.ledger.AggregateByProduct(ctx, id)
	})
}

// Availability handles GET /godowns/:id/stock/availability
func (h *StockHandler) Availability(c *gin.Context) {
	h.godownView(c, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.ledger.GroupedAvailability(ctx, id)
	})
}

// History handles GET /godowns/:id/stock/history?from=&to=
func (h *StockHandler) History(c *gin.Context) {
	var filter appinv.HistoryFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	h.godownView(c, func(ctx context.Context, id uuid.UUID) (any, error) {
		return h.ledger.BillGroupedHistory(ctx, id, filter)
	})
}

// Remove handles DELETE /stock-entries/:id
func (h *StockHandler) Remove(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ledger.RemoveStockEntry(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *StockHandler) godownView(c *gin.Context, read func(context.Context, uuid.UUID) (any, error)) {
	godownID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	data, err := read(c.Request.Context(), godownID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, data)
}
