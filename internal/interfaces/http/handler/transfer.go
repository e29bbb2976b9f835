package handler

import (
	"context"

	appinv "github.com/erp/godown/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferService is the transfer workflow use case set
type TransferService interface {
	Create(ctx context.Context, req appinv.CreateTransferRequest) (*appinv.TransferResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*appinv.TransferResponse, error)
	List(ctx context.Context, filter appinv.TransferListFilter) ([]appinv.TransferResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*appinv.ApproveTransferResponse, error)
	Reject(ctx context.Context, id uuid.UUID) (*appinv.TransferResponse, error)
}

// TransferHandler handles transfer workflow endpoints
type TransferHandler struct {
	BaseHandler
	transferService TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

type transferListQuery struct {
	GodownID string `form:"godown_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
}

// Create handles POST /transfers. The requester comes from X-User-ID.
func (h *TransferHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid "+UserIDHeader+" header")
		return
	}
	var req appinv.CreateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.CreatedBy = userID

	t, err := h.transferService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, t)
}

// List handles GET /transfers?godown_id=&status=
func (h *TransferHandler) List(c *gin.Context) {
	var q transferListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter := appinv.TransferListFilter{Status: q.Status}
	if q.GodownID != "" {
		id := uuid.MustParse(q.GodownID)
		filter.GodownID = &id
	}

	transfers, err := h.transferService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, transfers)
}

// GetByID handles GET /transfers/:id
func (h *TransferHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	t, err := h.transferService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, t)
}

// Approve handles POST /transfers/:id/approve
func (h *TransferHandler) Approve(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.transferService.Approve(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Reject handles POST /transfers/:id/reject
func (h *TransferHandler) Reject(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	t, err := h.transferService.Reject(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, t)
}
