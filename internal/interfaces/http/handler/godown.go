package handler

import (
	"context"

	godownapp "github.com/erp/godown/internal/application/godown"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GodownService is the godown lifecycle use case set
type GodownService interface {
	Create(ctx context.Context, req godownapp.CreateGodownRequest) (*godownapp.GodownResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error)
	List(ctx context.Context, filter godownapp.GodownListFilter) ([]godownapp.GodownResponse, error)
	Activate(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*godownapp.GodownResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TransferTargets(ctx context.Context, id uuid.UUID) ([]godownapp.GodownResponse, error)
	SellerListings(ctx context.Context, id uuid.UUID) ([]godownapp.SellerListingResponse, error)
}

// GodownHandler handles godown lifecycle endpoints
type GodownHandler struct {
	BaseHandler
	godownService GodownService
}

// NewGodownHandler creates a new GodownHandler
func NewGodownHandler(godownService GodownService) *GodownHandler {
	return &GodownHandler{godownService: godownService}
}

// Create handles POST /godowns
func (h *GodownHandler) Create(c *gin.Context) {
	var req godownapp.CreateGodownRequest
	if !h.BindJSON(c, &req) {
		return
	}

	g, err := h.godownService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, g)
}

// List handles GET /godowns?tier=&active=
func (h *GodownHandler) List(c *gin.Context) {
	var filter godownapp.GodownListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	godowns, err := h.godownService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, godowns)
}

// GetByID handles GET /godowns/:id
func (h *GodownHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := h.godownService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, g)
}

// Activate handles POST /godowns/:id/activate
func (h *GodownHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.godownService.Activate)
}

// Deactivate handles POST /godowns/:id/deactivate
func (h *GodownHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.godownService.Deactivate)
}

func (h *GodownHandler) changeStatus(c *gin.Context, fn func(context.Context, uuid.UUID) (*godownapp.GodownResponse, error)) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, g)
}

// Delete handles DELETE /godowns/:id. Assignments go with the godown.
func (h *GodownHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.godownService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// TransferTargets handles GET /godowns/:id/transfer-targets
func (h *GodownHandler) TransferTargets(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	targets, err := h.godownService.TransferTargets(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, targets)
}

// SellerListings handles GET /godowns/:id/seller-listings
func (h *GodownHandler) SellerListings(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	listings, err := h.godownService.SellerListings(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, listings)
}
