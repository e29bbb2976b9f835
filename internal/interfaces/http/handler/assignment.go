package handler

import (
	"context"

	godownapp "github.com/erp/godown/internal/application/godown"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentService is the area and ward assignment use case set
type AssignmentService interface {
	ListUnits(ctx context.Context, search string) ([]godownapp.AdministrativeUnitResponse, error)
	AssignWards(ctx context.Context, godownID, unitID uuid.UUID, req godownapp.AssignWardsRequest) (*godownapp.AssignmentResponse, error)
	AssignAreas(ctx context.Context, godownID uuid.UUID, req godownapp.AssignAreasRequest) (*godownapp.AssignAreasResponse, error)
	RemoveAssignment(ctx context.Context, godownID, unitID uuid.UUID) error
	ListAssignments(ctx context.Context, godownID uuid.UUID) ([]godownapp.AssignmentResponse, error)
	AvailableWards(ctx context.Context, godownID, unitID uuid.UUID) ([]godownapp.WardAvailabilityResponse, error)
}

// AssignmentHandler handles coverage endpoints
type AssignmentHandler struct {
	BaseHandler
	assignmentService AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

func (h *AssignmentHandler) godownAndUnit(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	godownID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	unitID, ok := h.ParseUUIDParam(c, "unitId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return godownID, unitID, true
}

// ListUnits handles GET /administrative-units?search=
func (h *AssignmentHandler) ListUnits(c *gin.Context) {
	units, err := h.assignmentService.ListUnits(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, units)
}

// List handles GET /godowns/:id/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	godownID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListAssignments(c.Request.Context(), godownID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, assignments)
}

// AssignWards handles PUT /godowns/:id/assignments/:unitId/wards.
// The body replaces every ward the godown holds in the unit.
func (h *AssignmentHandler) AssignWards(c *gin.Context) {
	godownID, unitID, ok := h.godownAndUnit(c)
	if !ok {
		return
	}
	var req godownapp.AssignWardsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.AssignWards(c.Request.Context(), godownID, unitID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, assignment)
}

// AssignAreas handles POST /godowns/:id/assignments/areas
func (h *AssignmentHandler) AssignAreas(c *gin.Context) {
	godownID, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req godownapp.AssignAreasRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.assignmentService.AssignAreas(c.Request.Context(), godownID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// Remove handles DELETE /godowns/:id/assignments/:unitId
func (h *AssignmentHandler) Remove(c *gin.Context) {
	godownID, unitID, ok := h.godownAndUnit(c)
	if !ok {
		return
	}

	if err := h.assignmentService.RemoveAssignment(c.Request.Context(), godownID, unitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// AvailableWards handles GET /godowns/:id/assignments/:unitId/available-wards
func (h *AssignmentHandler) AvailableWards(c *gin.Context) {
	godownID, unitID, ok := h.godownAndUnit(c)
	if !ok {
		return
	}

	wards, err := h.assignmentService.AvailableWards(c.Request.Context(), godownID, unitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, wards)
}
