package handler

import (
	"net/http"
	"testing"

	godownapp "github.com/erp/godown/internal/application/godown"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/erp/godown/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupGodownHandler() (*gin.Engine, *MockGodownService) {
	svc := new(MockGodownService)
	h := NewGodownHandler(svc)
	r := newTestEngine()
	r.POST("/godowns", h.Create)
	r.GET("/godowns", h.List)
	r.GET("/godowns/:id", h.GetByID)
	r.DELETE("/godowns/:id", h.Delete)
	r.POST("/godowns/:id/activate", h.Activate)
	r.POST("/godowns/:id/deactivate", h.Deactivate)
	r.GET("/godowns/:id/transfer-targets", h.TransferTargets)
	r.GET("/godowns/:id/seller-listings", h.SellerListings)
	return r, svc
}

func TestGodownHandler_Create(t *testing.T) {
	t.Run("creates godown", func(t *testing.T) {
		r, svc := setupGodownHandler()
		req := godownapp.CreateGodownRequest{Name: "Ward Store", Tier: "micro"}
		svc.On("Create", mock.Anything, req).
			Return(&godownapp.GodownResponse{ID: uuid.New(), Name: "Ward Store", Tier: "micro", IsActive: true}, nil)

		w := performRequest(r, http.MethodPost, "/godowns", map[string]string{"name": "Ward Store", "godown_type": "micro"})

		assert.Equal(t, http.StatusCreated, w.Code)
		var got godownapp.GodownResponse
		decodeData(t, w, &got)
		assert.Equal(t, "Ward Store", got.Name)
		assert.True(t, got.IsActive)
		svc.AssertExpectations(t)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		r, svc := setupGodownHandler()
		w := performRequest(r, http.MethodPost, "/godowns", map[string]string{"godown_type": "micro"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"name"`)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown tier is a validation error", func(t *testing.T) {
		r, svc := setupGodownHandler()
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.NewValidationError("Invalid godown type: warehouse"))

		w := performRequest(r, http.MethodPost, "/godowns", map[string]string{"name": "X", "godown_type": "warehouse"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decode(t, w).Error.Code)
	})
}

func TestGodownHandler_List(t *testing.T) {
	r, svc := setupGodownHandler()
	active := true
	svc.On("List", mock.Anything, godownapp.GodownListFilter{Tier: "micro", Active: &active}).
		Return([]godownapp.GodownResponse{{Name: "A"}, {Name: "B"}}, nil)

	w := performRequest(r, http.MethodGet, "/godowns?tier=micro&active=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []godownapp.GodownResponse
	decodeData(t, w, &got)
	assert.Len(t, got, 2)
	svc.AssertExpectations(t)
}

func TestGodownHandler_GetByID(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		r, _ := setupGodownHandler()
		w := performRequest(r, http.MethodGet, "/godowns/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, decode(t, w).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc := setupGodownHandler()
		id := uuid.New()
		svc.On("GetByID", mock.Anything, id).Return(nil, shared.NewNotFoundError("Godown"))

		w := performRequest(r, http.MethodGet, "/godowns/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, env.Error.Code)
		assert.Equal(t, "test-request", env.Error.RequestID)
	})
}

func TestGodownHandler_StatusAndDelete(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		r, svc := setupGodownHandler()
		id := uuid.New()
		svc.On("Deactivate", mock.Anything, id).Return(&godownapp.GodownResponse{ID: id, IsActive: false}, nil)

		w := performRequest(r, http.MethodPost, "/godowns/"+id.String()+"/deactivate", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("activate an active godown", func(t *testing.T) {
		r, svc := setupGodownHandler()
		id := uuid.New()
		svc.On("Activate", mock.Anything, id).Return(nil, shared.NewInvalidStateError("Godown is already active"))

		w := performRequest(r, http.MethodPost, "/godowns/"+id.String()+"/activate", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := setupGodownHandler()
		id := uuid.New()
		svc.On("Delete", mock.Anything, id).Return(nil)

		w := performRequest(r, http.MethodDelete, "/godowns/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestGodownHandler_TransferTargetsAndListings(t *testing.T) {
	r, svc := setupGodownHandler()
	id := uuid.New()
	svc.On("TransferTargets", mock.Anything, id).Return([]godownapp.GodownResponse{{Name: "Local"}}, nil)
	svc.On("SellerListings", mock.Anything, id).Return([]godownapp.SellerListingResponse{}, nil)

	w := performRequest(r, http.MethodGet, "/godowns/"+id.String()+"/transfer-targets", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var targets []godownapp.GodownResponse
	decodeData(t, w, &targets)
	assert.Equal(t, "Local", targets[0].Name)

	w = performRequest(r, http.MethodGet, "/godowns/"+id.String()+"/seller-listings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}
