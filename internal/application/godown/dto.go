package godown

import (
	"sort"
	"time"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Godown DTOs
// =============================================================================

// CreateGodownRequest represents a request to create a new godown
type CreateGodownRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Tier string `json:"godown_type" binding:"required"`
}

// GodownListFilter narrows a godown listing. Empty fields are not applied.
type GodownListFilter struct {
	Tier   string `form:"tier"`
	Active *bool  `form:"active"`
}

// GodownResponse represents a godown in API responses
type GodownResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Tier            string    `json:"godown_type"`
	TierDescription string    `json:"godown_type_description"`
	CustomerVisible bool      `json:"customer_visible"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToGodownResponse converts a domain Godown to GodownResponse
func ToGodownResponse(g *godown.Godown) GodownResponse {
	return GodownResponse{
		ID:              g.ID,
		Name:            g.Name,
		Tier:            g.Tier.String(),
		TierDescription: g.Tier.Description(),
		CustomerVisible: g.Tier.CustomerVisible(),
		IsActive:        g.Active,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

// ToGodownResponses converts a slice of domain Godowns
func ToGodownResponses(godowns []godown.Godown) []GodownResponse {
	responses := make([]GodownResponse, len(godowns))
	for i := range godowns {
		responses[i] = ToGodownResponse(&godowns[i])
	}
	return responses
}

// SellerListingResponse represents a seller listing shown under an area godown
type SellerListingResponse struct {
	ID       uuid.UUID       `json:"id"`
	SellerID uuid.UUID       `json:"seller_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	MRP      decimal.Decimal `json:"mrp"`
	Stock    int             `json:"stock"`
	Category string          `json:"category,omitempty"`
}

// ToSellerListingResponses converts domain listings
func ToSellerListingResponses(listings []godown.SellerListing) []SellerListingResponse {
	responses := make([]SellerListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, SellerListingResponse{
			ID:       l.ID,
			SellerID: l.SellerID,
			Name:     l.Name,
			Price:    l.Price,
			MRP:      l.MRP,
			Stock:    l.Stock,
			Category: l.Category,
		})
	}
	return responses
}

// =============================================================================
// Administrative unit DTOs
// =============================================================================

// AdministrativeUnitResponse represents a local body in API responses
type AdministrativeUnitResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	UnitType   string     `json:"body_type"`
	WardCount  int        `json:"ward_count"`
	DistrictID *uuid.UUID `json:"district_id,omitempty"`
	SortOrder  int        `json:"sort_order"`
}

// ToAdministrativeUnitResponse converts a domain AdministrativeUnit
func ToAdministrativeUnitResponse(u *godown.AdministrativeUnit) AdministrativeUnitResponse {
	return AdministrativeUnitResponse{
		ID:         u.ID,
		Name:       u.Name,
		UnitType:   u.UnitType,
		WardCount:  u.WardCount,
		DistrictID: u.DistrictID,
		SortOrder:  u.SortOrder,
	}
}

// =============================================================================
// Assignment DTOs
// =============================================================================

// AssignWardsRequest replaces the wards a micro godown holds in one unit
type AssignWardsRequest struct {
	WardNumbers []int `json:"ward_numbers"`
	AllWards    bool  `json:"all_wards"`
}

// AssignAreasRequest adds units to the coverage of a local or area godown
type AssignAreasRequest struct {
	UnitIDs []uuid.UUID `json:"local_body_ids" binding:"required,min=1"`
}

// AssignAreasResponse reports the units actually added
type AssignAreasResponse struct {
	Assigned []uuid.UUID `json:"assigned"`
	Count    int         `json:"count"`
}

// AssignmentResponse is one covered unit with the wards held in it
type AssignmentResponse struct {
	ID          uuid.UUID                   `json:"id"`
	GodownID    uuid.UUID                   `json:"godown_id"`
	Unit        *AdministrativeUnitResponse `json:"local_body,omitempty"`
	WardNumbers []int                       `json:"ward_numbers"`
	AllWards    bool                        `json:"all_wards"`
	CreatedAt   time.Time                   `json:"created_at"`
}

// ToAssignmentResponse converts a domain Coverage
func ToAssignmentResponse(c godown.Coverage) AssignmentResponse {
	wards := append([]int(nil), c.Wards...)
	sort.Ints(wards)
	if wards == nil {
		wards = []int{}
	}
	r := AssignmentResponse{
		ID:          c.Assignment.ID,
		GodownID:    c.Assignment.GodownID,
		WardNumbers: wards,
		AllWards:    c.AllWards(),
		CreatedAt:   c.Assignment.CreatedAt,
	}
	if c.Unit != nil {
		unit := ToAdministrativeUnitResponse(c.Unit)
		r.Unit = &unit
	}
	return r
}

// WardAvailabilityResponse is one ward of a unit as seen by a godown
type WardAvailabilityResponse struct {
	WardNumber  int  `json:"ward_number"`
	HeldByOther bool `json:"held_by_other"`
	HeldBySelf  bool `json:"held_by_self"`
}

// ToWardAvailabilityResponses converts domain ward availability rows
func ToWardAvailabilityResponses(rows []godown.WardAvailability) []WardAvailabilityResponse {
	out := make([]WardAvailabilityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, WardAvailabilityResponse{
			WardNumber:  r.WardNumber,
			HeldByOther: r.HeldByOther,
			HeldBySelf:  r.HeldBySelf,
		})
	}
	return out
}
