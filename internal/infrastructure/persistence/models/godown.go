package models

import (
	"time"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GodownModel is the persistence model for the Godown aggregate
type GodownModel struct {
	BaseModel
	Name       string `gorm:"type:varchar(255);not null"`
	GodownType string `gorm:"column:godown_type;type:varchar(20);not null;index"`
	IsActive   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (GodownModel) TableName() string {
	return "godowns"
}

// ToDomain converts the persistence model to a domain Godown
func (m *GodownModel) ToDomain() *godown.Godown {
	return &godown.Godown{
		BaseAggregateRoot: m.aggregateRoot(),
		Name:              m.Name,
		Tier:              godown.Tier(m.GodownType),
		Active:            m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Godown
func (m *GodownModel) FromDomain(g *godown.Godown) {
	m.BaseModel = baseFrom(g.BaseEntity)
	m.Name = g.Name
	m.GodownType = string(g.Tier)
	m.IsActive = g.Active
}

// GodownModelFromDomain creates a persistence model from a domain Godown
func GodownModelFromDomain(g *godown.Godown) *GodownModel {
	m := &GodownModel{}
	m.FromDomain(g)
	return m
}

// LocalBodyModel is the persistence model for administrative units
type LocalBodyModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name       string     `gorm:"type:varchar(255);not null"`
	BodyType   string     `gorm:"type:varchar(50);not null"`
	WardCount  int        `gorm:"not null;default:0"`
	DistrictID *uuid.UUID `gorm:"type:uuid"`
	IsActive   bool       `gorm:"not null;default:true"`
	SortOrder  int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (LocalBodyModel) TableName() string {
	return "locations_local_bodies"
}

// ToDomain converts the persistence model to a domain AdministrativeUnit
func (m *LocalBodyModel) ToDomain() *godown.AdministrativeUnit {
	return &godown.AdministrativeUnit{
		ID:         m.ID,
		Name:       m.Name,
		UnitType:   m.BodyType,
		WardCount:  m.WardCount,
		DistrictID: m.DistrictID,
		Active:     m.IsActive,
		SortOrder:  m.SortOrder,
	}
}

// GodownLocalBodyModel is the persistence model for area assignments
type GodownLocalBodyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	GodownID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_godown_local_body,priority:1"`
	LocalBodyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_godown_local_body,priority:2"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GodownLocalBodyModel) TableName() string {
	return "godown_local_bodies"
}

// ToDomain converts the persistence model to a domain AreaAssignment
func (m *GodownLocalBodyModel) ToDomain() godown.AreaAssignment {
	return godown.AreaAssignment{
		ID:                   m.ID,
		GodownID:             m.GodownID,
		AdministrativeUnitID: m.LocalBodyID,
		CreatedAt:            m.CreatedAt,
	}
}

// GodownLocalBodyModelFromDomain creates a persistence model from an AreaAssignment
func GodownLocalBodyModelFromDomain(a godown.AreaAssignment) GodownLocalBodyModel {
	return GodownLocalBodyModel{
		ID:          a.ID,
		GodownID:    a.GodownID,
		LocalBodyID: a.AdministrativeUnitID,
		CreatedAt:   a.CreatedAt,
	}
}

// GodownWardModel is the persistence model for ward assignments.
// (local_body_id, ward_number) is unique across all godowns.
type GodownWardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	GodownID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LocalBodyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_godown_wards_unit_ward,priority:1"`
	WardNumber  int       `gorm:"not null;uniqueIndex:idx_godown_wards_unit_ward,priority:2"`
}

// TableName returns the table name for GORM
func (GodownWardModel) TableName() string {
	return "godown_wards"
}

// ToDomain converts the persistence model to a domain WardAssignment
func (m *GodownWardModel) ToDomain() godown.WardAssignment {
	return godown.WardAssignment{
		ID:                   m.ID,
		GodownID:             m.GodownID,
		AdministrativeUnitID: m.LocalBodyID,
		WardNumber:           m.WardNumber,
	}
}

// GodownWardModelFromDomain creates a persistence model from a WardAssignment
func GodownWardModelFromDomain(w godown.WardAssignment) GodownWardModel {
	return GodownWardModel{
		ID:          w.ID,
		GodownID:    w.GodownID,
		LocalBodyID: w.AdministrativeUnitID,
		WardNumber:  w.WardNumber,
	}
}

// SellerProductModel is the persistence model for seller listings
type SellerProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	SellerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MRP          decimal.Decimal `gorm:"column:mrp;type:decimal(12,2);not null;default:0"`
	Stock        int             `gorm:"not null;default:0"`
	Category     *string         `gorm:"type:varchar(100)"`
	IsApproved   bool            `gorm:"not null;default:false"`
	IsActive     bool            `gorm:"not null;default:true"`
	AreaGodownID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (SellerProductModel) TableName() string {
	return "seller_products"
}

// ToDomain converts the persistence model to a domain SellerListing
func (m *SellerProductModel) ToDomain() godown.SellerListing {
	l := godown.SellerListing{
		ID:           m.ID,
		SellerID:     m.SellerID,
		Name:         m.Name,
		Price:        m.Price,
		MRP:          m.MRP,
		Stock:        m.Stock,
		Approved:     m.IsApproved,
		Active:       m.IsActive,
		AreaGodownID: m.AreaGodownID,
	}
	if m.Category != nil {
		l.Category = *m.Category
	}
	return l
}
