package models

import (
	"time"

	"github.com/erp/godown/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GodownStockModel is the persistence model for stock entries
type GodownStockModel struct {
	BaseModel
	GodownID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_godown_stock_godown_product,priority:1"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_godown_stock_godown_product,priority:2"`
	Quantity       int             `gorm:"not null;default:0"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	BatchNumber    *string         `gorm:"type:varchar(100)"`
	ExpiryDate     *time.Time      `gorm:"type:date"`
	PurchaseNumber *string         `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (GodownStockModel) TableName() string {
	return "godown_stock"
}

// ToDomain converts the persistence model to a domain StockEntry
func (m *GodownStockModel) ToDomain() inventory.StockEntry {
	return inventory.StockEntry{
		ID:             m.ID,
		GodownID:       m.GodownID,
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		PurchasePrice:  m.PurchasePrice,
		BatchNumber:    m.BatchNumber,
		ExpiryDate:     m.ExpiryDate,
		PurchaseNumber: m.PurchaseNumber,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GodownStockModelFromDomain creates a persistence model from a StockEntry
func GodownStockModelFromDomain(e *inventory.StockEntry) *GodownStockModel {
	return &GodownStockModel{
		BaseModel: BaseModel{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
		GodownID:       e.GodownID,
		ProductID:      e.ProductID,
		Quantity:       e.Quantity,
		PurchasePrice:  e.PurchasePrice,
		BatchNumber:    e.BatchNumber,
		ExpiryDate:     e.ExpiryDate,
		PurchaseNumber: e.PurchaseNumber,
	}
}

// StockTransferModel is the persistence model for the Transfer aggregate
type StockTransferModel struct {
	BaseModel
	FromGodownID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ToGodownID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null"`
	Quantity     int        `gorm:"not null"`
	BatchNumber  *string    `gorm:"type:varchar(100)"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TransferType string     `gorm:"type:varchar(20);not null;default:'transfer'"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (StockTransferModel) TableName() string {
	return "stock_transfers"
}

// ToDomain converts the persistence model to a domain Transfer
func (m *StockTransferModel) ToDomain() *inventory.Transfer {
	return &inventory.Transfer{
		BaseAggregateRoot: m.aggregateRoot(),
		FromGodownID:      m.FromGodownID,
		ToGodownID:        m.ToGodownID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		BatchNumber:       m.BatchNumber,
		Type:              inventory.TransferType(m.TransferType),
		Status:            inventory.TransferStatus(m.Status),
		CreatedBy:         m.CreatedBy,
	}
}

// StockTransferModelFromDomain creates a persistence model from a Transfer
func StockTransferModelFromDomain(t *inventory.Transfer) *StockTransferModel {
	m := &StockTransferModel{
		FromGodownID: t.FromGodownID,
		ToGodownID:   t.ToGodownID,
		ProductID:    t.ProductID,
		Quantity:     t.Quantity,
		BatchNumber:  t.BatchNumber,
		Status:       string(t.Status),
		TransferType: string(t.Type),
		CreatedBy:    t.CreatedBy,
	}
	m.BaseModel = baseFrom(t.BaseEntity)
	return m
}

// ProductModel is the read model of the product catalog
type ProductModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MRP      decimal.Decimal `gorm:"column:mrp;type:decimal(12,2);not null;default:0"`
	Category *string         `gorm:"type:varchar(100)"`
	IsActive bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() inventory.Product {
	p := inventory.Product{
		ID:     m.ID,
		Name:   m.Name,
		Price:  m.Price,
		MRP:    m.MRP,
		Active: m.IsActive,
	}
	if m.Category != nil {
		p.Category = *m.Category
	}
	return p
}
