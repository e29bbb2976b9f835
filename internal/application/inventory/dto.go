package inventory

import (
	"time"

	"github.com/erp/godown/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Stock ledger DTOs
// =============================================================================

// AddStockRequest records a new batch in a godown
type AddStockRequest struct {
	ProductID      uuid.UUID       `json:"product_id" binding:"required"`
	Quantity       int             `json:"quantity" binding:"required,max=2147483647"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	BatchNumber    string          `json:"batch_number" binding:"max=100"`
	ExpiryDate     string          `json:"expiry_date"` // YYYY-MM-DD
	PurchaseNumber string          `json:"purchase_number" binding:"max=100"`
}

// HistoryFilter bounds a purchase history query. Dates are YYYY-MM-DD.
type HistoryFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// StockEntryResponse represents a stock entry in API responses
type StockEntryResponse struct {
	ID             uuid.UUID       `json:"id"`
	GodownID       uuid.UUID       `json:"godown_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	Quantity       int             `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	Amount         decimal.Decimal `json:"amount"`
	BatchNumber    *string         `json:"batch_number"`
	ExpiryDate     *string         `json:"expiry_date"`
	PurchaseNumber *string         `json:"purchase_number"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToStockEntryResponse converts a domain StockEntry. products may be nil.
func ToStockEntryResponse(e *inventory.StockEntry, products inventory.ProductIndex) StockEntryResponse {
	r := StockEntryResponse{
		ID:             e.ID,
		GodownID:       e.GodownID,
		ProductID:      e.ProductID,
		Quantity:       e.Quantity,
		PurchasePrice:  e.PurchasePrice,
		Amount:         e.Amount(),
		BatchNumber:    e.BatchNumber,
		PurchaseNumber: e.PurchaseNumber,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if products != nil {
		r.ProductName = products.Name(e.ProductID)
	}
	if e.ExpiryDate != nil {
		d := e.ExpiryDate.Format(dateLayout)
		r.ExpiryDate = &d
	}
	return r
}

// ToStockEntryResponses converts a slice of domain StockEntries
func ToStockEntryResponses(entries []inventory.StockEntry, products inventory.ProductIndex) []StockEntryResponse {
	out := make([]StockEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToStockEntryResponse(&entries[i], products)
	}
	return out
}

// ProductTotalResponse is one product's total in a godown
type ProductTotalResponse struct {
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	TotalQuantity  int             `json:"total_quantity"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
}

// AvailabilityResponse is one transfer picker row
type AvailabilityResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	TotalQuantity int       `json:"total_quantity"`
	Anomaly       bool      `json:"anomaly"`
}

// BillResponse groups the entries bought under one purchase number
type BillResponse struct {
	Key           string               `json:"key"`
	BillNumber    *string              `json:"bill_number"`
	Date          time.Time            `json:"date"`
	ItemCount     int                  `json:"item_count"`
	TotalQuantity int                  `json:"total_quantity"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	Entries       []StockEntryResponse `json:"entries"`
}

// =============================================================================
// Transfer DTOs
// =============================================================================

// CreateTransferRequest requests a movement of one product between godowns
type CreateTransferRequest struct {
	FromGodownID uuid.UUID  `json:"from_godown_id" binding:"required"`
	ToGodownID   uuid.UUID  `json:"to_godown_id" binding:"required"`
	ProductID    uuid.UUID  `json:"product_id" binding:"required"`
	Quantity     int        `json:"quantity" binding:"required,max=2147483647"`
	BatchNumber  string     `json:"batch_number" binding:"max=100"`
	TransferType string     `json:"transfer_type" binding:"omitempty,oneof=transfer return"`
	CreatedBy    *uuid.UUID `json:"-"` // Set from the X-User-ID header, not from the body
}

// TransferListFilter narrows a transfer listing
type TransferListFilter struct {
	GodownID *uuid.UUID `form:"godown_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=pending completed rejected"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID           uuid.UUID  `json:"id"`
	FromGodownID uuid.UUID  `json:"from_godown_id"`
	ToGodownID   uuid.UUID  `json:"to_godown_id"`
	ProductID    uuid.UUID  `json:"product_id"`
	Quantity     int        `json:"quantity"`
	BatchNumber  *string    `json:"batch_number"`
	TransferType string     `json:"transfer_type"`
	Status       string     `json:"status"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToTransferResponse converts a domain Transfer
func ToTransferResponse(t *inventory.Transfer) TransferResponse {
	return TransferResponse{
		ID:           t.ID,
		FromGodownID: t.FromGodownID,
		ToGodownID:   t.ToGodownID,
		ProductID:    t.ProductID,
		Quantity:     t.Quantity,
		BatchNumber:  t.BatchNumber,
		TransferType: string(t.Type),
		Status:       string(t.Status),
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToTransferResponses converts a slice of domain Transfers
func ToTransferResponses(transfers []inventory.Transfer) []TransferResponse {
	out := make([]TransferResponse, len(transfers))
	for i := range transfers {
		out[i] = ToTransferResponse(&transfers[i])
	}
	return out
}

// ApproveTransferResponse reports the completed transfer and how much of it
// the source could not cover
type ApproveTransferResponse struct {
	Transfer        TransferResponse `json:"transfer"`
	SourceAvailable int              `json:"source_available"`
	Shortfall       int              `json:"shortfall"`
	Clamped         bool             `json:"clamped"`
}
