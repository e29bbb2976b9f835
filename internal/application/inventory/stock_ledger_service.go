package inventory

import (
	"context"
	"time"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// StockLedgerService records stock entries and derives the per-godown views
type StockLedgerService struct {
	godownRepo     godown.GodownRepository
	stockRepo      inventory.StockEntryRepository
	productRepo    inventory.ProductRepository
	location       *time.Location
	eventPublisher shared.EventPublisher
}

// NewStockLedgerService creates a new StockLedgerService.
// Dates in history filters are read in the server's local time zone.
func NewStockLedgerService(
	godownRepo godown.GodownRepository,
	stockRepo inventory.StockEntryRepository,
	productRepo inventory.ProductRepository,
) *StockLedgerService {
	return &StockLedgerService{
		godownRepo:  godownRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
		location:    time.Local,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StockLedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetLocation sets the time zone history dates are interpreted in
func (s *StockLedgerService) SetLocation(loc *time.Location) {
	if loc != nil {
		s.location = loc
	}
}

func (s *StockLedgerService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// AddStock records a new stock entry. It never merges into an existing batch.
func (s *StockLedgerService) AddStock(ctx context.Context, godownID uuid.UUID, req AddStockRequest) (*StockEntryResponse, error) {
	g, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		d, err := time.ParseInLocation(dateLayout, req.ExpiryDate, s.location)
		if err != nil {
			return nil, shared.NewValidationError("expiry_date must be a date in YYYY-MM-DD format")
		}
		expiry = &d
	}

	entry, err := inventory.NewStockEntry(inventory.NewStockEntryParams{
		GodownID:       g.ID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		BatchNumber:    req.BatchNumber,
		ExpiryDate:     expiry,
		PurchaseNumber: req.PurchaseNumber,
	})
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.Create(ctx, *entry); err != nil {
		return nil, err
	}
	s.publish(ctx, inventory.NewStockAddedEvent(entry))

	products, err := s.productIndex(ctx, []inventory.StockEntry{*entry})
	if err != nil {
		return nil, err
	}
	response := ToStockEntryResponse(entry, products)
	return &response, nil
}

// RemoveStockEntry deletes an entry regardless of its quantity
func (s *StockLedgerService) RemoveStockEntry(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.stockRepo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := s.stockRepo.Delete(ctx, entry.ID); err != nil {
		return err
	}
	s.publish(ctx, inventory.NewStockEntryRemovedEvent(entry))
	return nil
}

// ListStockEntries lists the raw entries of a godown, newest first
func (s *StockLedgerService) ListStockEntries(ctx context.Context, godownID uuid.UUID) ([]StockEntryResponse, error) {
	entries, products, err := s.load(ctx, godownID)
	if err != nil {
		return nil, err
	}
	return ToStockEntryResponses(entries, products), nil
}

// AggregateByProduct sums each product's quantity in a godown. The
// reference price is the catalog MRP.
func (s *StockLedgerService) AggregateByProduct(ctx context.Context, godownID uuid.UUID) ([]ProductTotalResponse, error) {
	entries, products, err := s.load(ctx, godownID)
	if err != nil {
		return nil, err
	}
	totals := inventory.AggregateByProduct(entries, products)
	out := make([]ProductTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, ProductTotalResponse{
			ProductID:      t.ProductID,
			ProductName:    t.ProductName,
			TotalQuantity:  t.TotalQuantity,
			ReferencePrice: t.ReferencePrice,
		})
	}
	return out, nil
}

// GroupedAvailability lists per-product totals for transfer pickers.
// Negative totals are returned and flagged.
func (s *StockLedgerService) GroupedAvailability(ctx context.Context, godownID uuid.UUID) ([]AvailabilityResponse, error) {
	entries, products, err := s.load(ctx, godownID)
	if err != nil {
		return nil, err
	}
	rows := inventory.GroupedAvailability(entries, products)
	out := make([]AvailabilityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AvailabilityResponse{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			TotalQuantity: r.TotalQuantity,
			Anomaly:       r.Anomaly,
		})
	}
	return out, nil
}

// BillGroupedHistory groups a godown's entries into purchase bills, newest first
func (s *StockLedgerService) BillGroupedHistory(ctx context.Context, godownID uuid.UUID, filter HistoryFilter) ([]BillResponse, error) {
	r, err := inventory.ParseDateRange(filter.From, filter.To, s.location)
	if err != nil {
		return nil, err
	}
	entries, products, err := s.load(ctx, godownID)
	if err != nil {
		return nil, err
	}

	bills := inventory.BillGroupedHistory(entries, r)
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, BillResponse{
			Key:           b.Key,
			BillNumber:    b.BillNumber,
			Date:          b.Date,
			ItemCount:     b.ItemCount,
			TotalQuantity: b.TotalQuantity,
			TotalAmount:   b.TotalAmount,
			Entries:       ToStockEntryResponses(b.Entries, products),
		})
	}
	return out, nil
}

// load reads every entry of an existing godown and the products they name
func (s *StockLedgerService) load(ctx context.Context, godownID uuid.UUID) ([]inventory.StockEntry, inventory.ProductIndex, error) {
	if _, err := s.godownRepo.FindByID(ctx, godownID); err != nil {
		return nil, nil, err
	}
	entries, err := s.stockRepo.FindByGodown(ctx, godownID)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.productIndex(ctx, entries)
	if err != nil {
		return nil, nil, err
	}
	return entries, products, nil
}

func (s *StockLedgerService) productIndex(ctx context.Context, entries []inventory.StockEntry) (inventory.ProductIndex, error) {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ProductID]; ok {
			continue
		}
		seen[e.ProductID] = struct{}{}
		ids = append(ids, e.ProductID)
	}
	if len(ids) == 0 {
		return inventory.ProductIndex{}, nil
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return inventory.NewProductIndex(products), nil
}
