package persistence

import (
	"context"
	"time"

	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockEntryRepository implements StockEntryRepository using GORM
type GormStockEntryRepository struct {
	db *gorm.DB
}

// NewGormStockEntryRepository creates a new GormStockEntryRepository
func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

// FindByID finds a stock entry by its ID
func (r *GormStockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockEntry, error) {
	var model models.GodownStockModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find stock entry", "Stock entry", err)
	}
	e := model.ToDomain()
	return &e, nil
}

// FindByGodown lists every entry of a godown, newest first
func (r *GormStockEntryRepository) FindByGodown(ctx context.Context, godownID uuid.UUID) ([]inventory.StockEntry, error) {
	var rows []models.GodownStockModel
	if err := r.db.WithContext(ctx).
		Where("godown_id = ?", godownID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list stock entries", "Stock entry", err)
	}
	return toStockEntries(rows), nil
}

// LockByGodownProduct reads the rows of one product in one godown with
// SELECT ... FOR UPDATE, oldest first
func (r *GormStockEntryRepository) LockByGodownProduct(ctx context.Context, godownID, productID uuid.UUID) ([]inventory.StockEntry, error) {
	var rows []models.GodownStockModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("godown_id = ? AND product_id = ?", godownID, productID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("lock stock entries", "Stock entry", err)
	}
	return toStockEntries(rows), nil
}

// Create inserts new entries
func (r *GormStockEntryRepository) Create(ctx context.Context, entries ...inventory.StockEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := make([]*models.GodownStockModel, 0, len(entries))
	for i := range entries {
		batch = append(batch, models.GodownStockModelFromDomain(&entries[i]))
	}
	if err := r.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return translateError("insert stock entries", "Stock entry", err)
	}
	return nil
}

// UpdateQuantity writes the quantity of an existing entry
func (r *GormStockEntryRepository) UpdateQuantity(ctx context.Context, entry *inventory.StockEntry) error {
	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).
		Model(&models.GodownStockModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"quantity":   entry.Quantity,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return translateError("update stock entry", "Stock entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("update stock entry", "Stock entry", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes an entry
func (r *GormStockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GodownStockModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError("delete stock entry", "Stock entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("delete stock entry", "Stock entry", gorm.ErrRecordNotFound)
	}
	return nil
}

func toStockEntries(rows []models.GodownStockModel) []inventory.StockEntry {
	out := make([]inventory.StockEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

var _ inventory.StockEntryRepository = (*GormStockEntryRepository)(nil)
