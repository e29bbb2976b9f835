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

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindByID finds a transfer by its ID
func (r *GormTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	var model models.StockTransferModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find transfer", "Transfer", err)
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a transfer and locks its row
func (r *GormTransferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	var model models.StockTransferModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("lock transfer", "Transfer", err)
	}
	return model.ToDomain(), nil
}

// FindAll lists transfers newest first. A godown filter matches either end.
func (r *GormTransferRepository) FindAll(ctx context.Context, filter inventory.TransferFilter) ([]inventory.Transfer, error) {
	query := r.db.WithContext(ctx).Model(&models.StockTransferModel{})
	if filter.GodownID != nil {
		query = query.Where("from_godown_id = ? OR to_godown_id = ?", *filter.GodownID, *filter.GodownID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var rows []models.StockTransferModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translateError("list transfers", "Transfer", err)
	}
	out := make([]inventory.Transfer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}
	return out, nil
}

// Create inserts a transfer
func (r *GormTransferRepository) Create(ctx context.Context, t *inventory.Transfer) error {
	if err := r.db.WithContext(ctx).Create(models.StockTransferModelFromDomain(t)).Error; err != nil {
		return translateError("insert transfer", "Transfer", err)
	}
	return nil
}

// UpdateStatus writes the status of a transfer
func (r *GormTransferRepository) UpdateStatus(ctx context.Context, t *inventory.Transfer) error {
	updatedAt := t.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).
		Model(&models.StockTransferModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"status":     string(t.Status),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return translateError("update transfer", "Transfer", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("update transfer", "Transfer", gorm.ErrRecordNotFound)
	}
	return nil
}

var _ inventory.TransferRepository = (*GormTransferRepository)(nil)
