package persistence

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGodownRepository implements GodownRepository using GORM
type GormGodownRepository struct {
	db *gorm.DB
}

// NewGormGodownRepository creates a new GormGodownRepository
func NewGormGodownRepository(db *gorm.DB) *GormGodownRepository {
	return &GormGodownRepository{db: db}
}

// FindByID finds a godown by its ID
func (r *GormGodownRepository) FindByID(ctx context.Context, id uuid.UUID) (*godown.Godown, error) {
	var model models.GodownModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find godown", "Godown", err)
	}
	return model.ToDomain(), nil
}

// FindByIDs finds godowns by ID
func (r *GormGodownRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]godown.Godown, error) {
	if len(ids) == 0 {
		return []godown.Godown{}, nil
	}
	var rows []models.GodownModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translateError("find godowns", "Godown", err)
	}
	return toGodowns(rows), nil
}

// FindAll lists godowns newest first
func (r *GormGodownRepository) FindAll(ctx context.Context, filter godown.ListFilter) ([]godown.Godown, error) {
	query := r.db.WithContext(ctx).Model(&models.GodownModel{})
	if filter.Tier != nil {
		query = query.Where("godown_type = ?", string(*filter.Tier))
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var rows []models.GodownModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translateError("list godowns", "Godown", err)
	}
	return toGodowns(rows), nil
}

// Save creates or updates a godown
func (r *GormGodownRepository) Save(ctx context.Context, g *godown.Godown) error {
	model := models.GodownModelFromDomain(g)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError("save godown", "Godown", err)
	}
	return nil
}

// Delete removes a godown and its coverage rows
func (r *GormGodownRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("godown_id = ?", id).Delete(&models.GodownWardModel{}).Error; err != nil {
			return translateError("delete godown wards", "Ward assignment", err)
		}
		if err := tx.Where("godown_id = ?", id).Delete(&models.GodownLocalBodyModel{}).Error; err != nil {
			return translateError("delete godown areas", "Area assignment", err)
		}
		result := tx.Delete(&models.GodownModel{}, "id = ?", id)
		if result.Error != nil {
			return translateError("delete godown", "Godown", result.Error)
		}
		if result.RowsAffected == 0 {
			return translateError("delete godown", "Godown", gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func toGodowns(rows []models.GodownModel) []godown.Godown {
	out := make([]godown.Godown, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}
	return out
}

var _ godown.GodownRepository = (*GormGodownRepository)(nil)
