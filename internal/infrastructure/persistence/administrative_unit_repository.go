package persistence

import (
	"context"
	"strings"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdministrativeUnitRepository reads locations_local_bodies
type GormAdministrativeUnitRepository struct {
	db *gorm.DB
}

// NewGormAdministrativeUnitRepository creates a new GormAdministrativeUnitRepository
func NewGormAdministrativeUnitRepository(db *gorm.DB) *GormAdministrativeUnitRepository {
	return &GormAdministrativeUnitRepository{db: db}
}

// FindByID finds an administrative unit by its ID
func (r *GormAdministrativeUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*godown.AdministrativeUnit, error) {
	var model models.LocalBodyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find administrative unit", "Administrative unit", err)
	}
	return model.ToDomain(), nil
}

// FindByIDs finds administrative units by ID
func (r *GormAdministrativeUnitRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]godown.AdministrativeUnit, error) {
	if len(ids) == 0 {
		return []godown.AdministrativeUnit{}, nil
	}
	var rows []models.LocalBodyModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translateError("find administrative units", "Administrative unit", err)
	}
	return toUnits(rows), nil
}

// FindActive lists active units matching search on name or body type
func (r *GormAdministrativeUnitRepository) FindActive(ctx context.Context, search string) ([]godown.AdministrativeUnit, error) {
	query := r.db.WithContext(ctx).Model(&models.LocalBodyModel{}).Where("is_active = ?", true)
	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(body_type) LIKE ?", pattern, pattern)
	}

	var rows []models.LocalBodyModel
	if err := query.Order("sort_order ASC").Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translateError("list administrative units", "Administrative unit", err)
	}
	return toUnits(rows), nil
}

func toUnits(rows []models.LocalBodyModel) []godown.AdministrativeUnit {
	out := make([]godown.AdministrativeUnit, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}
	return out
}

var _ godown.AdministrativeUnitRepository = (*GormAdministrativeUnitRepository)(nil)
