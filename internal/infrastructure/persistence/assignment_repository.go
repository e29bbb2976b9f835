package persistence

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository persists godown_local_bodies and godown_wards
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// FindAreasByGodown lists a godown's area rows, oldest first
func (r *GormAssignmentRepository) FindAreasByGodown(ctx context.Context, godownID uuid.UUID) ([]godown.AreaAssignment, error) {
	var rows []models.GodownLocalBodyModel
	if err := r.db.WithContext(ctx).
		Where("godown_id = ?", godownID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list area assignments", "Area assignment", err)
	}
	out := make([]godown.AreaAssignment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// FindArea finds the area row of one (godown, unit) pair
func (r *GormAssignmentRepository) FindArea(ctx context.Context, godownID, unitID uuid.UUID) (*godown.AreaAssignment, error) {
	var model models.GodownLocalBodyModel
	if err := r.db.WithContext(ctx).
		Where("godown_id = ? AND local_body_id = ?", godownID, unitID).
		First(&model).Error; err != nil {
		return nil, translateError("find area assignment", "Area assignment", err)
	}
	a := model.ToDomain()
	return &a, nil
}

// SaveAreas inserts area rows
func (r *GormAssignmentRepository) SaveAreas(ctx context.Context, rows []godown.AreaAssignment) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([]models.GodownLocalBodyModel, 0, len(rows))
	for _, a := range rows {
		batch = append(batch, models.GodownLocalBodyModelFromDomain(a))
	}
	if err := r.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return translateError("insert area assignments", "Area assignment", err)
	}
	return nil
}

// DeleteArea removes the area row of one (godown, unit) pair
func (r *GormAssignmentRepository) DeleteArea(ctx context.Context, godownID, unitID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("godown_id = ? AND local_body_id = ?", godownID, unitID).
		Delete(&models.GodownLocalBodyModel{})
	if result.Error != nil {
		return 0, translateError("delete area assignment", "Area assignment", result.Error)
	}
	return result.RowsAffected, nil
}

// FindWardsByGodown lists every ward a godown holds
func (r *GormAssignmentRepository) FindWardsByGodown(ctx context.Context, godownID uuid.UUID) ([]godown.WardAssignment, error) {
	var rows []models.GodownWardModel
	if err := r.db.WithContext(ctx).
		Where("godown_id = ?", godownID).
		Order("ward_number ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list ward assignments", "Ward assignment", err)
	}
	return toWards(rows), nil
}

// FindWardsByUnit reads every ward row of a unit without locking
func (r *GormAssignmentRepository) FindWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]godown.WardAssignment, error) {
	var rows []models.GodownWardModel
	if err := r.db.WithContext(ctx).
		Where("local_body_id = ?", unitID).
		Order("ward_number ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list unit ward assignments", "Ward assignment", err)
	}
	return toWards(rows), nil
}

// LockWardsByUnit reads every ward row of a unit with SELECT ... FOR UPDATE
func (r *GormAssignmentRepository) LockWardsByUnit(ctx context.Context, unitID uuid.UUID) ([]godown.WardAssignment, error) {
	var rows []models.GodownWardModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("local_body_id = ?", unitID).
		Order("ward_number ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("lock ward assignments", "Ward assignment", err)
	}
	return toWards(rows), nil
}

// DeleteWards removes a godown's ward rows for one unit
func (r *GormAssignmentRepository) DeleteWards(ctx context.Context, godownID, unitID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("godown_id = ? AND local_body_id = ?", godownID, unitID).
		Delete(&models.GodownWardModel{})
	if result.Error != nil {
		return 0, translateError("delete ward assignments", "Ward assignment", result.Error)
	}
	return result.RowsAffected, nil
}

// SaveWards inserts ward rows. A ward taken meanwhile by another godown
// trips the unique index and surfaces as CONFLICT.
func (r *GormAssignmentRepository) SaveWards(ctx context.Context, rows []godown.WardAssignment) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([]models.GodownWardModel, 0, len(rows))
	for _, w := range rows {
		batch = append(batch, models.GodownWardModelFromDomain(w))
	}
	if err := r.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return translateError("insert ward assignments", "Ward assignment", err)
	}
	return nil
}

func toWards(rows []models.GodownWardModel) []godown.WardAssignment {
	out := make([]godown.WardAssignment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

var _ godown.AssignmentRepository = (*GormAssignmentRepository)(nil)
