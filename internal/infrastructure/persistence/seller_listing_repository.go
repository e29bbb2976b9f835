package persistence

import (
	"context"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSellerListingRepository reads seller_products
type GormSellerListingRepository struct {
	db *gorm.DB
}

// NewGormSellerListingRepository creates a new GormSellerListingRepository
func NewGormSellerListingRepository(db *gorm.DB) *GormSellerListingRepository {
	return &GormSellerListingRepository{db: db}
}

// FindByAreaGodown lists the approved, active listings bound to an area godown
func (r *GormSellerListingRepository) FindByAreaGodown(ctx context.Context, godownID uuid.UUID) ([]godown.SellerListing, error) {
	var rows []models.SellerProductModel
	if err := r.db.WithContext(ctx).
		Where("area_godown_id = ? AND is_approved = ? AND is_active = ?", godownID, true, true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list seller listings", "Seller listing", err)
	}
	out := make([]godown.SellerListing, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

var _ godown.SellerListingRepository = (*GormSellerListingRepository)(nil)
