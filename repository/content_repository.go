package repository

import (
	"context"

	"github.com/jorotodorovv/art-on-display/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository defines the interface for site content access.
type ContentRepository interface {
	FindByID(ctx context.Context, id string) (*models.SiteContent, error)
	Upsert(ctx context.Context, content *models.SiteContent) error
}

// GormContentRepository implements ContentRepository using GORM.
type GormContentRepository struct {
	db *gorm.DB
}

func NewGormContentRepository(db *gorm.DB) ContentRepository {
	return &GormContentRepository{db: db}
}

func (r *GormContentRepository) FindByID(ctx context.Context, id string) (*models.SiteContent, error) {
	var content models.SiteContent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert creates the content row or replaces both language variants.
func (r *GormContentRepository) Upsert(ctx context.Context, content *models.SiteContent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content_en", "content_bg", "updated_at"}),
		}).
		Create(content).Error
}
