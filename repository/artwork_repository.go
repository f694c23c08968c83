package repository

import (
	"context"

	"github.com/jorotodorovv/art-on-display/models"

	"gorm.io/gorm"
)

// ArtworkRepository defines the interface for artwork data access.
type ArtworkRepository interface {
	List(ctx context.Context, tag string, forSaleOnly bool) ([]models.Artwork, error)
	FindByID(ctx context.Context, id uint) (*models.Artwork, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Artwork, error)
	Create(ctx context.Context, artwork *models.Artwork) error
	Update(ctx context.Context, artwork *models.Artwork) error
	Delete(ctx context.Context, id uint) error
	SetSaleState(ctx context.Context, id uint, forSale bool, price *float64) error
}

// GormArtworkRepository implements ArtworkRepository using GORM.
type GormArtworkRepository struct {
	db *gorm.DB
}

func NewGormArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &GormArtworkRepository{db: db}
}

func (r *GormArtworkRepository) List(ctx context.Context, tag string, forSaleOnly bool) ([]models.Artwork, error) {
	var artworks []models.Artwork

	query := r.db.WithContext(ctx).Model(&models.Artwork{}).Preload("Tags")
	if forSaleOnly {
		query = query.Where("for_sale = ?", true)
	}
	if tag != "" {
		query = query.
			Joins("JOIN artwork_tags ON artwork_tags.artwork_id = artworks.id").
			Where("artwork_tags.artwork_tag_id = ?", tag)
	}

	if err := query.Order("created_at DESC").Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *GormArtworkRepository) FindByID(ctx context.Context, id uint) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.WithContext(ctx).Preload("Tags").First(&artwork, id).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *GormArtworkRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if len(ids) == 0 {
		return artworks, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *GormArtworkRepository) Create(ctx context.Context, artwork *models.Artwork) error {
	return r.db.WithContext(ctx).Create(artwork).Error
}

// Update persists the artwork and makes its tag set match exactly. Save
// alone only upserts join rows, so removed tags are cleared through the
// association.
func (r *GormArtworkRepository) Update(ctx context.Context, artwork *models.Artwork) error {
	db := r.db.WithContext(ctx)

	assoc := db.Model(artwork).Association("Tags")
	if len(artwork.Tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return err
		}
	} else if err := assoc.Replace(artwork.Tags); err != nil {
		return err
	}

	return db.Omit("Tags").Save(artwork).Error
}

func (r *GormArtworkRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Artwork{}, id).Error
}

// SetSaleState flips the for-sale flag and price together; price is nil
// when the artwork comes off sale.
func (r *GormArtworkRepository) SetSaleState(ctx context.Context, id uint, forSale bool, price *float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"for_sale": forSale,
			"price":    price,
		}).Error
}
