package models

import "time"

// ArtworkTag labels an artwork. Tag IDs are human-readable slugs ("nature",
// "abstract") so the same tag can be reused across artworks.
type ArtworkTag struct {
	ID     string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	NameBG string `json:"name_bg"`
}

// Artwork is a displayable, optionally sellable image record. Localized
// fields are explicit optional columns rather than free-form dictionaries.
type Artwork struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `gorm:"not null" json:"title"`
	TitleBG       *string      `json:"title_bg,omitempty"`
	Image         string       `gorm:"not null" json:"image"`
	Description   string       `json:"description"`
	DescriptionBG *string      `json:"description_bg,omitempty"`
	Tags          []ArtworkTag `gorm:"many2many:artwork_tags" json:"tags"`
	ForSale       bool         `gorm:"not null;default:false" json:"for_sale"`
	Price         *float64     `gorm:"type:numeric(10,2)" json:"price,omitempty"`
	CreatedBy     *string      `json:"created_by,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}
