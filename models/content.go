package models

import "time"

// SiteContent is an editable text block keyed by a well-known ID
// ("about-intro", "footer-note"). Both languages live on one row.
type SiteContent struct {
	ID        string    `gorm:"primaryKey;type:varchar(128)" json:"id"`
	ContentEN string    `gorm:"not null" json:"content_en"`
	ContentBG string    `gorm:"not null" json:"content_bg"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
