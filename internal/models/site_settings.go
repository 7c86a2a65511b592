package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings holds site-wide presentation settings. At most one record may
// exist, and the record cannot be deleted once created.
type SiteSettings struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SiteTitle         string    `gorm:"type:varchar(100);not null" json:"site_title" validate:"required"`
	SiteDescription   string    `gorm:"type:text" json:"site_description"`
	MetaKeywords      string    `gorm:"type:varchar(500)" json:"meta_keywords"`
	FooterText        string    `gorm:"type:varchar(200)" json:"footer_text"`
	GoogleAnalyticsID string    `gorm:"type:varchar(20)" json:"google_analytics_id"`

	HeroTitle       string `gorm:"type:varchar(200)" json:"hero_title"`
	HeroSubtitle    string `gorm:"type:varchar(200)" json:"hero_subtitle"`
	HeroDescription string `gorm:"type:text" json:"hero_description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
