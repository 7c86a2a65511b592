package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certificate is a professional certificate entry. The name+organization pair
// acts as the natural key for idempotent seeding; it carries no uniqueness
// constraint otherwise.
type Certificate struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	Organization  string         `gorm:"type:varchar(200);not null" json:"organization" validate:"required"`
	DateReceived  datatypes.Date `gorm:"not null" json:"date_received" validate:"required"`
	Description   string         `gorm:"type:text" json:"description"`
	CredentialID  string         `gorm:"type:varchar(100)" json:"credential_id"`
	CredentialURL string         `gorm:"type:varchar(200)" json:"credential_url" validate:"omitempty,url"`
	Image         string         `gorm:"type:varchar(255)" json:"image"`
	Order         int            `gorm:"column:display_order;not null;default:0" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
