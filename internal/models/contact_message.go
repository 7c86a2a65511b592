package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is an inbound message from the public contact form. Rows are
// append-only from the public surface; the administrative surface may toggle
// IsRead but the content fields and CreatedAt are immutable once written.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email" validate:"required,email"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
