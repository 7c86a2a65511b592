package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategory enumerates the fixed skill groups shown on the skills page.
type SkillCategory string

const (
	SkillProgramming SkillCategory = "programming"
	SkillFramework   SkillCategory = "framework"
	SkillDatabase    SkillCategory = "database"
	SkillTool        SkillCategory = "tool"
	SkillSoft        SkillCategory = "soft"
)

// SkillCategories lists every declared category in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillProgramming, SkillFramework, SkillDatabase, SkillTool, SkillSoft}
}

// Skill is a single proficiency entry. Level is a percentage and must stay
// inside [0,100]; writes outside that range are rejected.
type Skill struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Category    SkillCategory `gorm:"type:varchar(20);not null;index" json:"category" validate:"required,oneof=programming framework database tool soft"`
	Level       int           `gorm:"not null" json:"level" validate:"gte=0,lte=100"`
	IconClass   string        `gorm:"type:varchar(100)" json:"icon_class"`
	Description string        `gorm:"type:text" json:"description"`
	IsFeatured  bool          `gorm:"not null;default:false;index" json:"is_featured"`
	Order       int           `gorm:"column:display_order;not null;default:0" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
