package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalInfo holds the site owner's profile. At most one record may exist.
type PersonalInfo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Bio          string    `gorm:"type:text" json:"bio"`
	AboutText    string    `gorm:"type:text" json:"about_text"`
	BirthYear    int       `json:"birth_year" validate:"omitempty,gte=1900"`
	Location     string    `gorm:"type:varchar(100)" json:"location"`
	Email        string    `gorm:"type:varchar(254)" json:"email" validate:"omitempty,email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	LinkedinURL  string    `gorm:"type:varchar(200)" json:"linkedin_url" validate:"omitempty,url"`
	GithubURL    string    `gorm:"type:varchar(200)" json:"github_url" validate:"omitempty,url"`
	ProfileImage string    `gorm:"type:varchar(255)" json:"profile_image"`
	CVFile       string    `gorm:"type:varchar(255)" json:"cv_file"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *PersonalInfo) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// Age derives the owner's age from the birth year.
func (p *PersonalInfo) Age(now time.Time) int {
	if p.BirthYear == 0 {
		return 0
	}
	return now.Year() - p.BirthYear
}
