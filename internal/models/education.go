package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Degree enumerates the recognized education degree codes.
type Degree string

const (
	DegreeBachelor    Degree = "bachelor"
	DegreeMaster      Degree = "master"
	DegreeDoctorate   Degree = "doctorate"
	DegreeCertificate Degree = "certificate"
)

// Degrees lists every declared degree code.
func Degrees() []Degree {
	return []Degree{DegreeBachelor, DegreeMaster, DegreeDoctorate, DegreeCertificate}
}

// Education is a single education entry on the about page.
type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Degree      Degree    `gorm:"type:varchar(20);not null" json:"degree" validate:"required,oneof=bachelor master doctorate certificate"`
	School      string    `gorm:"type:varchar(200);not null" json:"school" validate:"required"`
	Department  string    `gorm:"type:varchar(200);not null" json:"department" validate:"required"`
	StartYear   int       `gorm:"not null" json:"start_year" validate:"required,gte=1900"`
	EndYear     *int      `json:"end_year"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	IsCurrent   bool      `gorm:"not null;default:false" json:"is_current"`
	Order       int       `gorm:"column:display_order;not null;default:0" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// YearsDisplay renders the study period. An in-progress entry ignores the end
// year even when one is set.
func (e *Education) YearsDisplay() string {
	if e.IsCurrent || e.EndYear == nil {
		return fmt.Sprintf("%d - present", e.StartYear)
	}
	return fmt.Sprintf("%d - %d", e.StartYear, *e.EndYear)
}
