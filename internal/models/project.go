package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectCategory enumerates the declared project category codes.
type ProjectCategory string

const (
	ProjectWeb     ProjectCategory = "web"
	ProjectDesktop ProjectCategory = "desktop"
	ProjectMobile  ProjectCategory = "mobile"
	ProjectAPI     ProjectCategory = "api"
	ProjectWebsite ProjectCategory = "website"
	ProjectOther   ProjectCategory = "other"
)

// ProjectCategories lists every declared category code in display order.
func ProjectCategories() []ProjectCategory {
	return []ProjectCategory{ProjectWeb, ProjectDesktop, ProjectMobile, ProjectAPI, ProjectWebsite, ProjectOther}
}

// ProjectStatus enumerates project completion states.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPlanned    ProjectStatus = "planned"
)

// Project is a portfolio entry. Slug is unique across all projects.
// Technologies is comma-delimited and Features newline-delimited in storage;
// consumers use TechList and FeatureList instead of the raw text.
type Project struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string          `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Slug             string          `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" validate:"required,slug"`
	Category         ProjectCategory `gorm:"type:varchar(20);not null;index" json:"category" validate:"required,oneof=web desktop mobile api website other"`
	Status           ProjectStatus   `gorm:"type:varchar(20);not null;default:completed" json:"status" validate:"required,oneof=completed in_progress planned"`
	ShortDescription string          `gorm:"type:varchar(300)" json:"short_description"`
	Description      string          `gorm:"type:text" json:"description"`
	Technologies     string          `gorm:"type:varchar(500)" json:"technologies"`
	Features         string          `gorm:"type:text" json:"features"`
	Image            string          `gorm:"type:varchar(255)" json:"image"`
	DemoURL          string          `gorm:"type:varchar(200)" json:"demo_url" validate:"omitempty,url"`
	GithubURL        string          `gorm:"type:varchar(200)" json:"github_url" validate:"omitempty,url"`
	IsFeatured       bool            `gorm:"not null;default:false;index" json:"is_featured"`
	Order            int             `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedDate      datatypes.Date  `gorm:"not null" json:"created_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	// CreatedDate is set once at creation and never updated afterwards.
	if time.Time(p.CreatedDate).IsZero() {
		p.CreatedDate = datatypes.Date(time.Now())
	}
	return nil
}

// TechList parses the comma-delimited technologies field.
func (p *Project) TechList() []string {
	return SplitComma(p.Technologies)
}

// FeatureList parses the newline-delimited features field.
func (p *Project) FeatureList() []string {
	return SplitLines(p.Features)
}

// SetTechList serializes a technology list back to delimited text.
func (p *Project) SetTechList(techs []string) {
	p.Technologies = JoinComma(techs)
}

// SetFeatureList serializes a feature list back to delimited text.
func (p *Project) SetFeatureList(features []string) {
	p.Features = JoinLines(features)
}
