package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Experience is a single work history entry, tracked at day granularity.
type Experience struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Position    string          `gorm:"type:varchar(200);not null" json:"position" validate:"required"`
	Company     string          `gorm:"type:varchar(200);not null" json:"company" validate:"required"`
	Location    string          `gorm:"type:varchar(100)" json:"location"`
	StartDate   datatypes.Date  `gorm:"not null" json:"start_date" validate:"required"`
	EndDate     *datatypes.Date `json:"end_date"`
	Description string          `gorm:"type:text" json:"description"`
	IsCurrent   bool            `gorm:"not null;default:false" json:"is_current"`
	Order       int             `gorm:"column:display_order;not null;default:0" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// YearsDisplay renders the employment period as "MM.YYYY - MM.YYYY", with
// "present" for ongoing positions. A set end date is ignored while the
// position is marked current.
func (e *Experience) YearsDisplay() string {
	start := time.Time(e.StartDate).Format("01.2006")
	if e.IsCurrent || e.EndDate == nil {
		return fmt.Sprintf("%s - present", start)
	}
	return fmt.Sprintf("%s - %s", start, time.Time(*e.EndDate).Format("01.2006"))
}
