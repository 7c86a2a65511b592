package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// ExperienceRepository manages work history entries. Listing uses the default
// ordering: descending start date, then descending display order.
type ExperienceRepository interface {
	BaseRepository[models.Experience]
	List(ctx context.Context) ([]models.Experience, error)
	// Latest returns the most recent entry by the default ordering, or
	// (nil, nil) when there are no entries.
	Latest(ctx context.Context) (*models.Experience, error)
}

type experienceRepository struct {
	BaseRepository[models.Experience]
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{BaseRepository: newValidatedRepository[models.Experience](db), db: db}
}

func (r *experienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	if err := r.db.WithContext(ctx).Order("start_date DESC, display_order DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list experience failed")
	}
	return out, nil
}

func (r *experienceRepository) Latest(ctx context.Context) (*models.Experience, error) {
	var exp models.Experience
	err := r.db.WithContext(ctx).Order("start_date DESC, display_order DESC").First(&exp).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get latest experience failed")
	}
	return &exp, nil
}
