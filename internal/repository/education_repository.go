package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// EducationRepository manages education entries. Listing uses the default
// ordering: descending start year, then descending display order.
type EducationRepository interface {
	BaseRepository[models.Education]
	List(ctx context.Context) ([]models.Education, error)
}

type educationRepository struct {
	BaseRepository[models.Education]
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{BaseRepository: newValidatedRepository[models.Education](db), db: db}
}

func (r *educationRepository) List(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	if err := r.db.WithContext(ctx).Order("start_year DESC, display_order DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list education failed")
	}
	return out, nil
}
