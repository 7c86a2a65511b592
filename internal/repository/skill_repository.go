package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// SkillRepository manages skill entries. The default ordering is category,
// then descending level, then display order.
type SkillRepository interface {
	BaseRepository[models.Skill]
	List(ctx context.Context) ([]models.Skill, error)
	ListByCategory(ctx context.Context, category models.SkillCategory) ([]models.Skill, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Skill, error)
}

type skillRepository struct {
	BaseRepository[models.Skill]
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{BaseRepository: newValidatedRepository[models.Skill](db), db: db}
}

func (r *skillRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("category, level DESC, display_order")
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	if err := r.ordered(ctx).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list skills failed")
	}
	return out, nil
}

func (r *skillRepository) ListByCategory(ctx context.Context, category models.SkillCategory) ([]models.Skill, error) {
	var out []models.Skill
	if err := r.ordered(ctx).Where("category = ?", category).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list skills by category failed")
	}
	return out, nil
}

func (r *skillRepository) ListFeatured(ctx context.Context, limit int) ([]models.Skill, error) {
	var out []models.Skill
	if err := r.ordered(ctx).Where("is_featured = ?", true).Limit(limit).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list featured skills failed")
	}
	return out, nil
}
