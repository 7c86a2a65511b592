package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// ProjectRepository manages portfolio projects. Slugs are unique across all
// projects; the default ordering is descending created date, then descending
// display order.
type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, id any, dest *models.Project) error
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id any) error

	// List returns all projects, or only those in category when it is
	// non-empty. The filter is applied literally: an unrecognized code
	// matches nothing.
	List(ctx context.Context, category string) ([]models.Project, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Project, error)
	// ListOthers returns up to limit projects excluding the given slug.
	ListOthers(ctx context.Context, excludeSlug string, limit int) ([]models.Project, error)
	// CountByCategory counts projects per declared category code,
	// independent of any active filter.
	CountByCategory(ctx context.Context) (map[models.ProjectCategory]int64, error)
}

type projectRepository struct {
	base BaseRepository[models.Project]
	db   *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{base: NewBaseRepository[models.Project](db), db: db}
}

func (r *projectRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("created_date DESC, display_order DESC")
}

func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	if err := models.Validate(p); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "check slug failed")
		}
		if count > 0 {
			return appErr.Newf(appErr.CodeConflict, "a project with slug %q already exists", p.Slug)
		}
		return tx.Create(p).Error
	})
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return ae
	}
	// Race loser against a concurrent creator hits the unique index.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appErr.Newf(appErr.CodeConflict, "a project with slug %q already exists", p.Slug)
	}
	return appErr.Wrap(err, appErr.CodeInternal, "create project failed")
}

func (r *projectRepository) GetByID(ctx context.Context, id any, dest *models.Project) error {
	return r.base.GetByID(ctx, id, dest)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, appErr.Newf(appErr.CodeNotFound, "project %q not found", slug)
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get project by slug failed")
	}
	return &p, nil
}

func (r *projectRepository) Update(ctx context.Context, p *models.Project) error {
	if err := models.Validate(p); err != nil {
		return err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("slug = ? AND id <> ?", p.Slug, p.ID).Count(&count).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "check slug failed")
	}
	if count > 0 {
		return appErr.Newf(appErr.CodeConflict, "a project with slug %q already exists", p.Slug)
	}
	// CreatedDate and created_at are immutable after creation.
	if err := r.db.WithContext(ctx).Omit("created_date", "created_at").Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return appErr.Newf(appErr.CodeConflict, "a project with slug %q already exists", p.Slug)
		}
		return appErr.Wrap(err, appErr.CodeInternal, "update project failed")
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id any) error {
	return r.base.Delete(ctx, id)
}

func (r *projectRepository) List(ctx context.Context, category string) ([]models.Project, error) {
	q := r.ordered(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []models.Project
	if err := q.Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects failed")
	}
	return out, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	var out []models.Project
	if err := r.ordered(ctx).Where("is_featured = ?", true).Limit(limit).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list featured projects failed")
	}
	return out, nil
}

func (r *projectRepository) ListOthers(ctx context.Context, excludeSlug string, limit int) ([]models.Project, error) {
	var out []models.Project
	if err := r.ordered(ctx).Where("slug <> ?", excludeSlug).Limit(limit).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list other projects failed")
	}
	return out, nil
}

func (r *projectRepository) CountByCategory(ctx context.Context) (map[models.ProjectCategory]int64, error) {
	type row struct {
		Category models.ProjectCategory
		N        int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("category, COUNT(*) AS n").Group("category").Scan(&rows).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "count projects by category failed")
	}
	counts := make(map[models.ProjectCategory]int64, len(models.ProjectCategories()))
	for _, c := range models.ProjectCategories() {
		counts[c] = 0
	}
	for _, rw := range rows {
		counts[rw.Category] = rw.N
	}
	return counts, nil
}
