package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// SiteSettingsRepository manages the singleton site settings record. Creation
// while one exists fails; deletion is rejected unconditionally.
type SiteSettingsRepository interface {
	Create(ctx context.Context, settings *models.SiteSettings) error
	// Get returns the record, or (nil, nil) when none exists yet.
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) error
	Delete(ctx context.Context) error
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

func (r *siteSettingsRepository) Create(ctx context.Context, settings *models.SiteSettings) error {
	if err := models.Validate(settings); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "count site settings failed")
		}
		if count > 0 {
			return appErr.New(appErr.CodeConflict, "a site settings record already exists")
		}
		return tx.Create(settings).Error
	})
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appErr.New(appErr.CodeConflict, "a site settings record already exists")
	}
	return appErr.Wrap(err, appErr.CodeInternal, "create site settings failed")
}

func (r *siteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get site settings failed")
	}
	return &settings, nil
}

func (r *siteSettingsRepository) Update(ctx context.Context, settings *models.SiteSettings) error {
	if err := models.Validate(settings); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("created_at").Save(settings).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update site settings failed")
	}
	return nil
}

// Delete always fails: the settings record cannot be removed once created.
func (r *siteSettingsRepository) Delete(ctx context.Context) error {
	return appErr.New(appErr.CodeConflict, "site settings cannot be deleted")
}
