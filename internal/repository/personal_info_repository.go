package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// PersonalInfoRepository manages the singleton owner profile.
type PersonalInfoRepository interface {
	// Create rejects a second record; at most one PersonalInfo may exist.
	Create(ctx context.Context, info *models.PersonalInfo) error
	// Get returns the record, or (nil, nil) when none exists yet.
	Get(ctx context.Context) (*models.PersonalInfo, error)
	Update(ctx context.Context, info *models.PersonalInfo) error
	Delete(ctx context.Context) error
}

type personalInfoRepository struct {
	db *gorm.DB
}

func NewPersonalInfoRepository(db *gorm.DB) PersonalInfoRepository {
	return &personalInfoRepository{db: db}
}

func (r *personalInfoRepository) Create(ctx context.Context, info *models.PersonalInfo) error {
	if err := models.Validate(info); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PersonalInfo{}).Count(&count).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "count personal info failed")
		}
		if count > 0 {
			return appErr.New(appErr.CodeConflict, "a personal info record already exists")
		}
		return tx.Create(info).Error
	})
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return ae
	}
	// A concurrent creator that slipped past the count check trips the
	// singleton guard index instead.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appErr.New(appErr.CodeConflict, "a personal info record already exists")
	}
	return appErr.Wrap(err, appErr.CodeInternal, "create personal info failed")
}

func (r *personalInfoRepository) Get(ctx context.Context) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := r.db.WithContext(ctx).First(&info).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get personal info failed")
	}
	return &info, nil
}

func (r *personalInfoRepository) Update(ctx context.Context, info *models.PersonalInfo) error {
	if err := models.Validate(info); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("created_at").Save(info).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update personal info failed")
	}
	return nil
}

func (r *personalInfoRepository) Delete(ctx context.Context) error {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.PersonalInfo{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete personal info failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "no personal info record exists")
	}
	return nil
}
