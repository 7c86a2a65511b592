package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// CertificateRepository manages certificate entries. The default ordering is
// descending date received, then display order.
type CertificateRepository interface {
	BaseRepository[models.Certificate]
	List(ctx context.Context) ([]models.Certificate, error)
	ListRecent(ctx context.Context, limit int) ([]models.Certificate, error)
}

type certificateRepository struct {
	BaseRepository[models.Certificate]
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{BaseRepository: newValidatedRepository[models.Certificate](db), db: db}
}

func (r *certificateRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("date_received DESC, display_order")
}

func (r *certificateRepository) List(ctx context.Context) ([]models.Certificate, error) {
	var out []models.Certificate
	if err := r.ordered(ctx).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list certificates failed")
	}
	return out, nil
}

func (r *certificateRepository) ListRecent(ctx context.Context, limit int) ([]models.Certificate, error) {
	var out []models.Certificate
	if err := r.ordered(ctx).Limit(limit).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list recent certificates failed")
	}
	return out, nil
}
