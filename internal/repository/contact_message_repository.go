package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// ContactMessageRepository manages inbound contact messages. Rows are created
// by the intake endpoint only; afterwards the content fields are immutable and
// the repository exposes no way to change them. The read flag is the single
// mutable attribute.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if err := models.Validate(msg); err != nil {
		return err
	}
	msg.IsRead = false
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create contact message failed")
	}
	return nil
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, appErr.New(appErr.CodeNotFound, "message not found")
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get contact message failed")
	}
	return &msg, nil
}

func (r *contactMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list contact messages failed")
	}
	return out, nil
}

func (r *contactMessageRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	res := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update read flag failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "message not found")
	}
	return nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete contact message failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "message not found")
	}
	return nil
}
