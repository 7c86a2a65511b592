package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id any) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	// created_at belongs to the original insert; a decoded request body
	// carries a zero value that must never reach the row.
	if err := r.db.WithContext(ctx).Omit("created_at").Save(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update entity failed")
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("entity %v not found", id))
	}
	return nil
}

// validatedRepository runs struct validation before every write, so invalid
// records (out-of-range skill levels, unknown enum codes) are rejected at the
// store rather than reaching the database.
type validatedRepository[T any] struct {
	BaseRepository[T]
}

func newValidatedRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &validatedRepository[T]{BaseRepository: NewBaseRepository[T](db)}
}

func (r *validatedRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := models.Validate(obj); err != nil {
		return err
	}
	return r.BaseRepository.Create(ctx, obj)
}

func (r *validatedRepository[T]) Update(ctx context.Context, obj *T) error {
	if err := models.Validate(obj); err != nil {
		return err
	}
	return r.BaseRepository.Update(ctx, obj)
}
