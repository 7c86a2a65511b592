package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

func TestContactMessageCreateAndRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	msg := models.ContactMessage{
		Name:    "A",
		Email:   "a@x.com",
		Message: "hi",
		IsRead:  true, // intake must not be able to pre-mark messages
	}
	require.NoError(t, repo.Create(ctx, &msg))
	require.False(t, msg.IsRead)

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.False(t, got.IsRead)
	require.Equal(t, "hi", got.Message)

	require.NoError(t, repo.SetRead(ctx, msg.ID, true))
	got, err = repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.True(t, got.IsRead)

	require.NoError(t, repo.SetRead(ctx, msg.ID, false))
	got, err = repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.False(t, got.IsRead)
}

func TestContactMessageValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.ContactMessage{Name: "A", Email: "not-an-email", Message: "hi"})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	err = repo.Create(ctx, &models.ContactMessage{Name: "A", Email: "a@x.com"})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid), "missing message must be rejected")

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.EqualValues(t, 0, count, "no partial records may be persisted")
}

func TestContactMessageSetReadMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepository(db)

	err := repo.SetRead(context.Background(), uuid.New(), true)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestContactMessageListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		require.NoError(t, repo.Create(ctx, &models.ContactMessage{Name: name, Email: "a@x.com", Message: "m"}))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
