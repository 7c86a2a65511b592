package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

type mockMailer struct {
	mock.Mock
	sent chan struct{}
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan struct{}, 1)}
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	m.sent <- struct{}{}
	return args.Error(0)
}

func (m *mockMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestContactSubmitPersistsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.PersonalInfo{
		Name: "Okan Kantar", Title: "Developer", Email: "owner@example.com",
	}).Error)

	m := newMockMailer()
	m.On("Send", mock.Anything, "owner@example.com", mock.Anything, mock.Anything).Return(nil)

	svc := NewContactService(
		repository.NewContactMessageRepository(db),
		repository.NewPersonalInfoRepository(db),
		m,
		time.Second,
	)

	msg, err := svc.Submit(context.Background(), &ContactInput{Name: "A", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err)
	require.False(t, msg.IsRead)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	m.waitForSend(t)
	m.AssertCalled(t, "Send", mock.Anything, "owner@example.com", mock.Anything, mock.Anything)
}

func TestContactSubmitSurvivesMailerFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.PersonalInfo{
		Name: "Okan Kantar", Title: "Developer", Email: "owner@example.com",
	}).Error)

	m := newMockMailer()
	m.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewContactService(
		repository.NewContactMessageRepository(db),
		repository.NewPersonalInfoRepository(db),
		m,
		time.Second,
	)

	msg, err := svc.Submit(context.Background(), &ContactInput{Name: "A", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err, "notification failure must not fail the request")
	require.NotNil(t, msg)

	m.waitForSend(t)

	// The persisted message survives the failed notification.
	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestContactSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(
		repository.NewContactMessageRepository(db),
		repository.NewPersonalInfoRepository(db),
		nil,
		time.Second,
	)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *ContactInput
	}{
		{"missing message", &ContactInput{Name: "A", Email: "a@x.com"}},
		{"missing name", &ContactInput{Email: "a@x.com", Message: "hi"}},
		{"bad email", &ContactInput{Name: "A", Email: "nope", Message: "hi"}},
		{"nil input", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.input)
			require.True(t, appErr.IsCode(err, appErr.CodeInvalid), "got %v", err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.EqualValues(t, 0, count, "no partial records may be persisted")
}

func TestContactSubmitWithoutMailer(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(
		repository.NewContactMessageRepository(db),
		repository.NewPersonalInfoRepository(db),
		nil,
		0,
	)

	msg, err := svc.Submit(context.Background(), &ContactInput{Name: "A", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err)
	require.NotNil(t, msg)
}
