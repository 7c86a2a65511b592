package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/okan-kantar/portfolio-backend/internal/mailer"
	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactService handles contact form intake: validate, persist, and notify
// the site owner best-effort.
type ContactService interface {
	Submit(ctx context.Context, input *ContactInput) (*models.ContactMessage, error)
}

type contactService struct {
	messages     repository.ContactMessageRepository
	personal     repository.PersonalInfoRepository
	mail         mailer.Mailer
	notifyWindow time.Duration
}

// NewContactService builds the intake service. mail may be nil when no SMTP
// relay is configured; notification is then skipped entirely.
func NewContactService(
	messages repository.ContactMessageRepository,
	personal repository.PersonalInfoRepository,
	mail mailer.Mailer,
	notifyWindow time.Duration,
) ContactService {
	if notifyWindow <= 0 {
		notifyWindow = 10 * time.Second
	}
	return &contactService{messages: messages, personal: personal, mail: mail, notifyWindow: notifyWindow}
}

var _ ContactService = (*contactService)(nil)

func (s *contactService) Submit(ctx context.Context, input *ContactInput) (*models.ContactMessage, error) {
	if input == nil {
		return nil, appErr.New(appErr.CodeInvalid, "empty submission")
	}
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// The notification is a secondary effect: it runs off the request
	// goroutine under its own deadline, and any failure is logged only.
	go s.notify(*input)

	return msg, nil
}

func (s *contactService) notify(input ContactInput) {
	if s.mail == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.notifyWindow)
	defer cancel()

	info, err := s.personal.Get(ctx)
	if err != nil {
		logger.L().Warn("contact notification skipped", zap.Error(err))
		return
	}
	if info == nil || info.Email == "" {
		return
	}

	subject := input.Subject
	if subject == "" {
		subject = "No subject"
	}
	body := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		input.Name, input.Email, subject, input.Message)

	if err := s.mail.Send(ctx, info.Email, "New contact message: "+subject, body); err != nil {
		logger.L().Warn("contact notification failed",
			zap.String("to", info.Email),
			zap.Error(err),
		)
	}
}
