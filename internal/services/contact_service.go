package services

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// ContactService grava as mensagens do formulário de contato
type ContactService struct {
	repo       repositories.MessageRepository
	notifier   ports.Notifier
	adminEmail string
	logger     ports.Logger
}

// NewContactService cria um novo ContactService; adminEmail recebe o aviso de cada mensagem
func NewContactService(
	repo repositories.MessageRepository,
	notifier ports.Notifier,
	adminEmail string,
	logger ports.Logger,
) *ContactService {
	return &ContactService{
		repo:       repo,
		notifier:   notifier,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// ContactInput representa uma mensagem já validada
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit persiste a mensagem; o aviso por email não afeta o resultado
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*entities.Message, error) {
	message := &entities.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("contact message stored", "message_id", message.ID)

	if s.adminEmail == "" {
		s.logger.Warn("no admin address configured, contact notice skipped", "message_id", message.ID)
		return message, nil
	}

	s.notifier.Notify(ports.Notification{
		Kind:    ports.NotificationContact,
		To:      s.adminEmail,
		Subject: "New Contact Form: " + message.Subject,
		Data: map[string]any{
			"Name":    message.Name,
			"Email":   message.Email,
			"Subject": message.Subject,
			"Message": message.Message,
		},
	})

	return message, nil
}
