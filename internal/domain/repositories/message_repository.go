package repositories

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// MessageRepository define a interface para persistência de mensagens de contato
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	FindByID(ctx context.Context, id string) (*entities.Message, error)
}
