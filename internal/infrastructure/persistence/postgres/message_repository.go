package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// MessageRepository implementa repositories.MessageRepository
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository cria um novo MessageRepository
func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	model := &MessageModel{
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		IsRead:    message.IsRead,
		RepliedAt: message.RepliedAt,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	message.ID = model.ID
	message.CreatedAt = model.CreatedAt
	message.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*entities.Message, error) {
	var model MessageModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Message{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Subject:   model.Subject,
		Message:   model.Message,
		IsRead:    model.IsRead,
		RepliedAt: model.RepliedAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
