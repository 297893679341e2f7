package repositories

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindByEmailOrUsername retorna o primeiro usuário que usa o email ou o username
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}
