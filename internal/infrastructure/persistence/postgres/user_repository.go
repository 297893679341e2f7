package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entities.User, error) {
	return r.findOne(ctx, "email = ? OR username = ?", email, username)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := userToModel(user)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var model UserModel

	if err := r.getDB(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	var sign *string
	if user.ZodiacSign != nil {
		s := user.ZodiacSign.String()
		sign = &s
	}

	return &UserModel{
		BaseModel: BaseModel{
			ID:        user.ID,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		Username:     user.Username,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		BirthDate:    user.BirthDate,
		BirthTime:    user.BirthTime,
		BirthPlace:   user.BirthPlace,
		ZodiacSign:   sign,
		IsAdmin:      user.IsAdmin,
		IsActive:     user.IsActive,
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var sign *entities.ZodiacSign
	if model.ZodiacSign != nil {
		s := entities.ZodiacSign(*model.ZodiacSign)
		sign = &s
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        email,
		PasswordHash: model.PasswordHash,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		BirthDate:    model.BirthDate,
		BirthTime:    model.BirthTime,
		BirthPlace:   model.BirthPlace,
		ZodiacSign:   sign,
		IsAdmin:      model.IsAdmin,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}
