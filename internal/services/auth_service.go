package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/domain/valueobjects"
)

// AuthService contém registro, login e resolução de tokens
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	notifier ports.Notifier
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	notifier ports.Notifier,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

// RegisterInput representa os dados para criar uma conta
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	BirthDate  *time.Time
	BirthTime  *string
	BirthPlace *string
	ZodiacSign *string
}

// AuthResult é o token emitido junto com o usuário autenticado
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// Register cria o usuário e já devolve um token de sessão
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.Invalid("email", errors.ErrInvalidEmail)
	}

	var sign *entities.ZodiacSign
	if input.ZodiacSign != nil && *input.ZodiacSign != "" {
		parsed, ok := entities.ParseZodiacSign(*input.ZodiacSign)
		if !ok {
			return nil, errors.Invalid("zodiacSign", errors.ErrInvalidZodiacSign)
		}
		sign = &parsed
	}

	existing, err := s.userRepo.FindByEmailOrUsername(ctx, email.String(), input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if stderrors.Is(err, errors.ErrPasswordTooLong) {
		return nil, errors.Invalid("password", err)
	}
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		BirthTime:    input.BirthTime,
		BirthPlace:   input.BirthPlace,
		ZodiacSign:   sign,
		IsActive:     true,
	}
	if err := user.Validate(); err != nil {
		return nil, errors.Invalid("user", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.Notification{
		Kind:    ports.NotificationWelcome,
		To:      user.Email.String(),
		Subject: "Welcome to KundliVision",
		Data: map[string]any{
			"FirstName": user.FirstName,
			"Username":  user.Username,
		},
	})

	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Login não distingue email desconhecido, conta inativa e senha errada
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanAuthenticate() {
		return nil, errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolve o token para um usuário ativo
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanAuthenticate() {
		return nil, errors.ErrUnauthorized
	}

	return user, nil
}

// Promote concede acesso de administrador a uma conta existente
func (s *AuthService) Promote(ctx context.Context, email string) (*entities.User, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if user.IsAdmin {
		return user, nil
	}

	user.IsAdmin = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user promoted to admin", "user_id", user.ID)
	return user, nil
}
