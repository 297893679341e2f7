package entities

import (
	"errors"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do site
type User struct {
	ID           string
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	FirstName    string
	LastName     string
	BirthDate    *time.Time
	BirthTime    *string
	BirthPlace   *string
	ZodiacSign   *ZodiacSign
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate indica se o usuário pode obter ou usar um token
func (u *User) CanAuthenticate() bool {
	return u.IsActive
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if len(u.Username) < 3 || len(u.Username) > 30 {
		return errors.New("username must be between 3 and 30 characters")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if u.ZodiacSign != nil && !u.ZodiacSign.IsValid() {
		return errors.New("invalid zodiac sign")
	}

	return nil
}
