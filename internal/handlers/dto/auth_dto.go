package dto

import (
	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=30"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6,max=72"`
	FirstName  string  `json:"firstName" binding:"required,min=2,max=50"`
	LastName   string  `json:"lastName" binding:"required,min=2,max=50"`
	BirthDate  *string `json:"birthDate" binding:"omitempty,isodate"`
	BirthTime  *string `json:"birthTime"`
	BirthPlace *string `json:"birthPlace"`
	ZodiacSign *string `json:"zodiacSign" binding:"omitempty,zodiacsign"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse é a projeção pública do usuário; nunca inclui o hash da senha
type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	ZodiacSign *string `json:"zodiacSign"`
	IsAdmin    bool    `json:"isAdmin"`
}

// AuthResponse é a resposta de cadastro e login
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// MeResponse é a resposta de GET /auth/me
type MeResponse struct {
	User UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	var sign *string
	if user.ZodiacSign != nil {
		s := user.ZodiacSign.String()
		sign = &s
	}

	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email.String(),
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		ZodiacSign: sign,
		IsAdmin:    user.IsAdmin,
	}
}
