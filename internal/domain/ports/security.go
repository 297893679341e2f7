package ports

import "time"

// TokenIssuer emite e verifica tokens de sessão
type TokenIssuer interface {
	Issue(userID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (userID string, err error)
}

// PasswordHasher faz o hash unidirecional de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
