package entities

import "time"

// Message é uma mensagem enviada pelo formulário de contato
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	IsRead    bool
	RepliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
