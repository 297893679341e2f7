package dto

// ContactRequest representa o formulário de contato
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=5,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// ContactResponse confirma o envio com o id gerado
type ContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
