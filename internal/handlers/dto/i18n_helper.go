package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// BaseURLContextKey guarda a base das URIs de problema (RFC 7807)
	BaseURLContextKey = "base_url"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Blog"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(I18nServiceContextKey)
	if !exists {
		// sem serviço, a própria chave é a mensagem
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(LanguageContextKey)
	if !exists {
		return "en"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}

// MessageResponse é a resposta de operações sem corpo próprio
type MessageResponse struct {
	Message string `json:"message"`
}

// Message traduz uma chave de mensagem de sucesso
func Message(c *gin.Context, key string) MessageResponse {
	return MessageResponse{Message: T(c, key)}
}
