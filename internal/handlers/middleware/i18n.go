package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header (preferência do browser)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(dto.LanguageContextKey, lang)
		c.Set(dto.I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		// Remover peso (;q=0.9) se existir
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if supported := m.match(lang); supported != "" {
			return supported
		}
	}

	return ""
}

// match resolve uma tag de idioma para um locale carregado:
// exato, sem diferenciar caixa, depois só a base (en-US -> en, pt -> pt-BR)
func (m *I18nMiddleware) match(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	if m.i18nService.IsLanguageSupported(tag) {
		return tag
	}

	base, _, _ := strings.Cut(tag, "-")
	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.EqualFold(supported, tag) {
			return supported
		}
	}
	for _, supported := range m.i18nService.GetSupportedLanguages() {
		supportedBase, _, _ := strings.Cut(supported, "-")
		if strings.EqualFold(supportedBase, base) {
			return supported
		}
	}

	return ""
}

// BaseURL guarda a base usada nas URIs de tipo dos problemas
func BaseURL(url string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, url)
		c.Next()
	}
}
