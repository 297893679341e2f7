package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
)

// CurrentUserContextKey guarda o usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// Authenticator resolve um token de sessão para um usuário ativo
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// Authenticate exige um bearer token válido e anexa o usuário à requisição
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			// falhas de banco também viram 401 para não vazar detalhes da sessão
			dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequireAdmin roda depois de Authenticate e barra quem não é admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			dto.Abort(c, dto.ForbiddenErrorResponseI18n(c))
			return
		}
		c.Next()
	}
}

// CurrentUser retorna o usuário anexado por Authenticate
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
