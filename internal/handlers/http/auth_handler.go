package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/handlers/middleware"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// AuthHandler lida com cadastro, login e a sessão corrente
type AuthHandler struct {
	authService *services.AuthService
	errors      *ErrorHandler
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, errors *ErrorHandler) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errors:      errors,
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "New account"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	birthDate, err := dto.ParseOptionalDate(req.BirthDate)
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "birthDate", "error.invalid_date"))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  birthDate,
		BirthTime:  req.BirthTime,
		BirthPlace: req.BirthPlace,
		ZodiacSign: req.ZodiacSign,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: dto.T(c, "message.user_registered"),
		Token:   result.Token,
		User:    dto.ToUserResponse(result.User),
	})
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.AuthResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: dto.T(c, "message.login_successful"),
		Token:   result.Token,
		User:    dto.ToUserResponse(result.User),
	})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.MeResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: dto.ToUserResponse(user)})
}
