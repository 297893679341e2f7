package http

import (
	errs "errors"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
)

var (
	badRequestErrors = []error{
		errors.ErrUserAlreadyExists,
		errors.ErrSlugAlreadyExists,
		errors.ErrInvalidEmail,
		errors.ErrInvalidZodiacSign,
		errors.ErrInvalidHoroscopeType,
		errors.ErrInvalidConsultationType,
		errors.ErrInvalidStatus,
		errors.ErrInvalidContactMethod,
		errors.ErrInvalidElement,
		errors.ErrInvalidDate,
		errors.ErrInvalidLuckyMethod,
		errors.ErrUnknownSpread,
		errors.ErrPasswordTooLong,
	}
	notFoundErrors = []error{
		errors.ErrUserNotFound,
		errors.ErrHoroscopeNotFound,
		errors.ErrBlogNotFound,
		errors.ErrAppointmentNotFound,
		errors.ErrRashiNotFound,
		errors.ErrZodiacSignNotFound,
	}
	unauthorizedErrors = []error{
		errors.ErrInvalidCredentials,
		errors.ErrUnauthorized,
	}
)

// ErrorHandler traduz erros de serviço em problemas RFC 7807
type ErrorHandler struct {
	logger      ports.Logger
	reporter    ports.ErrorReporter
	development bool
}

// NewErrorHandler cria o tradutor; em desenvolvimento o 500 expõe a causa
func NewErrorHandler(logger ports.Logger, reporter ports.ErrorReporter, development bool) *ErrorHandler {
	return &ErrorHandler{logger: logger, reporter: reporter, development: development}
}

// Respond escreve o problema correspondente ao erro e aborta a requisição
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	var domainErr *errors.DomainError
	if errs.As(err, &domainErr) && domainErr.Type == errors.ProblemTypeValidation {
		key := domainErr.Message
		if domainErr.Err != nil {
			key = domainErr.Err.Error()
		}
		dto.Abort(c, dto.FieldErrorResponse(c, domainErr.Title, key))
		return
	}

	if sentinel, ok := match(err, badRequestErrors); ok {
		dto.Abort(c, dto.BadRequestErrorResponseI18n(c, sentinel.Error()))
		return
	}
	if sentinel, ok := match(err, notFoundErrors); ok {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, sentinel.Error()))
		return
	}
	if sentinel, ok := match(err, unauthorizedErrors); ok {
		dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, sentinel.Error()))
		return
	}
	if errs.Is(err, errors.ErrForbidden) {
		dto.Abort(c, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	h.logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	h.reporter.CaptureError(err, map[string]string{
		"method": c.Request.Method,
		"route":  c.FullPath(),
	})

	detail := ""
	if h.development {
		detail = err.Error()
	}
	dto.Abort(c, dto.InternalErrorResponseI18n(c, detail))
}

// BindError responde 400 para corpo ou query que não passou no binding
func (h *ErrorHandler) BindError(c *gin.Context, err error) {
	dto.Abort(c, dto.BindingErrorResponse(c, err))
}

func match(err error, candidates []error) (error, bool) {
	for _, candidate := range candidates {
		if errs.Is(err, candidate) {
			return candidate, true
		}
	}
	return nil, false
}
