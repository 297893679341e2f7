package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrUserAlreadyExists   = errors.New("error.user_already_exists")
	ErrInvalidCredentials  = errors.New("error.invalid_credentials")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
	ErrHoroscopeNotFound   = errors.New("error.horoscope_not_found")
	ErrBlogNotFound        = errors.New("error.blog_not_found")
	ErrSlugAlreadyExists   = errors.New("error.slug_already_exists")
	ErrAppointmentNotFound = errors.New("error.appointment_not_found")
	ErrRashiNotFound       = errors.New("error.rashi_not_found")
	ErrZodiacSignNotFound  = errors.New("error.zodiac_sign_not_found")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail            = errors.New("error.invalid_email")
	ErrInvalidZodiacSign       = errors.New("error.invalid_zodiac_sign")
	ErrInvalidHoroscopeType    = errors.New("error.invalid_horoscope_type")
	ErrInvalidConsultationType = errors.New("error.invalid_consultation_type")
	ErrInvalidStatus           = errors.New("error.invalid_status")
	ErrInvalidContactMethod    = errors.New("error.invalid_contact_method")
	ErrInvalidElement          = errors.New("error.invalid_element")
	ErrInvalidDate             = errors.New("error.invalid_date")
	ErrInvalidLuckyMethod      = errors.New("error.invalid_lucky_method")
	ErrUnknownSpread           = errors.New("error.unknown_spread")
	ErrPasswordTooLong         = errors.New("error.password_too_long")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Invalid cria um erro de validação de campo que aponta para um erro base
func Invalid(field string, err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   field,
		Message: "invalid " + field,
		Err:     err,
	}
}
