package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidators instala no validator do Gin as regras do domínio
// e faz os erros usarem o nome JSON dos campos.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})

		rules := map[string]validator.Func{
			"zodiacsign": func(fl validator.FieldLevel) bool {
				_, ok := entities.ParseZodiacSign(fl.Field().String())
				return ok
			},
			"horoscopetype": func(fl validator.FieldLevel) bool {
				_, ok := entities.ParseHoroscopeType(fl.Field().String())
				return ok
			},
			"consultationtype": func(fl validator.FieldLevel) bool {
				_, ok := entities.ParseConsultationType(fl.Field().String())
				return ok
			},
			"element": func(fl validator.FieldLevel) bool {
				_, ok := entities.ParseElement(fl.Field().String())
				return ok
			},
			"isodate": func(fl validator.FieldLevel) bool {
				_, parseErr := ParseDate(fl.Field().String())
				return parseErr == nil
			},
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

// ParseDate aceita RFC 3339 ou YYYY-MM-DD; datas sem hora viram meia-noite local
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// ParseOptionalDate trata nil e string vazia como ausência de data
func ParseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// BindingErrorResponse traduz um erro de ShouldBind em problema de validação
func BindingErrorResponse(c *gin.Context, err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ValidationErrorResponseI18n(c, []ValidationError{{
			Field:   "body",
			Message: T(c, "validation.body"),
		}})
	}

	fields := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, ValidationError{
			Field:   fe.Field(),
			Message: translateFieldError(c, fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	return ValidationErrorResponseI18n(c, fields)
}

// FieldErrorResponse monta o problema de validação de um único campo
func FieldErrorResponse(c *gin.Context, field, messageKey string) ErrorResponse {
	return ValidationErrorResponseI18n(c, []ValidationError{{
		Field:   field,
		Message: T(c, messageKey),
	}})
}

func translateFieldError(c *gin.Context, fe validator.FieldError) string {
	params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}
	key := "validation." + fe.Tag()
	if msg := T(c, key, params); msg != key {
		return msg
	}
	return T(c, "validation.invalid", params)
}
