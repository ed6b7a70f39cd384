package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	errorspkg "textgateway.app/pkg/errors"
	"textgateway.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// validateLanguage validates the target_language tag
func validateLanguage(fl validator.FieldLevel) bool {
	return validation.IsValidLanguageCode(fl.Field().String())
}

// validateNotBlank rejects whitespace-only strings, which "required" accepts
func validateNotBlank(fl validator.FieldLevel) bool {
	return validation.IsNotEmpty(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errorspkg.NewConfigurationError("unexpected binding validator engine", nil)
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		if err := v.RegisterValidation("language", validateLanguage); err != nil {
			registerErr = errorspkg.NewConfigurationError("failed to register language validator", err)
			return
		}
		if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
			registerErr = errorspkg.NewConfigurationError("failed to register notblank validator", err)
		}
	})
	return registerErr
}

// bindingError turns a bind failure into a client-facing ValidationError
func bindingError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errorspkg.NewValidationError("Invalid request format")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return errorspkg.NewValidationError(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "language":
		return fmt.Sprintf("%s must be a language code such as fr or pt-BR", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
