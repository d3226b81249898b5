// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("upstream service unavailable")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrTokenInvalid = errors.New("token invalid")
)

type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func BadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "bad_request", message)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "unauthorized", message)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, "forbidden", message)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		http.StatusNotFound,
		"not_found",
		fmt.Sprintf("%s not found", resource),
	)
}

func ConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, "conflict", message)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		http.StatusUnauthorized,
		"token_expired",
		"access token has expired",
	)
}

func TokenRevokedError() *AppError {
	return NewAppError(
		http.StatusUnauthorized,
		"token_revoked",
		"access token has been revoked",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		http.StatusUnauthorized,
		"token_invalid",
		"access token is invalid",
	)
}

func ServiceUnavailableError(message string) *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		"upstream_error",
		message,
	)
}

// FormatValidationError flattens validator.ValidationErrors into a single
// message listing each failed field in struct declaration order, which keeps
// the output deterministic across requests.
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "validation failed"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}

	return strings.Join(messages, "; ")
}

func formatFieldError(fe validator.FieldError) string {
	field := toSnakeCase(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
