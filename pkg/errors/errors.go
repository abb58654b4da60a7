package errors

import (
	"errors"
	"fmt"
)

// AppError is the error type the service layer returns to the API layer.
// Code is a business error code (not an HTTP status); Message is safe to show
// to the caller; Err carries the internal cause and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is / errors.As see through the wrapper.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a code and a caller-facing message.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap converts a low-level error (database, redis, broker) into an internal
// AppError. The original error is kept for logging only.
func Wrap(err error, message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Err: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// Business error codes.
// 4xxxx: client/business errors, 5xxxx: server errors. The API layer maps
// code ranges to HTTP statuses.
const (
	// Server errors (50000-50099)
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002
	ErrCodeBrokerError   = 50003

	// Authentication / authorization
	ErrCodeUnauthorized       = 40100
	ErrCodeInvalidToken       = 40101
	ErrCodeTokenExpired       = 40102
	ErrCodeInvalidCredentials = 40103
	ErrCodeAccountDisabled    = 40105
	ErrCodeForbidden          = 40300

	// Not found (40400-40499)
	ErrCodeNotFound         = 40400
	ErrCodeUserNotFound     = 40401
	ErrCodeProductNotFound  = 40402
	ErrCodeOrderNotFound    = 40403
	ErrCodeCategoryNotFound = 40404
	ErrCodeBrandNotFound    = 40405

	// Business rules (40000-40099)
	ErrCodeBusinessError      = 40000
	ErrCodeInsufficientStock  = 40001
	ErrCodeInvalidOrderStatus = 40002
	ErrCodeEmailDuplicate     = 40003
	ErrCodeSKUDuplicate       = 40004
	ErrCodeSlugDuplicate      = 40005
	ErrCodeProductInactive    = 40006
	ErrCodeCategoryCycle      = 40007
	ErrCodeResetTokenInvalid  = 40008
	ErrCodeVerifyTokenInvalid = 40010

	// Parameter errors (40900-40999)
	ErrCodeInvalidParams = 40900
	ErrCodeBindError     = 40901
)

// Predefined errors shared across packages.
var (
	ErrInternal      = New(ErrCodeInternal, "error interno del servidor")
	ErrDatabaseError = New(ErrCodeDatabaseError, "error de base de datos")
	ErrRedisError    = New(ErrCodeRedisError, "error del servicio de sesiones")

	ErrUnauthorized       = New(ErrCodeUnauthorized, "debe iniciar sesión")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "token inválido")
	ErrTokenExpired       = New(ErrCodeTokenExpired, "el token ha expirado")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "email o contraseña incorrectos")
	ErrAccountDisabled    = New(ErrCodeAccountDisabled, "la cuenta está desactivada")
	ErrForbidden          = New(ErrCodeForbidden, "no tiene permisos para esta operación")

	ErrUserNotFound     = New(ErrCodeUserNotFound, "usuario no encontrado")
	ErrProductNotFound  = New(ErrCodeProductNotFound, "producto no encontrado")
	ErrOrderNotFound    = New(ErrCodeOrderNotFound, "orden no encontrada")
	ErrCategoryNotFound = New(ErrCodeCategoryNotFound, "categoría no encontrada")
	ErrBrandNotFound    = New(ErrCodeBrandNotFound, "marca no encontrada")

	ErrEmailDuplicate = New(ErrCodeEmailDuplicate, "el email ya está registrado")
	ErrSKUDuplicate   = New(ErrCodeSKUDuplicate, "ya existe un producto con ese SKU")
	ErrSlugDuplicate  = New(ErrCodeSlugDuplicate, "ya existe una categoría con ese slug")

	ErrInvalidParams = New(ErrCodeInvalidParams, "parámetros inválidos")
	ErrBindError     = New(ErrCodeBindError, "formato de parámetros inválido")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so the caller never sees raw driver messages.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "error interno del servidor")
}
