package errors

import (
	"fmt"
	"net/http"
)

// Error представляет кастомную ошибку с дополнительной информацией
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// ErrorCode представляет код ошибки
type ErrorCode string

// Определение кодов ошибок
const (
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrForbidden    ErrorCode = "FORBIDDEN"
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrConflict     ErrorCode = "CONFLICT"
	ErrUnavailable  ErrorCode = "UNAVAILABLE"
)

// Error возвращает сообщение об ошибке
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap возвращает причину ошибки
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is проверяет, является ли ошибка указанного типа
func (e *Error) Is(target error) bool {
	if targetError, ok := target.(*Error); ok {
		return e.Code == targetError.Code
	}
	return false
}

// New создает новую кастомную ошибку
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap оборачивает существующую ошибку в кастомную
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WithDetails добавляет детали к ошибке
func (e *Error) WithDetails(details string) *Error {
	if e == nil {
		return nil
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// HTTPStatus возвращает соответствующий HTTP статус для ошибки
func (e *Error) HTTPStatus() int {
	if e == nil {
		return http.StatusOK
	}

	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrValidation:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FromHTTPStatus преобразует HTTP статус ответа сервера в кастомную ошибку.
// Бэкенд отдает текст ошибки в поле detail, он передается как message без изменений.
func FromHTTPStatus(status int, message string) *Error {
	if status < 400 {
		return nil
	}

	var code ErrorCode
	switch status {
	case http.StatusNotFound:
		code = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = ErrValidation
	case http.StatusUnauthorized:
		code = ErrUnauthorized
	case http.StatusForbidden:
		code = ErrForbidden
	case http.StatusConflict:
		code = ErrConflict
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		code = ErrUnavailable
	default:
		code = ErrInternal
	}

	if message == "" {
		message = fmt.Sprintf("сервер вернул статус: %d", status)
	}

	return &Error{
		Code:    code,
		Message: message,
	}
}

// GetUserMessage возвращает пользовательское сообщение об ошибке.
// Продуктовые строки на испанском, как и остальной интерфейс Сан Агустин.
// Для ошибок, пришедших с бэкенда, сообщение сервера показывается без изменений.
func (e *Error) GetUserMessage() string {
	if e == nil {
		return ""
	}

	// Сообщение с бэкенда или валидатора показываем как есть
	if e.Message != "" && e.Cause == nil {
		return e.Message
	}

	switch e.Code {
	case ErrNotFound:
		return "Recurso no encontrado"
	case ErrValidation:
		return "Error de validación de datos"
	case ErrUnauthorized:
		return "Sesión inválida, inicie sesión nuevamente"
	case ErrForbidden:
		return "Acceso denegado"
	case ErrConflict:
		return "Conflicto de datos"
	case ErrUnavailable:
		return "Error de conexión"
	case ErrInternal:
		return "Error interno del servidor"
	default:
		return "Ocurrió un error"
	}
}
