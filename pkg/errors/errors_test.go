package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrValidation, "campo requerido")

	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Code)
	assert.Equal(t, "campo requerido", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrUnavailable, "ошибка выполнения запроса")

	require.NotNil(t, err)
	assert.Equal(t, ErrUnavailable, err.Code)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "connection refused")

	// Wrap от nil возвращает nil
	assert.Nil(t, Wrap(nil, ErrInternal, "не должно случиться"))
}

func TestIs(t *testing.T) {
	err := New(ErrUnauthorized, "token expired")

	assert.True(t, err.Is(New(ErrUnauthorized, "другое сообщение")))
	assert.False(t, err.Is(New(ErrForbidden, "token expired")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrUnavailable, http.StatusServiceUnavailable},
		{ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := New(tt.code, "test")
		assert.Equal(t, tt.status, err.HTTPStatus(), "code %s", tt.code)
	}
}

func TestFromHTTPStatus(t *testing.T) {
	// Статусы ниже 400 не являются ошибками
	assert.Nil(t, FromHTTPStatus(http.StatusOK, ""))
	assert.Nil(t, FromHTTPStatus(http.StatusCreated, ""))

	err := FromHTTPStatus(http.StatusUnauthorized, "")
	require.NotNil(t, err)
	assert.Equal(t, ErrUnauthorized, err.Code)

	// Сообщение сервера передается без изменений
	err = FromHTTPStatus(http.StatusBadRequest, "La reserva no puede exceder 24 horas")
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Code)
	assert.Equal(t, "La reserva no puede exceder 24 horas", err.GetUserMessage())

	// 422 от FastAPI тоже ошибка валидации
	assert.Equal(t, ErrValidation, FromHTTPStatus(http.StatusUnprocessableEntity, "").Code)
}

func TestGetUserMessage(t *testing.T) {
	// Без собственного сообщения возвращается текст по коду
	err := &Error{Code: ErrUnavailable}
	assert.Equal(t, "Error de conexión", err.GetUserMessage())

	// Обернутая ошибка скрывает внутреннюю причину от пользователя
	wrapped := Wrap(fmt.Errorf("dial tcp: timeout"), ErrUnavailable, "ошибка выполнения запроса")
	assert.Equal(t, "Error de conexión", wrapped.GetUserMessage())
}
