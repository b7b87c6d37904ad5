package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validator предоставляет общие функции валидации
type Validator struct{}

// NewValidator создает новый Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequiredFields проверяет обязательные поля запроса
func (v *Validator) ValidateRequiredFields(req map[string]interface{}, requiredFields map[string]string) error {
	for field, fieldName := range requiredFields {
		value, exists := req[field]
		if !exists || value == nil || value == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}
	return nil
}

// ValidateStringLength проверяет длину строки
func (v *Validator) ValidateStringLength(value, fieldName string, min, max int) error {
	length := len(value)
	if length < min {
		return fmt.Errorf("%s must be at least %d characters, got: %d", fieldName, min, length)
	}
	if length > max {
		return fmt.Errorf("%s must not exceed %d characters, got: %d", fieldName, max, length)
	}
	return nil
}

// ValidateTimestamp проверяет временной штамп
func (v *Validator) ValidateTimestamp(ts time.Time, fieldName string) error {
	if ts.IsZero() {
		return fmt.Errorf("%s cannot be zero", fieldName)
	}
	return nil
}

// ValidateEmail выполняет базовую проверку email адреса
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email format: %s", email)
	}

	if strings.ContainsAny(email, " \t\n\r") {
		return fmt.Errorf("email contains invalid whitespace characters")
	}

	return nil
}

// plateRegex допускает номера вида ABC-123, ABC123, с цифрами и латиницей
var plateRegex = regexp.MustCompile(`^[A-Z0-9]{2,4}-?[A-Z0-9]{2,4}$`)

// ValidatePlate проверяет формат номерного знака
func (v *Validator) ValidatePlate(plate string) error {
	if plate == "" {
		return fmt.Errorf("plate is required")
	}

	if !plateRegex.MatchString(strings.ToUpper(plate)) {
		return fmt.Errorf("invalid plate format: %s", plate)
	}

	return nil
}

// ValidateEnum проверяет значение на соответствие enum
func (v *Validator) ValidateEnum(value string, allowedValues []string, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	for _, allowed := range allowedValues {
		if value == allowed {
			return nil
		}
	}

	return fmt.Errorf("invalid %s: %s, allowed values: %v", fieldName, value, allowedValues)
}
