package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// FormatType представляет тип форматирования вывода
type FormatType string

const (
	FormatTable FormatType = "table"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// Formatter интерфейс для форматирования вывода
type Formatter interface {
	Format(data interface{}) (string, error)
}

// TableFormatter форматирует данные в виде таблицы.
// Ожидает *TableData, остальное печатает как есть
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (f *TableFormatter) Format(data interface{}) (string, error) {
	if td, ok := data.(*TableData); ok {
		return td.String(), nil
	}
	return fmt.Sprintf("%v", data), nil
}

// JSONFormatter форматирует данные в JSON
type JSONFormatter struct {
	Pretty bool
}

func NewJSONFormatter(pretty bool) *JSONFormatter {
	return &JSONFormatter{Pretty: pretty}
}

func (f *JSONFormatter) Format(data interface{}) (string, error) {
	var output []byte
	var err error

	if f.Pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return "", fmt.Errorf("ошибка сериализации JSON: %w", err)
	}

	return string(output), nil
}

// YAMLFormatter форматирует данные в YAML
type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format(data interface{}) (string, error) {
	output, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации YAML: %w", err)
	}

	return string(output), nil
}

// GetFormatter возвращает подходящий форматировщик
func GetFormatter(format FormatType, pretty bool) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(pretty)
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter()
	}
}

// DetectFormat определяет формат из переменной окружения.
// Флаг --output имеет приоритет и обрабатывается на уровне команд
func DetectFormat() FormatType {
	if format := os.Getenv("SANAGUSTIN_FORMAT"); format != "" {
		switch strings.ToLower(format) {
		case "json":
			return FormatJSON
		case "yaml":
			return FormatYAML
		case "table":
			return FormatTable
		}
	}

	return FormatTable
}
