package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config представляет конфигурацию CLI
type Config struct {
	// Настройки бэкенда
	API struct {
		BaseURL string `yaml:"base_url" json:"base_url"`
		Timeout int    `yaml:"timeout" json:"timeout"`
	} `yaml:"api" json:"api"`

	// Хранилище сессии: file или redis
	Session struct {
		Backend string `yaml:"backend" json:"backend"`
		Redis   struct {
			Addr     string `yaml:"addr" json:"addr"`
			Password string `yaml:"password" json:"password"`
			DB       int    `yaml:"db" json:"db"`
		} `yaml:"redis" json:"redis"`
	} `yaml:"session" json:"session"`

	// Задержка демо-ответов в миллисекундах
	Demo struct {
		DelayMs int `yaml:"delay_ms" json:"delay_ms"`
	} `yaml:"demo" json:"demo"`

	// Настройки вывода
	Output struct {
		Format string `yaml:"format" json:"format"` // table, json, yaml
		Pretty bool   `yaml:"pretty" json:"pretty"`
	} `yaml:"output" json:"output"`

	// Настройки логирования
	Logger struct {
		Level       string `yaml:"level" json:"level"`
		Environment string `yaml:"environment" json:"environment"`
	} `yaml:"logger" json:"logger"`

	// Путь к файлу конфигурации
	Path string `yaml:"-" json:"-"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	config := &Config{}

	config.API.BaseURL = "http://localhost:8000"
	config.API.Timeout = 30

	config.Session.Backend = "file"
	config.Session.Redis.Addr = "localhost:6379"

	config.Demo.DelayMs = 500

	config.Output.Format = "table"
	config.Output.Pretty = true

	config.Logger.Level = "info"
	config.Logger.Environment = "prod"

	return config
}

// LoadConfig загружает конфигурацию из файла.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	config.Path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}

	return config, nil
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save() error {
	if c.Path == "" {
		return fmt.Errorf("путь к файлу конфигурации не указан")
	}

	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("ошибка создания директории: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("ошибка сериализации конфигурации: %w", err)
	}

	if err := os.WriteFile(c.Path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла конфигурации: %w", err)
	}

	return nil
}

// GetConfigPath возвращает путь к файлу конфигурации.
// SANAGUSTIN_HOME переопределяет домашнюю директорию, как и для сессии
func GetConfigPath() (string, error) {
	home := os.Getenv("SANAGUSTIN_HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ошибка получения домашней директории: %w", err)
		}
	}

	return filepath.Join(home, ".sanagustin", "config.yaml"), nil
}

// Validate проверяет валидность конфигурации
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url не может быть пустым")
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout должен быть положительным числом")
	}

	if c.Session.Backend != "file" && c.Session.Backend != "redis" {
		return fmt.Errorf("неверный тип хранилища сессии: %s", c.Session.Backend)
	}

	if c.Demo.DelayMs < 0 {
		return fmt.Errorf("demo.delay_ms не может быть отрицательным")
	}

	validFormats := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("неверный формат вывода: %s", c.Output.Format)
	}

	return nil
}
