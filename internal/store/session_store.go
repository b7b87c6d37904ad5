package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session содержит данные авторизованной сессии резидента.
// Это те же четыре поля, что браузерный клиент держит в localStorage
type Session struct {
	Token   string `json:"token"`
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// SessionStore определяет интерфейс для хранилища сессии
type SessionStore interface {
	SaveSession(ses *Session) error
	LoadSession() (*Session, error)
	HasSession() bool
	ClearSession() error
	GetToken() string
}

// FileSessionStore хранит сессию в файле домашней директории
type FileSessionStore struct {
	sessionPath string
}

// NewFileSessionStore создает новое файловое хранилище сессии
func NewFileSessionStore() (*FileSessionStore, error) {
	// Сначала проверяем переменную окружения
	home := os.Getenv("SANAGUSTIN_HOME")
	if home == "" {
		// Если переменная не установлена, используем домашнюю директорию
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ошибка получения домашней директории: %w", err)
		}
	}

	// Создаем директорию если она не существует
	stateDir := filepath.Join(home, ".sanagustin")
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", stateDir, err)
	}

	return &FileSessionStore{
		sessionPath: filepath.Join(stateDir, "session"),
	}, nil
}

// SaveSession сохраняет сессию в файл
func (fs *FileSessionStore) SaveSession(ses *Session) error {
	data, err := json.MarshalIndent(ses, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}

	if err := os.WriteFile(fs.sessionPath, data, 0600); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return nil
}

// LoadSession загружает сессию из файла
func (fs *FileSessionStore) LoadSession() (*Session, error) {
	if _, err := os.Stat(fs.sessionPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("файл сессии не найден")
	}

	data, err := os.ReadFile(fs.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла сессии: %w", err)
	}

	var ses Session
	if err := json.Unmarshal(data, &ses); err != nil {
		return nil, fmt.Errorf("ошибка десериализации сессии: %w", err)
	}

	return &ses, nil
}

// HasSession проверяет наличие сохраненной сессии
func (fs *FileSessionStore) HasSession() bool {
	_, err := os.Stat(fs.sessionPath)
	return !os.IsNotExist(err)
}

// ClearSession удаляет файл сессии
func (fs *FileSessionStore) ClearSession() error {
	if err := os.Remove(fs.sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления файла сессии: %w", err)
	}
	return nil
}

// GetToken возвращает токен текущей сессии
func (fs *FileSessionStore) GetToken() string {
	if ses, err := fs.LoadSession(); err == nil {
		return ses.Token
	}
	return ""
}
