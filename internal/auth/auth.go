package auth

import (
	"fmt"

	"github.com/jesushl/SanAgustin/internal/store"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// Зарезервированные демо-токены. Сессия с таким токеном обслуживается
// демо-клиентом и не ходит в сеть
const (
	DemoTokenResidente = "demo_token_residente"
	DemoTokenAdmin     = "demo_token_admin"
)

// Manager владеет текущей сессией: хранилище выступает долговременным
// зеркалом, в памяти держится единственная копия
type Manager struct {
	store  store.SessionStore
	ses    *store.Session
	logger logger.Logger
}

// NewManager создает менеджер сессии и восстанавливает сессию из хранилища.
// Неполные данные (например, без email) считаются отсутствием сессии:
// ничего не чиним и не сообщаем об ошибке
func NewManager(sessionStore store.SessionStore, log logger.Logger) *Manager {
	m := &Manager{
		store:  sessionStore,
		logger: log,
	}

	if ses, err := sessionStore.LoadSession(); err == nil {
		if ses.Token != "" && ses.UserID != 0 && ses.Email != "" {
			m.ses = ses
			log.Debug("сессия восстановлена из хранилища",
				logger.Int("user_id", ses.UserID),
				logger.Bool("is_admin", ses.IsAdmin))
		} else {
			log.Debug("в хранилище неполная сессия, считаем анонимной")
		}
	}

	return m
}

// Login сохраняет сессию в хранилище и в памяти. Идемпотентен.
// Подлинность токена не проверяется, вызывающий считается доверенным
func (m *Manager) Login(ses store.Session) error {
	if err := m.store.SaveSession(&ses); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	m.ses = &ses
	m.logger.Info("выполнен вход",
		logger.Int("user_id", ses.UserID),
		logger.Bool("is_admin", ses.IsAdmin),
		logger.Bool("demo", m.IsDemoSession()))

	return nil
}

// Logout очищает сессию в хранилище и в памяти. Идемпотентен
func (m *Manager) Logout() error {
	if err := m.store.ClearSession(); err != nil {
		return fmt.Errorf("ошибка очистки сессии: %w", err)
	}

	m.ses = nil
	m.logger.Info("выполнен выход")

	return nil
}

// CurrentUser возвращает текущую сессию или nil
func (m *Manager) CurrentUser() *store.Session {
	return m.ses
}

// IsAuthenticated сообщает, есть ли активная сессия
func (m *Manager) IsAuthenticated() bool {
	return m.ses != nil
}

// IsAdmin сообщает, имеет ли текущая сессия права администратора
func (m *Manager) IsAdmin() bool {
	return m.ses != nil && m.ses.IsAdmin
}

// IsDemoSession возвращает true только если сохраненный токен в точности
// совпадает с одним из зарезервированных демо-токенов
func (m *Manager) IsDemoSession() bool {
	if m.ses == nil {
		return false
	}
	return m.ses.Token == DemoTokenResidente || m.ses.Token == DemoTokenAdmin
}

// DemoResidenteSession возвращает демо-сессию резидента
func DemoResidenteSession() store.Session {
	return store.Session{
		Token:   DemoTokenResidente,
		UserID:  1,
		Email:   "residente@test.com",
		IsAdmin: false,
	}
}

// DemoAdminSession возвращает демо-сессию администратора
func DemoAdminSession() store.Session {
	return store.Session{
		Token:   DemoTokenAdmin,
		UserID:  2,
		Email:   "admin@test.com",
		IsAdmin: true,
	}
}
