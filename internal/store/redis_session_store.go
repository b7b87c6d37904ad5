package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore хранит сессию в Redis. Используется, когда несколько
// рабочих мест (киоск охраны, терминал администрации) делят одну сессию
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore создает новое хранилище сессии в Redis
func NewRedisSessionStore(addr, password string, db int) (*RedisSessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Проверяем подключение
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	return &RedisSessionStore{
		client: rdb,
		prefix: "sanagustin:cli:session:",
	}, nil
}

// SaveSession сохраняет сессию в Redis
func (rs *RedisSessionStore) SaveSession(ses *Session) error {
	ctx := context.Background()

	data, err := json.Marshal(ses)
	if err != nil {
		return fmt.Errorf("ошибка сериализации сессии: %w", err)
	}

	// Сессия живет до явного выхода, TTL не ставим
	key := rs.prefix + "current"
	if err := rs.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("ошибка сохранения сессии в Redis: %w", err)
	}

	return nil
}

// LoadSession загружает сессию из Redis
func (rs *RedisSessionStore) LoadSession() (*Session, error) {
	ctx := context.Background()

	key := rs.prefix + "current"
	data, err := rs.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("сессия не найдена")
		}
		return nil, fmt.Errorf("ошибка загрузки сессии из Redis: %w", err)
	}

	var ses Session
	if err := json.Unmarshal([]byte(data), &ses); err != nil {
		return nil, fmt.Errorf("ошибка десериализации сессии: %w", err)
	}

	return &ses, nil
}

// HasSession проверяет наличие сессии
func (rs *RedisSessionStore) HasSession() bool {
	ctx := context.Background()

	key := rs.prefix + "current"
	_, err := rs.client.Get(ctx, key).Result()
	return err != redis.Nil
}

// ClearSession удаляет сессию из Redis
func (rs *RedisSessionStore) ClearSession() error {
	ctx := context.Background()

	key := rs.prefix + "current"
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("ошибка удаления сессии из Redis: %w", err)
	}

	return nil
}

// GetToken возвращает токен текущей сессии
func (rs *RedisSessionStore) GetToken() string {
	if ses, err := rs.LoadSession(); err == nil {
		return ses.Token
	}
	return ""
}

// Close закрывает подключение к Redis
func (rs *RedisSessionStore) Close() error {
	return rs.client.Close()
}
