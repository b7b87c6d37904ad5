package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/store"
)

// stubService переопределяет только нужный метод, остальные не вызываются
type stubService struct {
	PortalService
	nombre string
}

func (s *stubService) GetAreasComunes(ctx context.Context) ([]domain.AreaComun, error) {
	return []domain.AreaComun{{ID: 1, Nombre: s.nombre}}, nil
}

func (s *stubService) Me(ctx context.Context, token string) (*domain.Usuario, error) {
	return &domain.Usuario{Nombre: s.nombre}, nil
}

func newDispatcher(t *testing.T, ses store.Session) *Dispatcher {
	t.Helper()

	t.Setenv("SANAGUSTIN_HOME", t.TempDir())
	fs, err := store.NewFileSessionStore()
	require.NoError(t, err)

	m := auth.NewManager(fs, testLogger(t))
	if ses.Token != "" {
		require.NoError(t, m.Login(ses))
	}

	return NewDispatcher(m,
		&stubService{nombre: "live"},
		&stubService{nombre: "demo"})
}

func TestDispatcherDemoSession(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"демо-токен резидента", auth.DemoTokenResidente, "demo"},
		{"демо-токен администратора", auth.DemoTokenAdmin, "demo"},
		{"обычный токен", "eyJhbGciOi.real.token", "live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(t, store.Session{Token: tt.token, UserID: 1, Email: "x@y.z"})

			areas, err := d.GetAreasComunes(context.Background())
			require.NoError(t, err)
			require.Len(t, areas, 1)
			assert.Equal(t, tt.want, areas[0].Nombre)
		})
	}
}

func TestDispatcherMeByToken(t *testing.T) {
	// Анонимный диспетчер: выбор для Me идет по самому токену
	d := newDispatcher(t, store.Session{})

	usuario, err := d.Me(context.Background(), auth.DemoTokenAdmin)
	require.NoError(t, err)
	assert.Equal(t, "demo", usuario.Nombre)

	usuario, err = d.Me(context.Background(), "real-token")
	require.NoError(t, err)
	assert.Equal(t, "live", usuario.Nombre)
}
