package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/store"
	"github.com/jesushl/SanAgustin/pkg/errors"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// fakeSessionStore хранит сессию в памяти для тестов
type fakeSessionStore struct {
	ses *store.Session
}

func (f *fakeSessionStore) SaveSession(ses *store.Session) error { f.ses = ses; return nil }
func (f *fakeSessionStore) LoadSession() (*store.Session, error) {
	if f.ses == nil {
		return nil, errors.New(errors.ErrNotFound, "сессия не найдена")
	}
	return f.ses, nil
}
func (f *fakeSessionStore) HasSession() bool    { return f.ses != nil }
func (f *fakeSessionStore) ClearSession() error { f.ses = nil; return nil }
func (f *fakeSessionStore) GetToken() string {
	if f.ses == nil {
		return ""
	}
	return f.ses.Token
}

func testTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func testLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.NewLogger("dev", "error", "client-test")
	require.NoError(t, err)
	return log
}

func newHTTPClient(t *testing.T, serverURL, token string) *HTTPClient {
	t.Helper()

	sessions := &fakeSessionStore{}
	if token != "" {
		sessions.ses = &store.Session{Token: token, UserID: 1, Email: "residente@test.com"}
	}
	return NewHTTPClient(serverURL, sessions, testLogger(t))
}

func TestGetAreasComunes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/areas-comunes/", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"nombre":"Palapa","capacidad":20}]`))
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "tok-123")
	areas, err := c.GetAreasComunes(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Palapa", areas[0].Nombre)
}

func TestUnauthorizedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "expired")
	_, err := c.GetPanelResidente(context.Background())
	require.Error(t, err)

	var appErr *errors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "Could not validate credentials", appErr.Message)
}

func TestBackendDetailPassedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"La reserva no puede exceder 24 horas"}`))
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "tok")
	_, err := c.CrearReservaVisita(context.Background(), &domain.ReservaVisitaCreate{LugarVisitaID: 1})
	require.Error(t, err)

	var appErr *errors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Equal(t, "La reserva no puede exceder 24 horas", appErr.GetUserMessage())
}

func TestMissingTokenNoRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "")
	_, err := c.GetAdeudos(context.Background())
	require.Error(t, err)

	var appErr *errors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	assert.False(t, called, "запрос не должен уходить в сеть без токена")
}

func TestRegistrarWithoutAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "")
	err := c.Registrar(context.Background(), &domain.RegistroRequest{
		Email:    "nuevo@test.com",
		Nombre:   "Nuevo",
		Apellido: "Residente",
		Provider: "google",
	})
	require.NoError(t, err)
}

func TestDisponibilidadQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservas-area-comun/disponibilidad", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("area_comun_id"))
		assert.NotEmpty(t, r.URL.Query().Get("periodo_inicio"))

		w.Write([]byte(`{"disponible":true,"reservas_existentes":0}`))
	}))
	defer srv.Close()

	c := newHTTPClient(t, srv.URL, "tok")
	disp, err := c.VerificarDisponibilidadAreaComun(context.Background(),
		2, testTime(t, "2026-03-15T10:00:00Z"), testTime(t, "2026-03-15T14:00:00Z"))
	require.NoError(t, err)
	assert.True(t, disp.Disponible)
}

func TestMeUsesExplicitToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))

		w.Write([]byte(`{"id":5,"email":"residente@test.com","is_admin":false,"is_active":true}`))
	}))
	defer srv.Close()

	// В хранилище другой токен, Me должен использовать переданный
	c := newHTTPClient(t, srv.URL, "stored-token")
	usuario, err := c.Me(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, 5, usuario.ID)
	assert.Equal(t, "residente@test.com", usuario.Email)
}
