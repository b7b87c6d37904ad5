package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/errors"
)

func newDemoClient(t *testing.T) *DemoClient {
	t.Helper()

	// Нулевая задержка, чтобы тесты не ждали
	return NewDemoClientWithDelay(testLogger(t), 0)
}

func TestDemoAreasComunes(t *testing.T) {
	c := newDemoClient(t)

	areas, err := c.GetAreasComunes(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, "Palapa", areas[0].Nombre)
	assert.Equal(t, "Sala de eventos", areas[1].Nombre)
	assert.Equal(t, "Gimnasio", areas[2].Nombre)
}

func TestDemoPanelResidente(t *testing.T) {
	c := newDemoClient(t)

	panel, err := c.GetPanelResidente(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "101", panel.Departamento.Numero)
	require.NotNil(t, panel.Estacionamiento)
	assert.Equal(t, "ABC-123", panel.Estacionamiento.Placa)
	require.Len(t, panel.AdeudosPendientes, 1)
	assert.Equal(t, "Mantenimiento mensual", panel.AdeudosPendientes[0].Descripcion)
	assert.Equal(t, float64(1500), panel.TotalAdeudos)
}

func TestDemoCrearReservaAreaComun(t *testing.T) {
	c := newDemoClient(t)
	ctx := context.Background()

	inicio := time.Now().Add(time.Hour)
	reserva, err := c.CrearReservaAreaComun(ctx, &domain.ReservaAreaComunCreate{
		AreaComunID:   1,
		PeriodoInicio: inicio,
		PeriodoFin:    inicio.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Less(t, reserva.ID, 1000)
	assert.Equal(t, domain.EstadoActiva, reserva.Estado)

	// Созданное бронирование появляется в списке пользователя
	reservas, err := c.GetReservasAreaComunUsuario(ctx)
	require.NoError(t, err)
	require.Len(t, reservas, 1)
	assert.Equal(t, reserva.ID, reservas[0].ID)
}

func TestDemoDisponibilidadSiempreLibre(t *testing.T) {
	c := newDemoClient(t)

	disp, err := c.VerificarDisponibilidadAreaComun(context.Background(), 1, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, disp.Disponible)
	assert.Equal(t, 0, disp.ReservasExistentes)
}

func TestDemoApproveRegistration(t *testing.T) {
	c := newDemoClient(t)
	ctx := context.Background()

	antes, err := c.GetPendingRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, antes, 2)

	require.NoError(t, c.ApproveRegistration(ctx, antes[0].ID))

	despues, err := c.GetPendingRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, despues, 1)
	assert.NotEqual(t, antes[0].ID, despues[0].ID)

	// Повторное одобрение той же заявки сообщает об отсутствии
	err = c.ApproveRegistration(ctx, antes[0].ID)
	require.Error(t, err)

	var appErr *errors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestDemoMe(t *testing.T) {
	c := newDemoClient(t)
	ctx := context.Background()

	residente, err := c.Me(ctx, auth.DemoTokenResidente)
	require.NoError(t, err)
	assert.Equal(t, 1, residente.ID)
	assert.False(t, residente.IsAdmin)

	admin, err := c.Me(ctx, auth.DemoTokenAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, admin.ID)
	assert.True(t, admin.IsAdmin)

	_, err = c.Me(ctx, "токен-не-демо")
	require.Error(t, err)
}

func TestDemoDelayCancelable(t *testing.T) {
	c := NewDemoClientWithDelay(testLogger(t), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetAreasComunes(ctx)
	require.Error(t, err)
}
