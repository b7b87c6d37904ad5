package client

import (
	"context"
	"time"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/domain"
)

// Dispatcher выбирает между живым и демо-клиентом по текущей сессии.
// Выбор делается один раз на вызов, команды работают только с диспетчером
type Dispatcher struct {
	manager *auth.Manager
	live    PortalService
	demo    PortalService
}

// NewDispatcher создает диспетчер поверх живого и демо-клиентов
func NewDispatcher(manager *auth.Manager, live, demo PortalService) *Dispatcher {
	return &Dispatcher{
		manager: manager,
		live:    live,
		demo:    demo,
	}
}

// backend возвращает клиент для текущей сессии
func (d *Dispatcher) backend() PortalService {
	if d.manager.IsDemoSession() {
		return d.demo
	}
	return d.live
}

func (d *Dispatcher) GetPanelResidente(ctx context.Context) (*domain.PanelResidente, error) {
	return d.backend().GetPanelResidente(ctx)
}

func (d *Dispatcher) GetAreasComunes(ctx context.Context) ([]domain.AreaComun, error) {
	return d.backend().GetAreasComunes(ctx)
}

func (d *Dispatcher) VerificarDisponibilidadAreaComun(ctx context.Context, areaComunID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	return d.backend().VerificarDisponibilidadAreaComun(ctx, areaComunID, inicio, fin)
}

func (d *Dispatcher) CrearReservaAreaComun(ctx context.Context, req *domain.ReservaAreaComunCreate) (*domain.ReservaAreaComun, error) {
	return d.backend().CrearReservaAreaComun(ctx, req)
}

func (d *Dispatcher) GetReservasAreaComunUsuario(ctx context.Context) ([]domain.ReservaAreaComun, error) {
	return d.backend().GetReservasAreaComunUsuario(ctx)
}

func (d *Dispatcher) GetLugaresVisita(ctx context.Context) ([]domain.LugarVisita, error) {
	return d.backend().GetLugaresVisita(ctx)
}

func (d *Dispatcher) VerificarDisponibilidadLugarVisita(ctx context.Context, lugarVisitaID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	return d.backend().VerificarDisponibilidadLugarVisita(ctx, lugarVisitaID, inicio, fin)
}

func (d *Dispatcher) CrearReservaVisita(ctx context.Context, req *domain.ReservaVisitaCreate) (*domain.ReservaVisita, error) {
	return d.backend().CrearReservaVisita(ctx, req)
}

func (d *Dispatcher) GetReservasVisitaUsuario(ctx context.Context) ([]domain.ReservaVisita, error) {
	return d.backend().GetReservasVisitaUsuario(ctx)
}

func (d *Dispatcher) ActualizarEstacionamiento(ctx context.Context, id int, upd *domain.EstacionamientoUpdate) (*domain.Estacionamiento, error) {
	return d.backend().ActualizarEstacionamiento(ctx, id, upd)
}

func (d *Dispatcher) GetAdeudos(ctx context.Context) ([]domain.Adeudo, error) {
	return d.backend().GetAdeudos(ctx)
}

func (d *Dispatcher) GetAdeudosPorDepartamento(ctx context.Context, departamentoID int) ([]domain.Adeudo, error) {
	return d.backend().GetAdeudosPorDepartamento(ctx, departamentoID)
}

func (d *Dispatcher) Registrar(ctx context.Context, req *domain.RegistroRequest) error {
	return d.backend().Registrar(ctx, req)
}

func (d *Dispatcher) GetPendingRegistrations(ctx context.Context) ([]domain.RegistroPendiente, error) {
	return d.backend().GetPendingRegistrations(ctx)
}

func (d *Dispatcher) ApproveRegistration(ctx context.Context, id int) error {
	return d.backend().ApproveRegistration(ctx, id)
}

// Me выбирает клиент по самому токену, а не по сохраненной сессии:
// при входе сессии еще нет
func (d *Dispatcher) Me(ctx context.Context, token string) (*domain.Usuario, error) {
	if token == auth.DemoTokenResidente || token == auth.DemoTokenAdmin {
		return d.demo.Me(ctx, token)
	}
	return d.live.Me(ctx, token)
}
