package client

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/errors"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// DemoDelay задержка демо-ответов, имитирует сетевой вызов
const DemoDelay = 500 * time.Millisecond

// DemoClient отдает консервированные данные без обращения к сети.
// Созданные бронирования живут в памяти процесса: после перезапуска
// демо возвращается к исходному состоянию
type DemoClient struct {
	mu     sync.Mutex
	delay  time.Duration
	rng    *rand.Rand
	logger logger.Logger

	reservasAreaComun []domain.ReservaAreaComun
	reservasVisita    []domain.ReservaVisita
	pendientes        []domain.RegistroPendiente
}

// NewDemoClient создает демо-клиент со стандартной задержкой
func NewDemoClient(log logger.Logger) *DemoClient {
	return NewDemoClientWithDelay(log, DemoDelay)
}

// NewDemoClientWithDelay создает демо-клиент с заданной задержкой
func NewDemoClientWithDelay(log logger.Logger, delay time.Duration) *DemoClient {
	return &DemoClient{
		delay:  delay,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log,
		pendientes: []domain.RegistroPendiente{
			{
				ID:           1,
				Email:        "nuevo.residente@test.com",
				Nombre:       "Carlos",
				Apellido:     "Ramírez",
				Provider:     "google",
				Departamento: "203",
				CreatedAt:    "2026-01-15T10:00:00Z",
			},
			{
				ID:           2,
				Email:        "maria.lopez@test.com",
				Nombre:       "María",
				Apellido:     "López",
				Provider:     "google",
				Departamento: "305",
				CreatedAt:    "2026-01-18T16:30:00Z",
			},
		},
	}
}

// simulateLatency ждет демо-задержку или отмену контекста
func (c *DemoClient) simulateLatency(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), errors.ErrUnavailable, "операция отменена")
	case <-time.After(c.delay):
		return nil
	}
}

// nextID выдает идентификатор демо-записи
func (c *DemoClient) nextID() int {
	return c.rng.Intn(1000)
}

// GetPanelResidente возвращает демо-панель резидента
func (c *DemoClient) GetPanelResidente(ctx context.Context) (*domain.PanelResidente, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	return &domain.PanelResidente{
		Departamento: domain.Departamento{ID: 1, Numero: "101"},
		Estacionamiento: &domain.Estacionamiento{
			ID:             1,
			Numero:         "E1",
			Placa:          "ABC-123",
			ModeloAuto:     "Toyota Corolla",
			ColorAuto:      "Blanco",
			DepartamentoID: 1,
		},
		AdeudosPendientes: c.demoAdeudos(),
		TotalAdeudos:      1500,
		PuedeReservar:     false,
	}, nil
}

func (c *DemoClient) demoAdeudos() []domain.Adeudo {
	return []domain.Adeudo{
		{
			ID:               1,
			DepartamentoID:   1,
			Monto:            1500,
			Descripcion:      "Mantenimiento mensual",
			FechaVencimiento: "2026-02-01",
			FechaCreacion:    "2026-01-01",
			Pagado:           false,
		},
	}
}

// GetAreasComunes возвращает демо-список общих зон
func (c *DemoClient) GetAreasComunes(ctx context.Context) ([]domain.AreaComun, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	return []domain.AreaComun{
		{ID: 1, Nombre: "Palapa", Descripcion: "Palapa con asadores", Ubicacion: "Jardín central", Capacidad: 20},
		{ID: 2, Nombre: "Sala de eventos", Descripcion: "Salón techado para eventos", Ubicacion: "Edificio A", Capacidad: 50},
		{ID: 3, Nombre: "Gimnasio", Descripcion: "Gimnasio equipado", Ubicacion: "Edificio B", Capacidad: 15},
	}, nil
}

// VerificarDisponibilidadAreaComun в демо-режиме всегда сообщает о доступности
func (c *DemoClient) VerificarDisponibilidadAreaComun(ctx context.Context, areaComunID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return &domain.Disponibilidad{Disponible: true, ReservasExistentes: 0}, nil
}

// CrearReservaAreaComun создает демо-бронирование общей зоны в памяти
func (c *DemoClient) CrearReservaAreaComun(ctx context.Context, req *domain.ReservaAreaComunCreate) (*domain.ReservaAreaComun, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	reserva := domain.ReservaAreaComun{
		ID:             c.nextID(),
		AreaComunID:    req.AreaComunID,
		DepartamentoID: 1,
		PeriodoInicio:  req.PeriodoInicio,
		PeriodoFin:     req.PeriodoFin,
		Estado:         domain.EstadoActiva,
	}
	c.reservasAreaComun = append(c.reservasAreaComun, reserva)

	c.logger.Debug("создано демо-бронирование общей зоны", logger.Int("id", reserva.ID))
	return &reserva, nil
}

// GetReservasAreaComunUsuario возвращает демо-бронирования, созданные в этой сессии
func (c *DemoClient) GetReservasAreaComunUsuario(ctx context.Context) ([]domain.ReservaAreaComun, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ReservaAreaComun, len(c.reservasAreaComun))
	copy(out, c.reservasAreaComun)
	return out, nil
}

// GetLugaresVisita возвращает демо-список гостевых мест
func (c *DemoClient) GetLugaresVisita(ctx context.Context) ([]domain.LugarVisita, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	return []domain.LugarVisita{
		{ID: 1, Numero: "V1", Descripcion: "Lugar de visita 1", Capacidad: 1},
		{ID: 2, Numero: "V2", Descripcion: "Lugar de visita 2", Capacidad: 1},
	}, nil
}

// VerificarDisponibilidadLugarVisita в демо-режиме всегда сообщает о доступности
func (c *DemoClient) VerificarDisponibilidadLugarVisita(ctx context.Context, lugarVisitaID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return &domain.Disponibilidad{Disponible: true, ReservasExistentes: 0}, nil
}

// CrearReservaVisita создает демо-бронирование гостевого места в памяти
func (c *DemoClient) CrearReservaVisita(ctx context.Context, req *domain.ReservaVisitaCreate) (*domain.ReservaVisita, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	reserva := domain.ReservaVisita{
		ID:             c.nextID(),
		LugarVisitaID:  req.LugarVisitaID,
		DepartamentoID: 1,
		PlacaVisita:    req.PlacaVisita,
		PeriodoInicio:  req.PeriodoInicio,
		PeriodoFin:     req.PeriodoFin,
		Estado:         domain.EstadoActiva,
	}
	c.reservasVisita = append(c.reservasVisita, reserva)

	c.logger.Debug("создано демо-бронирование гостевого места", logger.Int("id", reserva.ID))
	return &reserva, nil
}

// GetReservasVisitaUsuario возвращает демо-бронирования, созданные в этой сессии
func (c *DemoClient) GetReservasVisitaUsuario(ctx context.Context) ([]domain.ReservaVisita, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ReservaVisita, len(c.reservasVisita))
	copy(out, c.reservasVisita)
	return out, nil
}

// ActualizarEstacionamiento возвращает обновленное демо-место
func (c *DemoClient) ActualizarEstacionamiento(ctx context.Context, id int, upd *domain.EstacionamientoUpdate) (*domain.Estacionamiento, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	est := &domain.Estacionamiento{
		ID:             id,
		Numero:         "E1",
		Placa:          "ABC-123",
		ModeloAuto:     "Toyota Corolla",
		ColorAuto:      "Blanco",
		DepartamentoID: 1,
	}
	if upd.Placa != "" {
		est.Placa = upd.Placa
	}
	if upd.ModeloAuto != "" {
		est.ModeloAuto = upd.ModeloAuto
	}
	if upd.ColorAuto != "" {
		est.ColorAuto = upd.ColorAuto
	}
	return est, nil
}

// GetAdeudos возвращает демо-задолженности
func (c *DemoClient) GetAdeudos(ctx context.Context) ([]domain.Adeudo, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return c.demoAdeudos(), nil
}

// GetAdeudosPorDepartamento возвращает демо-задолженности департамента
func (c *DemoClient) GetAdeudosPorDepartamento(ctx context.Context, departamentoID int) ([]domain.Adeudo, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return c.demoAdeudos(), nil
}

// Registrar в демо-режиме принимает заявку без проверок
func (c *DemoClient) Registrar(ctx context.Context, req *domain.RegistroRequest) error {
	return c.simulateLatency(ctx)
}

// GetPendingRegistrations возвращает демо-заявки на регистрацию
func (c *DemoClient) GetPendingRegistrations(ctx context.Context) ([]domain.RegistroPendiente, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.RegistroPendiente, len(c.pendientes))
	copy(out, c.pendientes)
	return out, nil
}

// ApproveRegistration одобряет демо-заявку, удаляя ее из списка
func (c *DemoClient) ApproveRegistration(ctx context.Context, id int) error {
	if err := c.simulateLatency(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.pendientes {
		if p.ID == id {
			c.pendientes = append(c.pendientes[:i], c.pendientes[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrNotFound, "Solicitud de registro no encontrada")
}

// Me возвращает демо-учетную запись для зарезервированных токенов
func (c *DemoClient) Me(ctx context.Context, token string) (*domain.Usuario, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	switch token {
	case auth.DemoTokenResidente:
		return &domain.Usuario{ID: 1, Email: "residente@test.com", Nombre: "Demo", Apellido: "Residente", Provider: "demo", IsActive: true}, nil
	case auth.DemoTokenAdmin:
		return &domain.Usuario{ID: 2, Email: "admin@test.com", Nombre: "Demo", Apellido: "Admin", Provider: "demo", IsActive: true, IsAdmin: true}, nil
	}
	return nil, errors.New(errors.ErrUnauthorized, "Sesión inválida, inicie sesión nuevamente")
}
