package client

import (
	"context"
	"time"

	"github.com/jesushl/SanAgustin/internal/domain"
)

// PortalService определяет операции портала резидентов. Интерфейс
// реализуют живой HTTP-клиент, демо-клиент и диспетчер поверх них,
// поэтому команды не знают, откуда приходят данные
type PortalService interface {
	// Панель резидента
	GetPanelResidente(ctx context.Context) (*domain.PanelResidente, error)

	// Общие зоны
	GetAreasComunes(ctx context.Context) ([]domain.AreaComun, error)
	VerificarDisponibilidadAreaComun(ctx context.Context, areaComunID int, inicio, fin time.Time) (*domain.Disponibilidad, error)
	CrearReservaAreaComun(ctx context.Context, req *domain.ReservaAreaComunCreate) (*domain.ReservaAreaComun, error)
	GetReservasAreaComunUsuario(ctx context.Context) ([]domain.ReservaAreaComun, error)

	// Гостевые места
	GetLugaresVisita(ctx context.Context) ([]domain.LugarVisita, error)
	VerificarDisponibilidadLugarVisita(ctx context.Context, lugarVisitaID int, inicio, fin time.Time) (*domain.Disponibilidad, error)
	CrearReservaVisita(ctx context.Context, req *domain.ReservaVisitaCreate) (*domain.ReservaVisita, error)
	GetReservasVisitaUsuario(ctx context.Context) ([]domain.ReservaVisita, error)

	// Парковка
	ActualizarEstacionamiento(ctx context.Context, id int, upd *domain.EstacionamientoUpdate) (*domain.Estacionamiento, error)

	// Задолженности
	GetAdeudos(ctx context.Context) ([]domain.Adeudo, error)
	GetAdeudosPorDepartamento(ctx context.Context, departamentoID int) ([]domain.Adeudo, error)

	// Учетные записи
	Registrar(ctx context.Context, req *domain.RegistroRequest) error
	GetPendingRegistrations(ctx context.Context) ([]domain.RegistroPendiente, error)
	ApproveRegistration(ctx context.Context, id int) error
	Me(ctx context.Context, token string) (*domain.Usuario, error)
}
