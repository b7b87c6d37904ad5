package domain

import "time"

// Имена JSON-полей совпадают с контрактом бэкенда Сан Агустин (FastAPI),
// поэтому поля на испанском.

// Departamento представляет департамент (квартиру) резидента
type Departamento struct {
	ID        int    `json:"id"`
	Numero    string `json:"numero"`
	UsuarioID int    `json:"usuario_id,omitempty"`
}

// Estacionamiento представляет парковочное место резидента
type Estacionamiento struct {
	ID             int    `json:"id"`
	Numero         string `json:"numero"`
	Placa          string `json:"placa,omitempty"`
	ModeloAuto     string `json:"modelo_auto,omitempty"`
	ColorAuto      string `json:"color_auto,omitempty"`
	EsVisita       bool   `json:"es_visita"`
	DepartamentoID int    `json:"departamento_id"`
}

// EstacionamientoUpdate представляет изменяемые поля парковочного места
type EstacionamientoUpdate struct {
	Placa      string `json:"placa,omitempty"`
	ModeloAuto string `json:"modelo_auto,omitempty"`
	ColorAuto  string `json:"color_auto,omitempty"`
}

// Adeudo представляет задолженность департамента. Только для чтения
type Adeudo struct {
	ID               int     `json:"id"`
	DepartamentoID   int     `json:"departamento_id"`
	Monto            float64 `json:"monto"`
	Descripcion      string  `json:"descripcion"`
	FechaVencimiento string  `json:"fecha_vencimiento"`
	FechaCreacion    string  `json:"fecha_creacion"`
	Pagado           bool    `json:"pagado"`
}

// PanelResidente агрегирует данные панели резидента
type PanelResidente struct {
	Departamento      Departamento     `json:"departamento"`
	Estacionamiento   *Estacionamiento `json:"estacionamiento,omitempty"`
	AdeudosPendientes []Adeudo         `json:"adeudos_pendientes"`
	TotalAdeudos      float64          `json:"total_adeudos"`
	PuedeReservar     bool             `json:"puede_reservar"`
}

// AreaComun представляет общую зону комплекса
type AreaComun struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
	Capacidad   int    `json:"capacidad"`
}

// ReservaAreaComun представляет бронирование общей зоны.
// После создания запись не изменяется клиентом, сервер владеет состоянием
type ReservaAreaComun struct {
	ID             int       `json:"id"`
	AreaComunID    int       `json:"area_comun_id"`
	DepartamentoID int       `json:"departamento_id"`
	PeriodoInicio  time.Time `json:"periodo_inicio"`
	PeriodoFin     time.Time `json:"periodo_fin"`
	Estado         string    `json:"estado"`
	AreaComun      AreaComun `json:"area_comun"`
}

// ReservaAreaComunCreate представляет запрос на бронирование общей зоны
type ReservaAreaComunCreate struct {
	AreaComunID   int       `json:"area_comun_id"`
	PeriodoInicio time.Time `json:"periodo_inicio"`
	PeriodoFin    time.Time `json:"periodo_fin"`
}

// LugarVisita представляет гостевое парковочное место
type LugarVisita struct {
	ID          int    `json:"id"`
	Numero      string `json:"numero"`
	Descripcion string `json:"descripcion"`
	Capacidad   int    `json:"capacidad"`
}

// ReservaVisita представляет бронирование гостевого места
type ReservaVisita struct {
	ID             int         `json:"id"`
	LugarVisitaID  int         `json:"lugar_visita_id"`
	DepartamentoID int         `json:"departamento_id"`
	PlacaVisita    string      `json:"placa_visita,omitempty"`
	PeriodoInicio  time.Time   `json:"periodo_inicio"`
	PeriodoFin     time.Time   `json:"periodo_fin"`
	Estado         string      `json:"estado"`
	LugarVisita    LugarVisita `json:"lugar_visita"`
}

// ReservaVisitaCreate представляет запрос на бронирование гостевого места
type ReservaVisitaCreate struct {
	LugarVisitaID int       `json:"lugar_visita_id"`
	PlacaVisita   string    `json:"placa_visita,omitempty"`
	PeriodoInicio time.Time `json:"periodo_inicio"`
	PeriodoFin    time.Time `json:"periodo_fin"`
}

// Disponibilidad представляет ответ проверки доступности периода
type Disponibilidad struct {
	Disponible        bool `json:"disponible"`
	ReservasExistentes int `json:"reservas_existentes"`
}

// Usuario представляет учетную запись, возвращаемую /auth/me
type Usuario struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Provider string `json:"provider"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

// RegistroPendiente представляет заявку на регистрацию, ожидающую одобрения
type RegistroPendiente struct {
	ID               int    `json:"id"`
	Email            string `json:"email"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Provider         string `json:"provider"`
	Telefono         string `json:"telefono,omitempty"`
	Direccion        string `json:"direccion,omitempty"`
	Departamento     string `json:"departamento,omitempty"`
	NotasAdicionales string `json:"notas_adicionales,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// RegistroRequest представляет тело запроса самостоятельной регистрации
type RegistroRequest struct {
	Email            string `json:"email"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Provider         string `json:"provider"`
	ProviderID       string `json:"provider_id"`
	Telefono         string `json:"telefono,omitempty"`
	Direccion        string `json:"direccion,omitempty"`
	Departamento     string `json:"departamento,omitempty"`
	NotasAdicionales string `json:"notas_adicionales,omitempty"`
}

// Статусы бронирований, приходящие с бэкенда
const (
	EstadoActiva = "activa"
)
