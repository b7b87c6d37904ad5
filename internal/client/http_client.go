package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/store"
	"github.com/jesushl/SanAgustin/pkg/errors"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// HTTPClient выполняет запросы к бэкенду Сан Агустин.
// Токен берется из хранилища сессии при каждом запросе
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	sessions   store.SessionStore
	logger     logger.Logger
	tracer     trace.Tracer
}

// NewHTTPClient создает новый клиент бэкенда
func NewHTTPClient(baseURL string, sessions store.SessionStore, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessions: sessions,
		logger:   log,
		tracer:   otel.Tracer("sanagustin-http-client"),
	}
}

// fastAPIError повторяет формат ошибок бэкенда: текст приходит в поле detail
type fastAPIError struct {
	Detail string `json:"detail"`
}

// do выполняет запрос и декодирует ответ в out (если out не nil).
// Ошибки бэкенда нормализуются в *errors.Error, текст из detail
// передается без изменений
func (c *HTTPClient) do(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}, token string) error {
	ctx, span := c.tracer.Start(ctx, operation)
	defer span.End()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "ошибка кодирования запроса")
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "ошибка создания HTTP запроса")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "SanAgustin-CLI/1.0")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnavailable, "ошибка выполнения HTTP запроса")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr fastAPIError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil {
			apiErr.Detail = ""
		}
		c.logger.Debug("бэкенд вернул ошибку",
			logger.String("operation", operation),
			logger.Int("status", resp.StatusCode),
			logger.String("detail", apiErr.Detail))
		return errors.FromHTTPStatus(resp.StatusCode, apiErr.Detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "ошибка декодирования ответа")
		}
	}

	return nil
}

// authenticatedToken возвращает токен текущей сессии
func (c *HTTPClient) authenticatedToken() (string, error) {
	token := c.sessions.GetToken()
	if token == "" {
		return "", errors.New(errors.ErrUnauthorized, "токен авторизации не найден")
	}
	return token, nil
}

// GetPanelResidente получает сводную панель резидента
func (c *HTTPClient) GetPanelResidente(ctx context.Context) (*domain.PanelResidente, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var panel domain.PanelResidente
	if err := c.do(ctx, "portal.GetPanelResidente", http.MethodGet, "/panel-residente/", nil, nil, &panel, token); err != nil {
		return nil, err
	}
	return &panel, nil
}

// GetAreasComunes получает список общих зон
func (c *HTTPClient) GetAreasComunes(ctx context.Context) ([]domain.AreaComun, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var areas []domain.AreaComun
	if err := c.do(ctx, "portal.GetAreasComunes", http.MethodGet, "/areas-comunes/", nil, nil, &areas, token); err != nil {
		return nil, err
	}
	return areas, nil
}

// VerificarDisponibilidadAreaComun проверяет доступность общей зоны на период
func (c *HTTPClient) VerificarDisponibilidadAreaComun(ctx context.Context, areaComunID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("area_comun_id", strconv.Itoa(areaComunID))
	query.Set("periodo_inicio", inicio.Format(time.RFC3339))
	query.Set("periodo_fin", fin.Format(time.RFC3339))

	var disp domain.Disponibilidad
	if err := c.do(ctx, "portal.VerificarDisponibilidadAreaComun", http.MethodGet, "/reservas-area-comun/disponibilidad", query, nil, &disp, token); err != nil {
		return nil, err
	}
	return &disp, nil
}

// CrearReservaAreaComun создает бронирование общей зоны
func (c *HTTPClient) CrearReservaAreaComun(ctx context.Context, req *domain.ReservaAreaComunCreate) (*domain.ReservaAreaComun, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var reserva domain.ReservaAreaComun
	if err := c.do(ctx, "portal.CrearReservaAreaComun", http.MethodPost, "/reservas-area-comun/", nil, req, &reserva, token); err != nil {
		return nil, err
	}
	return &reserva, nil
}

// GetReservasAreaComunUsuario получает бронирования общих зон текущего пользователя
func (c *HTTPClient) GetReservasAreaComunUsuario(ctx context.Context) ([]domain.ReservaAreaComun, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var reservas []domain.ReservaAreaComun
	if err := c.do(ctx, "portal.GetReservasAreaComunUsuario", http.MethodGet, "/reservas-area-comun/usuario", nil, nil, &reservas, token); err != nil {
		return nil, err
	}
	return reservas, nil
}

// GetLugaresVisita получает список гостевых мест
func (c *HTTPClient) GetLugaresVisita(ctx context.Context) ([]domain.LugarVisita, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var lugares []domain.LugarVisita
	if err := c.do(ctx, "portal.GetLugaresVisita", http.MethodGet, "/lugares-visita/", nil, nil, &lugares, token); err != nil {
		return nil, err
	}
	return lugares, nil
}

// VerificarDisponibilidadLugarVisita проверяет доступность гостевого места на период
func (c *HTTPClient) VerificarDisponibilidadLugarVisita(ctx context.Context, lugarVisitaID int, inicio, fin time.Time) (*domain.Disponibilidad, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lugar_visita_id", strconv.Itoa(lugarVisitaID))
	query.Set("periodo_inicio", inicio.Format(time.RFC3339))
	query.Set("periodo_fin", fin.Format(time.RFC3339))

	var disp domain.Disponibilidad
	if err := c.do(ctx, "portal.VerificarDisponibilidadLugarVisita", http.MethodGet, "/reservas-visita/disponibilidad", query, nil, &disp, token); err != nil {
		return nil, err
	}
	return &disp, nil
}

// CrearReservaVisita создает бронирование гостевого места
func (c *HTTPClient) CrearReservaVisita(ctx context.Context, req *domain.ReservaVisitaCreate) (*domain.ReservaVisita, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var reserva domain.ReservaVisita
	if err := c.do(ctx, "portal.CrearReservaVisita", http.MethodPost, "/reservas-visita/", nil, req, &reserva, token); err != nil {
		return nil, err
	}
	return &reserva, nil
}

// GetReservasVisitaUsuario получает гостевые бронирования текущего пользователя
func (c *HTTPClient) GetReservasVisitaUsuario(ctx context.Context) ([]domain.ReservaVisita, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var reservas []domain.ReservaVisita
	if err := c.do(ctx, "portal.GetReservasVisitaUsuario", http.MethodGet, "/reservas-visita/usuario", nil, nil, &reservas, token); err != nil {
		return nil, err
	}
	return reservas, nil
}

// ActualizarEstacionamiento обновляет данные автомобиля на парковочном месте
func (c *HTTPClient) ActualizarEstacionamiento(ctx context.Context, id int, upd *domain.EstacionamientoUpdate) (*domain.Estacionamiento, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var est domain.Estacionamiento
	path := fmt.Sprintf("/estacionamiento/%d", id)
	if err := c.do(ctx, "portal.ActualizarEstacionamiento", http.MethodPut, path, nil, upd, &est, token); err != nil {
		return nil, err
	}
	return &est, nil
}

// GetAdeudos получает все задолженности (административный доступ)
func (c *HTTPClient) GetAdeudos(ctx context.Context) ([]domain.Adeudo, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var adeudos []domain.Adeudo
	if err := c.do(ctx, "portal.GetAdeudos", http.MethodGet, "/adeudos/", nil, nil, &adeudos, token); err != nil {
		return nil, err
	}
	return adeudos, nil
}

// GetAdeudosPorDepartamento получает задолженности департамента
func (c *HTTPClient) GetAdeudosPorDepartamento(ctx context.Context, departamentoID int) ([]domain.Adeudo, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var adeudos []domain.Adeudo
	path := fmt.Sprintf("/adeudos/%d", departamentoID)
	if err := c.do(ctx, "portal.GetAdeudosPorDepartamento", http.MethodGet, path, nil, nil, &adeudos, token); err != nil {
		return nil, err
	}
	return adeudos, nil
}

// Registrar отправляет заявку на регистрацию. Не требует авторизации
func (c *HTTPClient) Registrar(ctx context.Context, req *domain.RegistroRequest) error {
	return c.do(ctx, "portal.Registrar", http.MethodPost, "/auth/register", nil, req, nil, "")
}

// GetPendingRegistrations получает заявки, ожидающие одобрения (только администратор)
func (c *HTTPClient) GetPendingRegistrations(ctx context.Context) ([]domain.RegistroPendiente, error) {
	token, err := c.authenticatedToken()
	if err != nil {
		return nil, err
	}

	var pendientes []domain.RegistroPendiente
	if err := c.do(ctx, "portal.GetPendingRegistrations", http.MethodGet, "/auth/pending-registrations", nil, nil, &pendientes, token); err != nil {
		return nil, err
	}
	return pendientes, nil
}

// ApproveRegistration одобряет заявку на регистрацию (только администратор)
func (c *HTTPClient) ApproveRegistration(ctx context.Context, id int) error {
	token, err := c.authenticatedToken()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/auth/approve-registration/%d", id)
	return c.do(ctx, "portal.ApproveRegistration", http.MethodPost, path, nil, nil, nil, token)
}

// Me получает учетную запись по токену. Токен передается явно,
// потому что вызов используется при входе, до сохранения сессии
func (c *HTTPClient) Me(ctx context.Context, token string) (*domain.Usuario, error) {
	if token == "" {
		return nil, errors.New(errors.ErrUnauthorized, "токен авторизации не найден")
	}

	var usuario domain.Usuario
	if err := c.do(ctx, "portal.Me", http.MethodGet, "/auth/me", nil, nil, &usuario, token); err != nil {
		return nil, err
	}
	return &usuario, nil
}
