package validation

import (
	"time"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/errors"
)

// MaxDuracionVisita максимальная длительность гостевого бронирования.
// Граница включительная: ровно 24 часа допустимы
const MaxDuracionVisita = 24 * time.Hour

// ReservaValidator проверяет формы бронирования перед отправкой.
// Правила применяются по порядку, первая нарушенная останавливает проверку
type ReservaValidator struct {
	now func() time.Time
}

// NewReservaValidator создает новый валидатор бронирований
func NewReservaValidator() *ReservaValidator {
	return &ReservaValidator{now: time.Now}
}

// NewReservaValidatorAt создает валидатор с фиксированным источником времени
func NewReservaValidatorAt(now func() time.Time) *ReservaValidator {
	return &ReservaValidator{now: now}
}

// ValidateReservaAreaComun проверяет форму бронирования общей зоны
func (v *ReservaValidator) ValidateReservaAreaComun(areaComunID int, inicio, fin time.Time) *errors.Error {
	if areaComunID == 0 || inicio.IsZero() || fin.IsZero() {
		return errors.New(errors.ErrValidation, "Por favor complete todos los campos")
	}

	if err := v.validatePeriodo(inicio, fin); err != nil {
		return err
	}

	return nil
}

// ValidateReservaVisita проверяет форму бронирования гостевого места.
// Номерной знак необязателен и здесь не проверяется
func (v *ReservaValidator) ValidateReservaVisita(lugarVisitaID int, inicio, fin time.Time) *errors.Error {
	if lugarVisitaID == 0 || inicio.IsZero() || fin.IsZero() {
		return errors.New(errors.ErrValidation, "Por favor complete todos los campos obligatorios")
	}

	if err := v.validatePeriodo(inicio, fin); err != nil {
		return err
	}

	if fin.Sub(inicio) > MaxDuracionVisita {
		return errors.New(errors.ErrValidation, "La reserva no puede exceder 24 horas")
	}

	return nil
}

// validatePeriodo проверяет общие правила периода бронирования
func (v *ReservaValidator) validatePeriodo(inicio, fin time.Time) *errors.Error {
	if !fin.After(inicio) {
		return errors.New(errors.ErrValidation, "La fecha de fin debe ser posterior a la fecha de inicio")
	}

	if inicio.Before(v.now()) {
		return errors.New(errors.ErrValidation, "No puede reservar fechas pasadas")
	}

	return nil
}

// FechaOcupadaAreaComun сообщает, попадает ли дата в одно из существующих
// бронирований пользователя. Сравнение включительное с обеих сторон.
// Проверяются только собственные бронирования, пересечения с чужими
// отлавливает сервер
func FechaOcupadaAreaComun(fecha time.Time, reservas []domain.ReservaAreaComun) bool {
	for _, r := range reservas {
		if fechaDentroPeriodo(fecha, r.PeriodoInicio, r.PeriodoFin) {
			return true
		}
	}
	return false
}

// FechaOcupadaVisita сообщает, попадает ли дата в одно из существующих
// гостевых бронирований пользователя
func FechaOcupadaVisita(fecha time.Time, reservas []domain.ReservaVisita) bool {
	for _, r := range reservas {
		if fechaDentroPeriodo(fecha, r.PeriodoInicio, r.PeriodoFin) {
			return true
		}
	}
	return false
}

func fechaDentroPeriodo(fecha, inicio, fin time.Time) bool {
	return !fecha.Before(inicio) && !fecha.After(fin)
}
