package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/errors"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestValidator() *ReservaValidator {
	return NewReservaValidatorAt(func() time.Time { return testNow })
}

func TestValidateReservaAreaComun(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		areaID  int
		inicio  time.Time
		fin     time.Time
		wantMsg string
	}{
		{
			name:   "корректная форма",
			areaID: 1,
			inicio: testNow.Add(1 * time.Hour),
			fin:    testNow.Add(3 * time.Hour),
		},
		{
			name:    "не выбрана зона",
			areaID:  0,
			inicio:  testNow.Add(1 * time.Hour),
			fin:     testNow.Add(3 * time.Hour),
			wantMsg: "Por favor complete todos los campos",
		},
		{
			name:    "не указано начало",
			areaID:  1,
			fin:     testNow.Add(3 * time.Hour),
			wantMsg: "Por favor complete todos los campos",
		},
		{
			name:    "конец раньше начала",
			areaID:  1,
			inicio:  testNow.Add(3 * time.Hour),
			fin:     testNow.Add(1 * time.Hour),
			wantMsg: "La fecha de fin debe ser posterior a la fecha de inicio",
		},
		{
			name:    "конец равен началу",
			areaID:  1,
			inicio:  testNow.Add(1 * time.Hour),
			fin:     testNow.Add(1 * time.Hour),
			wantMsg: "La fecha de fin debe ser posterior a la fecha de inicio",
		},
		{
			name:    "начало в прошлом",
			areaID:  1,
			inicio:  testNow.Add(-1 * time.Hour),
			fin:     testNow.Add(1 * time.Hour),
			wantMsg: "No puede reservar fechas pasadas",
		},
		{
			// Правила применяются по порядку: при пустой форме сообщение
			// о полях выигрывает у сообщения о прошедших датах
			name:    "пустая форма с прошедшими датами",
			areaID:  0,
			inicio:  testNow.Add(-3 * time.Hour),
			fin:     testNow.Add(-1 * time.Hour),
			wantMsg: "Por favor complete todos los campos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateReservaAreaComun(tt.areaID, tt.inicio, tt.fin)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, errors.ErrValidation, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestValidateReservaVisitaDuracion(t *testing.T) {
	v := newTestValidator()
	inicio := testNow.Add(1 * time.Hour)

	tests := []struct {
		name    string
		fin     time.Time
		wantMsg string
	}{
		{"чуть меньше суток", inicio.Add(24*time.Hour - time.Minute), ""},
		{"ровно 24 часа допустимы", inicio.Add(24 * time.Hour), ""},
		{"24 часа и минута", inicio.Add(24*time.Hour + time.Minute), "La reserva no puede exceder 24 horas"},
		{"двое суток", inicio.Add(48 * time.Hour), "La reserva no puede exceder 24 horas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateReservaVisita(5, inicio, tt.fin)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestValidateReservaVisitaCamposObligatorios(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateReservaVisita(0, testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	require.NotNil(t, err)
	assert.Equal(t, "Por favor complete todos los campos obligatorios", err.Message)
}

func TestFechaOcupadaAreaComun(t *testing.T) {
	inicio := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	reservas := []domain.ReservaAreaComun{
		{ID: 1, PeriodoInicio: inicio, PeriodoFin: fin},
	}

	tests := []struct {
		name  string
		fecha time.Time
		want  bool
	}{
		{"до начала", inicio.Add(-time.Minute), false},
		{"граница начала включительно", inicio, true},
		{"внутри периода", inicio.Add(2 * time.Hour), true},
		{"граница конца включительно", fin, true},
		{"после конца", fin.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FechaOcupadaAreaComun(tt.fecha, reservas))
		})
	}

	assert.False(t, FechaOcupadaAreaComun(inicio, nil))
}
