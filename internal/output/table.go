package output

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jesushl/SanAgustin/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// TableData представляет данные для табличного вывода
type TableData struct {
	Headers []string
	Rows    [][]string
}

// NewTableData создает новые табличные данные
func NewTableData(headers ...string) *TableData {
	return &TableData{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow добавляет строку
func (td *TableData) AddRow(cells ...string) {
	td.Rows = append(td.Rows, cells)
}

// String возвращает строковое представление таблицы
func (td *TableData) String() string {
	if len(td.Rows) == 0 {
		return "Sin registros"
	}

	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	if len(td.Headers) > 0 {
		fmt.Fprintln(w, strings.Join(td.Headers, "\t"))

		separators := make([]string, len(td.Headers))
		for i := range separators {
			separators[i] = strings.Repeat("-", len(td.Headers[i]))
		}
		fmt.Fprintln(w, strings.Join(separators, "\t"))
	}

	for _, row := range td.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
	return builder.String()
}

// CreateAreasComunesTable создает таблицу общих зон
func CreateAreasComunesTable(areas []domain.AreaComun) *TableData {
	table := NewTableData("ID", "NOMBRE", "UBICACIÓN", "CAPACIDAD")
	for _, a := range areas {
		table.AddRow(
			fmt.Sprintf("%d", a.ID),
			a.Nombre,
			a.Ubicacion,
			fmt.Sprintf("%d", a.Capacidad),
		)
	}
	return table
}

// CreateLugaresVisitaTable создает таблицу гостевых мест
func CreateLugaresVisitaTable(lugares []domain.LugarVisita) *TableData {
	table := NewTableData("ID", "NÚMERO", "DESCRIPCIÓN")
	for _, l := range lugares {
		table.AddRow(fmt.Sprintf("%d", l.ID), l.Numero, l.Descripcion)
	}
	return table
}

// CreateReservasAreaComunTable создает таблицу бронирований общих зон
func CreateReservasAreaComunTable(reservas []domain.ReservaAreaComun) *TableData {
	table := NewTableData("ID", "ÁREA", "INICIO", "FIN", "ESTADO")
	for _, r := range reservas {
		nombre := r.AreaComun.Nombre
		if nombre == "" {
			nombre = fmt.Sprintf("#%d", r.AreaComunID)
		}
		table.AddRow(
			fmt.Sprintf("%d", r.ID),
			nombre,
			r.PeriodoInicio.Format(timeLayout),
			r.PeriodoFin.Format(timeLayout),
			r.Estado,
		)
	}
	return table
}

// CreateReservasVisitaTable создает таблицу гостевых бронирований
func CreateReservasVisitaTable(reservas []domain.ReservaVisita) *TableData {
	table := NewTableData("ID", "LUGAR", "PLACA", "INICIO", "FIN", "ESTADO")
	for _, r := range reservas {
		numero := r.LugarVisita.Numero
		if numero == "" {
			numero = fmt.Sprintf("#%d", r.LugarVisitaID)
		}
		placa := r.PlacaVisita
		if placa == "" {
			placa = "-"
		}
		table.AddRow(
			fmt.Sprintf("%d", r.ID),
			numero,
			placa,
			r.PeriodoInicio.Format(timeLayout),
			r.PeriodoFin.Format(timeLayout),
			r.Estado,
		)
	}
	return table
}

// CreateAdeudosTable создает таблицу задолженностей
func CreateAdeudosTable(adeudos []domain.Adeudo) *TableData {
	table := NewTableData("ID", "DESCRIPCIÓN", "MONTO", "VENCIMIENTO", "PAGADO")
	for _, a := range adeudos {
		pagado := "No"
		if a.Pagado {
			pagado = "Sí"
		}
		table.AddRow(
			fmt.Sprintf("%d", a.ID),
			a.Descripcion,
			fmt.Sprintf("$%.2f", a.Monto),
			a.FechaVencimiento,
			pagado,
		)
	}
	return table
}

// CreatePendientesTable создает таблицу заявок на регистрацию
func CreatePendientesTable(pendientes []domain.RegistroPendiente) *TableData {
	table := NewTableData("ID", "EMAIL", "NOMBRE", "DEPARTAMENTO", "CREADA")
	for _, p := range pendientes {
		table.AddRow(
			fmt.Sprintf("%d", p.ID),
			p.Email,
			strings.TrimSpace(p.Nombre+" "+p.Apellido),
			p.Departamento,
			p.CreatedAt,
		)
	}
	return table
}

// CreatePanelTable создает сводную таблицу панели резидента
func CreatePanelTable(panel *domain.PanelResidente) *TableData {
	table := NewTableData("CAMPO", "VALOR")
	table.AddRow("Departamento", panel.Departamento.Numero)

	if panel.Estacionamiento != nil {
		e := panel.Estacionamiento
		table.AddRow("Estacionamiento", e.Numero)
		if e.Placa != "" {
			table.AddRow("Vehículo", fmt.Sprintf("%s %s (%s)", e.ModeloAuto, e.ColorAuto, e.Placa))
		}
	} else {
		table.AddRow("Estacionamiento", "-")
	}

	table.AddRow("Adeudos pendientes", fmt.Sprintf("%d", len(panel.AdeudosPendientes)))
	table.AddRow("Total adeudos", fmt.Sprintf("$%.2f", panel.TotalAdeudos))

	puede := "Sí"
	if !panel.PuedeReservar {
		puede = "No"
	}
	table.AddRow("Puede reservar", puede)

	return table
}

// CreateDisponibilidadTable создает таблицу результата проверки доступности
func CreateDisponibilidadTable(disp *domain.Disponibilidad, inicio, fin time.Time) *TableData {
	table := NewTableData("CAMPO", "VALOR")

	estado := "Disponible"
	if !disp.Disponible {
		estado = "Ocupado"
	}
	table.AddRow("Estado", estado)
	table.AddRow("Inicio", inicio.Format(timeLayout))
	table.AddRow("Fin", fin.Format(timeLayout))
	table.AddRow("Reservas existentes", fmt.Sprintf("%d", disp.ReservasExistentes))

	return table
}
