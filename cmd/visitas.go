package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
	"github.com/jesushl/SanAgustin/internal/validation"
)

var visitasCmd = &cobra.Command{
	Use:   "visitas",
	Short: "Бронирование гостевых мест",
	Long: `Команды для гостевой парковки: список мест, проверка
доступности, создание и просмотр бронирований. Гостевое
бронирование ограничено сутками.`,
}

var visitasLugaresCmd = &cobra.Command{
	Use:   "lugares",
	Short: "Показать гостевые места",
	Long:  `Отображает гостевые парковочные места.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleVisitasLugares(cmd), cmd)
	},
}

var visitasDisponibilidadCmd = &cobra.Command{
	Use:   "disponibilidad",
	Short: "Проверить доступность места",
	Long:  `Проверяет, свободно ли гостевое место в указанный период.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleVisitasDisponibilidad(cmd), cmd)
	},
}

var visitasReservarCmd = &cobra.Command{
	Use:   "reservar",
	Short: "Забронировать гостевое место",
	Long: `Создает бронирование гостевого места. Номерной знак гостя
необязателен, длительность не может превышать 24 часа.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleVisitasReservar(cmd), cmd)
	},
}

var visitasReservasCmd = &cobra.Command{
	Use:   "reservas",
	Short: "Показать мои гостевые бронирования",
	Long:  `Отображает гостевые бронирования текущего пользователя.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleVisitasReservas(cmd), cmd)
	},
}

func init() {
	visitasCmd.AddCommand(visitasLugaresCmd)
	visitasCmd.AddCommand(visitasDisponibilidadCmd)
	visitasCmd.AddCommand(visitasReservarCmd)
	visitasCmd.AddCommand(visitasReservasCmd)

	for _, c := range []*cobra.Command{visitasDisponibilidadCmd, visitasReservarCmd} {
		c.Flags().Int("lugar", 0, "идентификатор гостевого места")
		c.Flags().String("inicio", "", "начало периода")
		c.Flags().String("fin", "", "конец периода")
	}
	visitasReservarCmd.Flags().String("placa", "", "номерной знак гостя (необязательно)")

	visitasReservasCmd.Flags().String("fecha", "", "подсветить дату, занятую собственным бронированием")
}

func handleVisitasLugares(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	lugares, err := portal.GetLugaresVisita(ctx)
	if err != nil {
		timer.Finish("visitas_lugares", false)
		return err
	}

	timer.Finish("visitas_lugares", true)
	return printResult(lugares, output.CreateLugaresVisitaTable(lugares))
}

// visitaFlags разбирает общие флаги гостевого бронирования
func visitaFlags(cmd *cobra.Command) (int, string, string) {
	id, _ := cmd.Flags().GetInt("lugar")
	inicio, _ := cmd.Flags().GetString("inicio")
	fin, _ := cmd.Flags().GetString("fin")
	return id, inicio, fin
}

func handleVisitasDisponibilidad(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	lugarID, inicioRaw, finRaw := visitaFlags(cmd)
	inicio, err := parseOptionalTime(inicioRaw)
	if err != nil {
		return err
	}
	fin, err := parseOptionalTime(finRaw)
	if err != nil {
		return err
	}

	if verr := validator.ValidateReservaVisita(lugarID, inicio, fin); verr != nil {
		return verr
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	disp, err := portal.VerificarDisponibilidadLugarVisita(ctx, lugarID, inicio, fin)
	if err != nil {
		timer.Finish("visitas_disponibilidad", false)
		return err
	}

	timer.Finish("visitas_disponibilidad", true)
	return printResult(disp, output.CreateDisponibilidadTable(disp, inicio, fin))
}

func handleVisitasReservar(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	lugarID, inicioRaw, finRaw := visitaFlags(cmd)
	placa, _ := cmd.Flags().GetString("placa")

	inicio, err := parseOptionalTime(inicioRaw)
	if err != nil {
		return err
	}
	fin, err := parseOptionalTime(finRaw)
	if err != nil {
		return err
	}

	if verr := validator.ValidateReservaVisita(lugarID, inicio, fin); verr != nil {
		return verr
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	reserva, err := portal.CrearReservaVisita(ctx, &domain.ReservaVisitaCreate{
		LugarVisitaID: lugarID,
		PlacaVisita:   placa,
		PeriodoInicio: inicio,
		PeriodoFin:    fin,
	})
	if err != nil {
		timer.Finish("visitas_reservar", false)
		return err
	}

	timer.Finish("visitas_reservar", true)
	fmt.Printf("Reserva creada: #%d\n", reserva.ID)
	return printResult(reserva, output.CreateReservasVisitaTable([]domain.ReservaVisita{*reserva}))
}

func handleVisitasReservas(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	reservas, err := portal.GetReservasVisitaUsuario(ctx)
	if err != nil {
		timer.Finish("visitas_reservas", false)
		return err
	}
	timer.Finish("visitas_reservas", true)

	if fechaRaw, _ := cmd.Flags().GetString("fecha"); fechaRaw != "" {
		fecha, err := parseTimeFlag(fechaRaw)
		if err != nil {
			return err
		}
		if validation.FechaOcupadaVisita(fecha, reservas) {
			fmt.Printf("La fecha %s está dentro de una de sus reservas\n", fechaRaw)
		} else {
			fmt.Printf("La fecha %s está libre de sus reservas\n", fechaRaw)
		}
	}

	return printResult(reservas, output.CreateReservasVisitaTable(reservas))
}
