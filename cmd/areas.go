package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
	"github.com/jesushl/SanAgustin/internal/validation"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Бронирование общих зон",
	Long: `Команды для работы с общими зонами комплекса: список зон,
проверка доступности, создание и просмотр бронирований.`,
}

var areasListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать общие зоны",
	Long:  `Отображает доступные для бронирования общие зоны.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAreasList(cmd), cmd)
	},
}

var areasDisponibilidadCmd = &cobra.Command{
	Use:   "disponibilidad",
	Short: "Проверить доступность зоны",
	Long:  `Проверяет, свободна ли общая зона в указанный период.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAreasDisponibilidad(cmd), cmd)
	},
}

var areasReservarCmd = &cobra.Command{
	Use:   "reservar",
	Short: "Забронировать общую зону",
	Long: `Создает бронирование общей зоны. Форма проверяется локально
перед отправкой на сервер.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAreasReservar(cmd), cmd)
	},
}

var areasReservasCmd = &cobra.Command{
	Use:   "reservas",
	Short: "Показать мои бронирования",
	Long:  `Отображает бронирования общих зон текущего пользователя.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAreasReservas(cmd), cmd)
	},
}

func init() {
	areasCmd.AddCommand(areasListCmd)
	areasCmd.AddCommand(areasDisponibilidadCmd)
	areasCmd.AddCommand(areasReservarCmd)
	areasCmd.AddCommand(areasReservasCmd)

	for _, c := range []*cobra.Command{areasDisponibilidadCmd, areasReservarCmd} {
		c.Flags().Int("area", 0, "идентификатор зоны")
		c.Flags().String("inicio", "", "начало периода")
		c.Flags().String("fin", "", "конец периода")
	}

	areasReservasCmd.Flags().String("fecha", "", "подсветить дату, занятую собственным бронированием")
}

func handleAreasList(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	areas, err := portal.GetAreasComunes(ctx)
	if err != nil {
		timer.Finish("areas_list", false)
		return err
	}

	timer.Finish("areas_list", true)
	return printResult(areas, output.CreateAreasComunesTable(areas))
}

// reservaFlags разбирает общие флаги бронирования
func reservaFlags(cmd *cobra.Command) (int, string, string) {
	id, _ := cmd.Flags().GetInt("area")
	inicio, _ := cmd.Flags().GetString("inicio")
	fin, _ := cmd.Flags().GetString("fin")
	return id, inicio, fin
}

func handleAreasDisponibilidad(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	areaID, inicioRaw, finRaw := reservaFlags(cmd)
	inicio, err := parseOptionalTime(inicioRaw)
	if err != nil {
		return err
	}
	fin, err := parseOptionalTime(finRaw)
	if err != nil {
		return err
	}

	if verr := validator.ValidateReservaAreaComun(areaID, inicio, fin); verr != nil {
		return verr
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	disp, err := portal.VerificarDisponibilidadAreaComun(ctx, areaID, inicio, fin)
	if err != nil {
		timer.Finish("areas_disponibilidad", false)
		return err
	}

	timer.Finish("areas_disponibilidad", true)
	return printResult(disp, output.CreateDisponibilidadTable(disp, inicio, fin))
}

func handleAreasReservar(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	areaID, inicioRaw, finRaw := reservaFlags(cmd)
	inicio, err := parseOptionalTime(inicioRaw)
	if err != nil {
		return err
	}
	fin, err := parseOptionalTime(finRaw)
	if err != nil {
		return err
	}

	if verr := validator.ValidateReservaAreaComun(areaID, inicio, fin); verr != nil {
		return verr
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	reserva, err := portal.CrearReservaAreaComun(ctx, &domain.ReservaAreaComunCreate{
		AreaComunID:   areaID,
		PeriodoInicio: inicio,
		PeriodoFin:    fin,
	})
	if err != nil {
		timer.Finish("areas_reservar", false)
		return err
	}

	timer.Finish("areas_reservar", true)
	fmt.Printf("Reserva creada: #%d\n", reserva.ID)
	return printResult(reserva, output.CreateReservasAreaComunTable([]domain.ReservaAreaComun{*reserva}))
}

func handleAreasReservas(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	reservas, err := portal.GetReservasAreaComunUsuario(ctx)
	if err != nil {
		timer.Finish("areas_reservas", false)
		return err
	}
	timer.Finish("areas_reservas", true)

	if fechaRaw, _ := cmd.Flags().GetString("fecha"); fechaRaw != "" {
		fecha, err := parseTimeFlag(fechaRaw)
		if err != nil {
			return err
		}
		if validation.FechaOcupadaAreaComun(fecha, reservas) {
			fmt.Printf("La fecha %s está dentro de una de sus reservas\n", fechaRaw)
		} else {
			fmt.Printf("La fecha %s está libre de sus reservas\n", fechaRaw)
		}
	}

	return printResult(reservas, output.CreateReservasAreaComunTable(reservas))
}
