package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
	pkgerrors "github.com/jesushl/SanAgustin/pkg/errors"
	pkgvalidation "github.com/jesushl/SanAgustin/pkg/validation"
)

var estacionamientoCmd = &cobra.Command{
	Use:   "estacionamiento",
	Short: "Управление парковочным местом",
	Long:  `Команды для парковочного места резидента.`,
}

var estacionamientoActualizarCmd = &cobra.Command{
	Use:   "actualizar [id]",
	Short: "Обновить данные автомобиля",
	Long: `Обновляет номерной знак, модель и цвет автомобиля
на парковочном месте резидента.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleEstacionamientoActualizar(cmd, args[0]), cmd)
	},
}

func init() {
	estacionamientoCmd.AddCommand(estacionamientoActualizarCmd)

	estacionamientoActualizarCmd.Flags().String("placa", "", "номерной знак")
	estacionamientoActualizarCmd.Flags().String("modelo", "", "модель автомобиля")
	estacionamientoActualizarCmd.Flags().String("color", "", "цвет автомобиля")
}

func handleEstacionamientoActualizar(cmd *cobra.Command, rawID string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return pkgerrors.New(pkgerrors.ErrValidation,
			fmt.Sprintf("Identificador inválido: %s", rawID))
	}

	placa, _ := cmd.Flags().GetString("placa")
	modelo, _ := cmd.Flags().GetString("modelo")
	color, _ := cmd.Flags().GetString("color")

	if placa == "" && modelo == "" && color == "" {
		return pkgerrors.New(pkgerrors.ErrValidation,
			"Indique al menos un campo a actualizar")
	}

	if placa != "" {
		v := pkgvalidation.NewValidator()
		if err := v.ValidatePlate(strings.ToUpper(placa)); err != nil {
			return pkgerrors.New(pkgerrors.ErrValidation,
				fmt.Sprintf("Placa inválida: %s", placa))
		}
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	est, err := portal.ActualizarEstacionamiento(ctx, id, &domain.EstacionamientoUpdate{
		Placa:      strings.ToUpper(placa),
		ModeloAuto: modelo,
		ColorAuto:  color,
	})
	if err != nil {
		timer.Finish("estacionamiento_actualizar", false)
		return err
	}
	timer.Finish("estacionamiento_actualizar", true)

	table := output.NewTableData("CAMPO", "VALOR")
	table.AddRow("Número", est.Numero)
	table.AddRow("Placa", est.Placa)
	table.AddRow("Modelo", est.ModeloAuto)
	table.AddRow("Color", est.ColorAuto)

	return printResult(est, table)
}
