package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
)

var adeudosCmd = &cobra.Command{
	Use:   "adeudos",
	Short: "Просмотр задолженностей",
	Long: `Показывает задолженности. Без флагов выводятся все
задолженности, с флагом --departamento только указанного департамента.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAdeudos(cmd), cmd)
	},
}

func init() {
	adeudosCmd.Flags().Int("departamento", 0, "идентификатор департамента")
}

func handleAdeudos(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	departamentoID, _ := cmd.Flags().GetInt("departamento")

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	var adeudos []domain.Adeudo
	var err error
	if departamentoID > 0 {
		adeudos, err = portal.GetAdeudosPorDepartamento(ctx, departamentoID)
	} else {
		adeudos, err = portal.GetAdeudos(ctx)
	}
	if err != nil {
		timer.Finish("adeudos", false)
		return err
	}

	timer.Finish("adeudos", true)
	return printResult(adeudos, output.CreateAdeudosTable(adeudos))
}
