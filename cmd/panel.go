package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Панель резидента",
	Long: `Показывает сводку резидента: департамент, парковку,
задолженности и активные бронирования.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handlePanel(cmd), cmd)
	},
}

func init() {
	panelCmd.Flags().Bool("reservas", false, "включить активные бронирования")
}

// handlePanel загружает панель и, по запросу, бронирования параллельно
func handlePanel(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	conReservas, _ := cmd.Flags().GetBool("reservas")

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	var (
		panel          *domain.PanelResidente
		reservasArea   []domain.ReservaAreaComun
		reservasVisita []domain.ReservaVisita
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		panel, err = portal.GetPanelResidente(gctx)
		return err
	})
	if conReservas {
		g.Go(func() error {
			var err error
			reservasArea, err = portal.GetReservasAreaComunUsuario(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			reservasVisita, err = portal.GetReservasVisitaUsuario(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		timer.Finish("panel", false)
		return err
	}
	timer.Finish("panel", true)

	if !conReservas {
		return printResult(panel, output.CreatePanelTable(panel))
	}

	table := output.CreatePanelTable(panel)
	table.AddRow("Reservas de áreas", itoa(len(reservasArea)))
	table.AddRow("Reservas de visita", itoa(len(reservasVisita)))

	return printResult(map[string]interface{}{
		"panel":           panel,
		"reservas_areas":  reservasArea,
		"reservas_visita": reservasVisita,
	}, table)
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
