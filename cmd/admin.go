package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/admin"
	"github.com/jesushl/SanAgustin/internal/output"
	pkgerrors "github.com/jesushl/SanAgustin/pkg/errors"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Администрирование",
	Long:  `Команды администратора: просмотр и одобрение заявок на регистрацию.`,
}

var adminPendientesCmd = &cobra.Command{
	Use:   "pendientes",
	Short: "Показать заявки на регистрацию",
	Long:  `Отображает заявки на регистрацию, ожидающие одобрения.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAdminPendientes(cmd), cmd)
	},
}

var adminAprobarCmd = &cobra.Command{
	Use:   "aprobar [id]",
	Short: "Одобрить заявку на регистрацию",
	Long: `Одобряет заявку на регистрацию. После успешного одобрения
заявка убирается из локального списка без повторного запроса.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleAdminAprobar(cmd, args[0]), cmd)
	},
}

func init() {
	adminCmd.AddCommand(adminPendientesCmd)
	adminCmd.AddCommand(adminAprobarCmd)
}

func handleAdminPendientes(cmd *cobra.Command) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	list := admin.NewPendingList(portal, appLogger)
	if err := list.Refresh(ctx); err != nil {
		timer.Finish("admin_pendientes", false)
		return err
	}

	timer.Finish("admin_pendientes", true)
	return printResult(list.Items(), output.CreatePendientesTable(list.Items()))
}

func handleAdminAprobar(cmd *cobra.Command, rawID string) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return pkgerrors.New(pkgerrors.ErrValidation,
			fmt.Sprintf("Identificador inválido: %s", rawID))
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	list := admin.NewPendingList(portal, appLogger)
	if err := list.Refresh(ctx); err != nil {
		timer.Finish("admin_aprobar", false)
		return err
	}

	if err := list.Approve(ctx, id); err != nil {
		timer.Finish("admin_aprobar", false)
		return err
	}
	timer.Finish("admin_aprobar", true)

	fmt.Printf("Solicitud #%d aprobada\n", id)
	return printResult(list.Items(), output.CreatePendientesTable(list.Items()))
}
