package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/internal/output"
	"github.com/jesushl/SanAgustin/internal/store"
	pkgerrors "github.com/jesushl/SanAgustin/pkg/errors"
	pkgvalidation "github.com/jesushl/SanAgustin/pkg/validation"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление сессией",
	Long: `Команды для управления сессией: вход по токену, выход,
проверка статуса, демо-режим и заявка на регистрацию.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему по токену",
	Long: `Выполняет вход по токену доступа. Учетная запись запрашивается
у сервера, сессия сохраняется для последующих команд.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleLogin(cmd), cmd)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Удаляет сохраненную сессию.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(authManager.Logout(), cmd)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Проверить статус сессии",
	Long:  `Показывает текущую сессию: пользователя, роль и режим.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleStatus(cmd), cmd)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo [residente|admin]",
	Short: "Войти в демо-режим",
	Long: `Сохраняет демо-сессию. Все команды будут работать на
консервированных данных без обращения к серверу.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"residente", "admin"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleDemo(cmd, args[0]), cmd)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Отправить заявку на регистрацию",
	Long: `Отправляет заявку на регистрацию нового резидента.
Заявка ожидает одобрения администратором.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleError(handleRegister(cmd), cmd)
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)
	authCmd.AddCommand(demoCmd)
	authCmd.AddCommand(registerCmd)

	loginCmd.Flags().StringP("token", "t", "", "токен доступа")
	loginCmd.MarkFlagRequired("token")

	registerCmd.Flags().StringP("email", "e", "", "email")
	registerCmd.Flags().String("nombre", "", "имя")
	registerCmd.Flags().String("apellido", "", "фамилия")
	registerCmd.Flags().String("telefono", "", "телефон")
	registerCmd.Flags().String("departamento", "", "номер департамента")
	registerCmd.Flags().String("notas", "", "дополнительные заметки")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("nombre")
	registerCmd.MarkFlagRequired("apellido")
}

// handleLogin запрашивает учетную запись по токену и сохраняет сессию
func handleLogin(cmd *cobra.Command) error {
	token, _ := cmd.Flags().GetString("token")

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	usuario, err := portal.Me(ctx, token)
	if err != nil {
		timer.Finish("auth_login", false)
		return err
	}

	ses := store.Session{
		Token:   token,
		UserID:  usuario.ID,
		Email:   usuario.Email,
		IsAdmin: usuario.IsAdmin,
	}
	if err := authManager.Login(ses); err != nil {
		timer.Finish("auth_login", false)
		return err
	}

	timer.Finish("auth_login", true)
	fmt.Printf("Sesión iniciada como %s\n", usuario.Email)
	return nil
}

// handleStatus показывает текущую сессию
func handleStatus(cmd *cobra.Command) error {
	table := output.NewTableData("CAMPO", "VALOR")

	ses := authManager.CurrentUser()
	if ses == nil {
		table.AddRow("Sesión", "No iniciada")
		return printResult(map[string]interface{}{"authenticated": false}, table)
	}

	rol := "residente"
	if ses.IsAdmin {
		rol = "admin"
	}
	modo := "live"
	if authManager.IsDemoSession() {
		modo = "demo"
	}

	table.AddRow("Email", ses.Email)
	table.AddRow("Usuario", fmt.Sprintf("%d", ses.UserID))
	table.AddRow("Rol", rol)
	table.AddRow("Modo", modo)

	return printResult(map[string]interface{}{
		"authenticated": true,
		"email":         ses.Email,
		"user_id":       ses.UserID,
		"is_admin":      ses.IsAdmin,
		"demo":          authManager.IsDemoSession(),
	}, table)
}

// handleDemo сохраняет демо-сессию выбранной роли
func handleDemo(cmd *cobra.Command, role string) error {
	var ses store.Session
	switch role {
	case "residente":
		ses = auth.DemoResidenteSession()
	case "admin":
		ses = auth.DemoAdminSession()
	default:
		return pkgerrors.New(pkgerrors.ErrValidation,
			fmt.Sprintf("Rol de demo desconocido: %s", role))
	}

	if err := authManager.Login(ses); err != nil {
		return err
	}

	fmt.Printf("Modo demo iniciado como %s\n", ses.Email)
	return nil
}

// handleRegister отправляет заявку на регистрацию
func handleRegister(cmd *cobra.Command) error {
	email, _ := cmd.Flags().GetString("email")
	nombre, _ := cmd.Flags().GetString("nombre")
	apellido, _ := cmd.Flags().GetString("apellido")
	telefono, _ := cmd.Flags().GetString("telefono")
	departamento, _ := cmd.Flags().GetString("departamento")
	notas, _ := cmd.Flags().GetString("notas")

	if err := pkgvalidation.NewValidator().ValidateEmail(email); err != nil {
		return pkgerrors.New(pkgerrors.ErrValidation,
			fmt.Sprintf("Email inválido: %s", email))
	}

	ctx, cancel := commandContext()
	defer cancel()

	timer := portalMetrics.NewCommandTimer(ctx, sessionMode())

	req := &domain.RegistroRequest{
		Email:            email,
		Nombre:           nombre,
		Apellido:         apellido,
		Provider:         "cli",
		ProviderID:       email,
		Telefono:         telefono,
		Departamento:     departamento,
		NotasAdicionales: notas,
	}

	if err := portal.Registrar(ctx, req); err != nil {
		timer.Finish("auth_register", false)
		return err
	}

	timer.Finish("auth_register", true)
	fmt.Println("Solicitud de registro enviada, espere la aprobación del administrador")
	return nil
}
