package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jesushl/SanAgustin/internal/auth"
	"github.com/jesushl/SanAgustin/internal/client"
	"github.com/jesushl/SanAgustin/internal/config"
	"github.com/jesushl/SanAgustin/internal/metrics"
	"github.com/jesushl/SanAgustin/internal/output"
	"github.com/jesushl/SanAgustin/internal/store"
	"github.com/jesushl/SanAgustin/internal/validation"
	pkgerrors "github.com/jesushl/SanAgustin/pkg/errors"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

var (
	cfg           *config.Config
	appLogger     logger.Logger
	rootCtx       context.Context
	sessionStore  store.SessionStore
	authManager   *auth.Manager
	portal        client.PortalService
	portalMetrics *metrics.PortalMetrics
	validator     *validation.ReservaValidator
)

// Execute выполняет корневую команду
func Execute(ctx context.Context) error {
	rootCtx = ctx
	return rootCmd.Execute()
}

// rootCmd корневая команда CLI
var rootCmd = &cobra.Command{
	Use:   "sanagustin",
	Short: "San Agustín CLI - Портал резидентов жилого комплекса",
	Long: `San Agustín CLI - инструмент командной строки для портала резидентов
жилого комплекса Сан Агустин.

Поддерживает бронирование общих зон и гостевых парковочных мест,
просмотр задолженностей, управление парковкой и одобрение регистраций.
Демо-режим работает без подключения к серверу.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initApp()
	}

	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringP("config", "c", "", "файл конфигурации (по умолчанию ~/.sanagustin/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "формат вывода (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "подробный вывод")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(areasCmd)
	rootCmd.AddCommand(visitasCmd)
	rootCmd.AddCommand(estacionamientoCmd)
	rootCmd.AddCommand(adeudosCmd)
	rootCmd.AddCommand(adminCmd)
}

// initViper настраивает чтение конфигурации и переменных окружения
func initViper() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("SANAGUSTIN")
	viper.AutomaticEnv()
}

// initApp собирает зависимости приложения
func initApp() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		path = cfgFile
	}

	cfg, err = config.LoadConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Logger.Level
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		level = "debug"
	}

	appLogger, err = logger.NewLogger(cfg.Logger.Environment, level, "sanagustin-cli")
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}

	sessionStore, err = newSessionStore()
	if err != nil {
		return err
	}

	authManager = auth.NewManager(sessionStore, appLogger)
	validator = validation.NewReservaValidator()
	portalMetrics = metrics.NewPortalMetrics(appLogger)

	live := client.NewHTTPClient(cfg.API.BaseURL, sessionStore, appLogger)
	demo := client.NewDemoClientWithDelay(appLogger, time.Duration(cfg.Demo.DelayMs)*time.Millisecond)
	portal = client.NewDispatcher(authManager, live, demo)

	return nil
}

// newSessionStore создает хранилище сессии по конфигурации
func newSessionStore() (store.SessionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		return store.NewRedisSessionStore(
			cfg.Session.Redis.Addr,
			cfg.Session.Redis.Password,
			cfg.Session.Redis.DB,
		)
	default:
		return store.NewFileSessionStore()
	}
}

// commandContext возвращает контекст команды с таймаутом из конфигурации
func commandContext() (context.Context, context.CancelFunc) {
	ctx := rootCtx
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, time.Duration(cfg.API.Timeout)*time.Second)
}

// sessionMode возвращает метку режима для метрик
func sessionMode() string {
	if authManager.IsDemoSession() {
		return "demo"
	}
	return "live"
}

// requireAuth проверяет наличие активной сессии
func requireAuth() error {
	if !authManager.IsAuthenticated() {
		return pkgerrors.New(pkgerrors.ErrUnauthorized, "Inicie sesión para continuar")
	}
	return nil
}

// requireAdmin проверяет права администратора
func requireAdmin() error {
	if err := requireAuth(); err != nil {
		return err
	}
	if !authManager.IsAdmin() {
		return pkgerrors.New(pkgerrors.ErrForbidden, "Acceso solo para administradores")
	}
	return nil
}

// handleError приводит ошибки команд к единому виду.
// Недействительная сессия сбрасывается, чтобы следующий запуск
// начался с чистого входа
func handleError(err error, cmd *cobra.Command) error {
	if err == nil {
		return nil
	}

	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) {
		appErr = pkgerrors.New(pkgerrors.ErrInternal, err.Error())
	}

	if appErr.Code == pkgerrors.ErrUnauthorized && authManager.IsAuthenticated() {
		if logoutErr := authManager.Logout(); logoutErr != nil {
			appLogger.Warn("не удалось сбросить недействительную сессию",
				logger.Error(logoutErr))
		}
	}

	appLogger.Error("команда завершилась ошибкой",
		logger.String("command", cmd.Name()),
		logger.Error(appErr))

	return fmt.Errorf("%s: %s", cmd.Name(), appErr.GetUserMessage())
}

// outputFormat возвращает действующий формат вывода:
// флаг, затем конфигурация, затем переменная окружения
func outputFormat() output.FormatType {
	if flag := viper.GetString("output"); flag != "" {
		return output.FormatType(flag)
	}
	if cfg.Output.Format != "" {
		return output.FormatType(cfg.Output.Format)
	}
	return output.DetectFormat()
}

// printResult печатает данные в выбранном формате.
// Для табличного формата используется table, для остальных data
func printResult(data interface{}, table *output.TableData) error {
	format := outputFormat()

	var payload interface{} = data
	if format == output.FormatTable {
		payload = table
	}

	formatted, err := output.GetFormatter(format, cfg.Output.Pretty).Format(payload)
	if err != nil {
		return err
	}

	fmt.Println(formatted)
	return nil
}

// timeFlagLayouts поддерживаемые форматы дат во флагах
var timeFlagLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseOptionalTime разбирает флаг с датой, пустое значение остается нулевым,
// чтобы валидатор сообщил о незаполненных полях
func parseOptionalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseTimeFlag(value)
}

// parseTimeFlag разбирает значение флага с датой
func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range timeFlagLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, pkgerrors.New(pkgerrors.ErrValidation,
		fmt.Sprintf("Formato de fecha inválido: %s", value))
}
