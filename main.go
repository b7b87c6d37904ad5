package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jesushl/SanAgustin/cmd"
	"github.com/jesushl/SanAgustin/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := metrics.InitializeOpenTelemetry("sanagustin-cli"); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации трассировки: %v\n", err)
	}

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}
