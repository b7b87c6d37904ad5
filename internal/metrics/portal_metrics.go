package metrics

import (
	"context"
	"time"

	"github.com/jesushl/SanAgustin/pkg/logger"
	"github.com/jesushl/SanAgustin/pkg/metrics"
)

// PortalMetrics содержит метрики операций портала.
// Метка mode разделяет живой и демо-режим
type PortalMetrics struct {
	metrics.Metrics
	logger logger.Logger
}

// NewPortalMetrics создает метрики портала
func NewPortalMetrics(log logger.Logger) *PortalMetrics {
	m := metrics.NewMetrics("sanagustin_cli")

	return &PortalMetrics{
		Metrics: *m,
		logger:  log,
	}
}

// CommandExecuted регистрирует выполнение команды
func (p *PortalMetrics) CommandExecuted(ctx context.Context, mode, command string, success bool, duration time.Duration) {
	p.logger.Debug("команда выполнена",
		logger.String("mode", mode),
		logger.String("command", command),
		logger.Bool("success", success),
		logger.Duration("duration", duration))

	p.RequestCount.WithLabelValues(mode, command, getStatusLabel(success)).Inc()
	p.RequestDuration.WithLabelValues(mode, command).Observe(duration.Seconds())

	if !success {
		p.ErrorsCount.WithLabelValues(mode, command, "execution_failed").Inc()
	}
}

// RecordError регистрирует ошибку операции
func (p *PortalMetrics) RecordError(ctx context.Context, mode, operation, errorType string) {
	p.ErrorsCount.WithLabelValues(mode, operation, errorType).Inc()
}

// getStatusLabel возвращает метку статуса
func getStatusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// CommandTimer измеряет время выполнения команды
type CommandTimer struct {
	metrics *PortalMetrics
	ctx     context.Context
	mode    string
	start   time.Time
}

// NewCommandTimer создает таймер команды
func (p *PortalMetrics) NewCommandTimer(ctx context.Context, mode string) *CommandTimer {
	return &CommandTimer{
		metrics: p,
		ctx:     ctx,
		mode:    mode,
		start:   time.Now(),
	}
}

// Finish завершает команду и регистрирует метрики
func (t *CommandTimer) Finish(command string, success bool) {
	t.metrics.CommandExecuted(t.ctx, t.mode, command, success, time.Since(t.start))
}
