package admin

import (
	"context"

	"github.com/jesushl/SanAgustin/internal/client"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// PendingList держит локальный список заявок на регистрацию.
// После успешного одобрения заявка убирается из списка без повторного
// запроса к серверу, поэтому список может отставать от сервера
type PendingList struct {
	service client.PortalService
	logger  logger.Logger
	items   []domain.RegistroPendiente
}

// NewPendingList создает список заявок
func NewPendingList(service client.PortalService, log logger.Logger) *PendingList {
	return &PendingList{
		service: service,
		logger:  log,
	}
}

// Refresh загружает заявки с сервера, заменяя локальный список
func (p *PendingList) Refresh(ctx context.Context) error {
	items, err := p.service.GetPendingRegistrations(ctx)
	if err != nil {
		return err
	}

	p.items = items
	p.logger.Debug("загружены заявки на регистрацию", logger.Int("count", len(items)))
	return nil
}

// Items возвращает текущий локальный список заявок
func (p *PendingList) Items() []domain.RegistroPendiente {
	return p.items
}

// Approve одобряет заявку и убирает ее из локального списка.
// При ошибке сервера список остается без изменений
func (p *PendingList) Approve(ctx context.Context, id int) error {
	if err := p.service.ApproveRegistration(ctx, id); err != nil {
		return err
	}

	for i, item := range p.items {
		if item.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			break
		}
	}

	p.logger.Info("заявка одобрена", logger.Int("registration_id", id))
	return nil
}
