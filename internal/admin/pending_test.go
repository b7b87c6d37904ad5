package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesushl/SanAgustin/internal/client"
	"github.com/jesushl/SanAgustin/internal/domain"
	"github.com/jesushl/SanAgustin/pkg/errors"
	"github.com/jesushl/SanAgustin/pkg/logger"
)

// stubService управляет ответами сервера в тестах
type stubService struct {
	client.PortalService
	pendientes []domain.RegistroPendiente
	approveErr error
	approved   []int
}

func (s *stubService) GetPendingRegistrations(ctx context.Context) ([]domain.RegistroPendiente, error) {
	return s.pendientes, nil
}

func (s *stubService) ApproveRegistration(ctx context.Context, id int) error {
	if s.approveErr != nil {
		return s.approveErr
	}
	s.approved = append(s.approved, id)
	return nil
}

func testLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.NewLogger("dev", "error", "admin-test")
	require.NoError(t, err)
	return log
}

func testPendientes() []domain.RegistroPendiente {
	return []domain.RegistroPendiente{
		{ID: 3, Email: "a@test.com"},
		{ID: 7, Email: "b@test.com"},
		{ID: 11, Email: "c@test.com"},
	}
}

func TestApproveRemovesOnlyApproved(t *testing.T) {
	svc := &stubService{pendientes: testPendientes()}
	list := NewPendingList(svc, testLogger(t))

	ctx := context.Background()
	require.NoError(t, list.Refresh(ctx))
	require.Len(t, list.Items(), 3)

	require.NoError(t, list.Approve(ctx, 7))

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, 11, items[1].ID)
	assert.Equal(t, []int{7}, svc.approved)
}

func TestApproveFailureKeepsList(t *testing.T) {
	svc := &stubService{
		pendientes: testPendientes(),
		approveErr: errors.New(errors.ErrForbidden, "Acceso denegado"),
	}
	list := NewPendingList(svc, testLogger(t))

	ctx := context.Background()
	require.NoError(t, list.Refresh(ctx))

	err := list.Approve(ctx, 7)
	require.Error(t, err)
	assert.Len(t, list.Items(), 3)
}

func TestApproveUnknownID(t *testing.T) {
	svc := &stubService{pendientes: testPendientes()}
	list := NewPendingList(svc, testLogger(t))

	ctx := context.Background()
	require.NoError(t, list.Refresh(ctx))

	// Сервер одобрил, но локально заявки нет: список не меняется
	require.NoError(t, list.Approve(ctx, 99))
	assert.Len(t, list.Items(), 3)
}
