package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

var t0 = time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

func newNotifications() (*usecase.NotificationUseCase, *testutil.Clock) {
	clock := testutil.NewClock(t0)
	repo := recordstore.NewNotificationRepository(memory.NewKVStore())
	return usecase.NewNotificationUseCase(repo, clock, testutil.NewSeqIDs("n")), clock
}

func TestNotificationPost_NoLeidaYTipoPorDefecto(t *testing.T) {
	uc, _ := newNotifications()

	n, err := uc.Post(context.Background(), "u1", "Hola", "Mensaje", "")
	require.NoError(t, err)
	assert.False(t, n.Read)
	assert.Equal(t, entity.NotificationInfo, n.Type)
	assert.Equal(t, t0, n.CreatedAt)
}

func TestNotificationPost_Validaciones(t *testing.T) {
	uc, _ := newNotifications()
	ctx := context.Background()

	_, err := uc.Post(ctx, "u1", "", "m", "info")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.Post(ctx, "u1", "t", " ", "info")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.Post(ctx, "u1", "t", "m", "urgent")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestNotification_ListadoYConteos(t *testing.T) {
	uc, clock := newNotifications()
	ctx := context.Background()

	first, err := uc.Post(ctx, "u1", "Uno", "m", entity.NotificationSuccess)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := uc.Post(ctx, "u1", "Dos", "m", entity.NotificationWarning)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = uc.Post(ctx, "", "Difusión", "m", entity.NotificationInfo)
	require.NoError(t, err)

	mine, err := uc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Difusión", all[0].Title)

	unread, err := uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	_, err = uc.MarkRead(ctx, first.ID)
	require.NoError(t, err)
	unread, err = uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	changed, err := uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	unread, err = uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationMarkRead_NoExiste(t *testing.T) {
	uc, _ := newNotifications()

	_, err := uc.MarkRead(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestNotificationMarkReadFor_AjenaProhibida(t *testing.T) {
	uc, _ := newNotifications()
	ctx := context.Background()
	n, err := uc.Post(ctx, "u1", "t", "m", "")
	require.NoError(t, err)

	_, err = uc.MarkReadFor(ctx, "u2", n.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	got, err := uc.MarkReadFor(ctx, "u1", n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}
