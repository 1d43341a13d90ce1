package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// NotificationUseCase log de mensajes para usuarios. Solo cambia el flag Read.
type NotificationUseCase struct {
	repo  repository.NotificationRepository
	clock ports.Clock
	ids   ports.IDGenerator
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, clock ports.Clock, ids ports.IDGenerator) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, clock: clock, ids: ids}
}

// Post agrega una notificación no leída. userID vacío = difusión. Tipo vacío = info.
func (uc *NotificationUseCase) Post(ctx context.Context, userID, title, message, typ string) (*entity.Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" {
		return nil, domain.Invalid("title", "requerido")
	}
	if message == "" {
		return nil, domain.Invalid("message", "requerido")
	}
	if typ == "" {
		typ = entity.NotificationInfo
	}
	if !entity.IsValidNotificationType(typ) {
		return nil, domain.Invalid("type", fmt.Sprintf("tipo desconocido %q", typ))
	}
	n := &entity.Notification{
		ID:        uc.ids.NewID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Read:      false,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkRead marca como leída. ErrNotFound si no existe.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.markRead(ctx, n)
}

// MarkReadFor como MarkRead pero exige que la notificación sea del usuario.
func (uc *NotificationUseCase) MarkReadFor(ctx context.Context, userID, id string) (*entity.Notification, error) {
	n, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return uc.markRead(ctx, n)
}

// MarkAllRead marca todas las notificaciones del usuario. Devuelve cuántas cambiaron.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range list {
		if list[i].Read {
			continue
		}
		if _, err := uc.markRead(ctx, &list[i]); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// ListForUser notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

// ListAll todas las notificaciones (vista admin), más recientes primero.
func (uc *NotificationUseCase) ListAll(ctx context.Context) ([]entity.Notification, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

// UnreadCount notificaciones no leídas del usuario.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range list {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

func (uc *NotificationUseCase) find(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: notificación %s", domain.ErrNotFound, id)
	}
	return n, nil
}

func (uc *NotificationUseCase) markRead(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	if n.Read {
		return n, nil
	}
	n.Read = true
	ok, err := uc.repo.Update(ctx, n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: notificación %s", domain.ErrNotFound, n.ID)
	}
	return n, nil
}

func sortNewestFirst(list []entity.Notification) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}
