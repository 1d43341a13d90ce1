package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia para notificaciones (log append-only salvo el flag read).
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, n *entity.Notification) (bool, error)
	List(ctx context.Context) ([]entity.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Notification, error)
}
