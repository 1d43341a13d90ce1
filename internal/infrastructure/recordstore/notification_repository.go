package recordstore

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre el Record Store.
type NotificationRepo struct {
	col *Collection[entity.Notification]
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(store repository.KeyValueStore) *NotificationRepo {
	return &NotificationRepo{col: NewCollection[entity.Notification](store, KeyNotifications)}
}

func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	return r.col.Add(ctx, *n)
}

func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	return r.col.GetByID(ctx, id)
}

func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) (bool, error) {
	return r.col.Update(ctx, *n)
}

func (r *NotificationRepo) List(ctx context.Context) ([]entity.Notification, error) {
	return r.col.GetAll(ctx)
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	return r.col.Filter(ctx, func(n entity.Notification) bool { return n.UserID == userID })
}
