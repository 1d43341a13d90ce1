package ports

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// StockLedger lo que los demás casos de uso necesitan del inventario.
type StockLedger interface {
	GetByGroup(ctx context.Context, group entity.BloodGroup) (*entity.BloodStock, error)
	ApplyDelta(ctx context.Context, group entity.BloodGroup, delta int) (*entity.BloodStock, error)
}

// NotificationSink destino de los avisos generados por las transiciones.
type NotificationSink interface {
	Post(ctx context.Context, userID, title, message, typ string) (*entity.Notification, error)
}
