package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// SessionRepository guarda el último descriptor de sesión (registro authSession).
type SessionRepository interface {
	Save(ctx context.Context, s *entity.Session) error
	Get(ctx context.Context) (*entity.Session, error)
	Clear(ctx context.Context) error
}
