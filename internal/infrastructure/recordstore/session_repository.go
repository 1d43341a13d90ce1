package recordstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda el descriptor de sesión bajo KeyAuth (un objeto, no un arreglo).
type SessionRepo struct {
	store repository.KeyValueStore
}

// NewSessionRepository construye el adaptador de sesión.
func NewSessionRepository(store repository.KeyValueStore) *SessionRepo {
	return &SessionRepo{store: store}
}

func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	return r.store.Set(ctx, KeyAuth, raw)
}

// Get devuelve la sesión guardada o (nil, nil).
func (r *SessionRepo) Get(ctx context.Context) (*entity.Session, error) {
	raw, found, err := r.store.Get(ctx, KeyAuth)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if !found {
		return nil, nil
	}
	var s entity.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decodificar sesión: %w", err)
	}
	return &s, nil
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAuth)
}
