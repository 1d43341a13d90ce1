package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// ErrStoreDown error que devuelve FailingStore en las claves marcadas.
var ErrStoreDown = errors.New("store no disponible")

// FailingStore envuelve un KeyValueStore y hace fallar Set en las claves marcadas con FailSet.
type FailingStore struct {
	repository.KeyValueStore

	mu   sync.Mutex
	keys map[string]bool
}

func NewFailingStore(inner repository.KeyValueStore) *FailingStore {
	return &FailingStore{KeyValueStore: inner, keys: map[string]bool{}}
}

// FailSet activa o desactiva el fallo de escritura para key.
func (s *FailingStore) FailSet(key string, fail bool) {
	s.mu.Lock()
	s.keys[key] = fail
	s.mu.Unlock()
}

func (s *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	fail := s.keys[key]
	s.mu.Unlock()
	if fail {
		return ErrStoreDown
	}
	return s.KeyValueStore.Set(ctx, key, value)
}
