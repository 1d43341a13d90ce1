// Package recordstore implementa el Record Store: colecciones de registros JSON
// identificados por id sobre el puerto repository.KeyValueStore.
//
// Cada mutación lee la colección entera, la modifica en memoria y la reescribe completa.
// Dentro del proceso las mutaciones de una misma colección se serializan; entre procesos
// no hay bloqueo y la última escritura gana.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// Record cualquier entidad con identificador único.
type Record interface {
	GetID() string
}

// Collection colección genérica de registros T bajo una clave.
type Collection[T Record] struct {
	store repository.KeyValueStore
	key   string
	mu    sync.Mutex
}

// NewCollection construye la colección sobre el puerto de persistencia.
func NewCollection[T Record](store repository.KeyValueStore, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key devuelve la clave de almacenamiento.
func (c *Collection[T]) Key() string { return c.key }

// GetAll devuelve todos los registros. El orden no está garantizado para el caller.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	return c.read(ctx)
}

// GetByID devuelve el registro con ese id o (nil, nil).
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return c.Find(ctx, func(item T) bool { return item.GetID() == id })
}

// Find devuelve el primer registro que cumple pred o (nil, nil).
func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (*T, error) {
	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if pred(items[i]) {
			found := items[i]
			return &found, nil
		}
	}
	return nil, nil
}

// Filter devuelve los registros que cumplen pred (nunca nil).
func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) ([]T, error) {
	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Add agrega el registro al final. Devuelve ErrDuplicate si el id ya existe.
// Cada check se evalúa contra los registros existentes (p. ej. unicidad de email).
func (c *Collection[T]) Add(ctx context.Context, item T, checks ...func(existing T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.GetID() == item.GetID() {
			return fmt.Errorf("%w: %s id=%s", domain.ErrDuplicate, c.key, item.GetID())
		}
		for _, check := range checks {
			if err := check(existing); err != nil {
				return err
			}
		}
	}
	return c.write(ctx, append(items, item))
}

// Update reemplaza el registro con el mismo id. Devuelve false si no existe.
func (c *Collection[T]) Update(ctx context.Context, item T, checks ...func(existing T) error) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return false, err
	}
	idx := -1
	for i, existing := range items {
		if existing.GetID() == item.GetID() {
			idx = i
			continue
		}
		for _, check := range checks {
			if err := check(existing); err != nil {
				return false, err
			}
		}
	}
	if idx == -1 {
		return false, nil
	}
	items[idx] = item
	return true, c.write(ctx, items)
}

// Mutate aplica fn al primer registro que cumple pred y reescribe la colección sin soltar el lock.
// Devuelve (nil, nil) si ninguno cumple. Si fn falla no se escribe nada y se propaga su error.
func (c *Collection[T]) Mutate(ctx context.Context, pred func(T) bool, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if !pred(items[i]) {
			continue
		}
		id := items[i].GetID()
		if err := fn(&items[i]); err != nil {
			return nil, err
		}
		if items[i].GetID() != id {
			return nil, fmt.Errorf("%w: %s no admite cambiar el id %s", domain.ErrInvalidInput, c.key, id)
		}
		if err := c.write(ctx, items); err != nil {
			return nil, err
		}
		out := items[i]
		return &out, nil
	}
	return nil, nil
}

// Delete elimina el registro con ese id. Devuelve si hubo eliminación.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.write(ctx, kept)
}

// Initialize escribe items solo si la clave todavía no existe. Devuelve si escribió.
func (c *Collection[T]) Initialize(ctx context.Context, items []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", c.key, err)
	}
	if found {
		return false, nil
	}
	if items == nil {
		items = []T{}
	}
	return true, c.write(ctx, items)
}

func (c *Collection[T]) read(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", c.key, err)
	}
	if !found || len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("escribir %s: %w", c.key, err)
	}
	return nil
}
