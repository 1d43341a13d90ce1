package repository

import "context"

// KeyValueStore puerto de persistencia: un valor JSON por clave (una clave por colección).
// Cualquier backend con semántica get/set por clave sirve (memoria, archivo, Redis, PostgreSQL).
type KeyValueStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
