package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// RunKVStoreContract verifica la semántica get/set/delete común a todos los adaptadores.
func RunKVStoreContract(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "blood_management_users")
	require.NoError(t, err)
	assert.False(t, found, "clave inexistente debe devolver found=false")

	require.NoError(t, store.Set(ctx, "blood_management_users", []byte(`[{"id":"u1"}]`)))
	v, found, err := store.Get(ctx, "blood_management_users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(v))

	require.NoError(t, store.Set(ctx, "blood_management_users", []byte(`[]`)))
	v, _, err = store.Get(ctx, "blood_management_users")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v), "Set reemplaza el valor completo")

	require.NoError(t, store.Set(ctx, "blood_management_auth", []byte(`{"role":"admin"}`)))
	require.NoError(t, store.Delete(ctx, "blood_management_auth"))
	_, found, err = store.Get(ctx, "blood_management_auth")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Delete(ctx, "blood_management_auth"), "borrar una clave ausente no es error")
}
