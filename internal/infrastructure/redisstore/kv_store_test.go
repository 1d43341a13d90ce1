package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
	"github.com/jhoicas/bloodbank-api/pkg/config"
)

func newStore(t *testing.T, prefix string) (*redisstore.KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisstore.NewClient(config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, redisstore.Ping(context.Background(), client))
	return redisstore.NewKVStore(client, prefix), mr
}

func TestKVStore_Contrato(t *testing.T) {
	s, _ := newStore(t, "bloodbank:")
	testutil.RunKVStoreContract(t, s)
}

func TestKVStore_UsaPrefijo(t *testing.T) {
	s, mr := newStore(t, "test:")
	require.NoError(t, s.Set(context.Background(), "blood_management_stock", []byte(`[]`)))

	assert.True(t, mr.Exists("test:blood_management_stock"))
	v, err := mr.Get("test:blood_management_stock")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestPing_ServidorCaido(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redisstore.NewClient(config.RedisConfig{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	assert.Error(t, redisstore.Ping(context.Background(), client))
}
