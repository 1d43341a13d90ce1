package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

func TestKVStore_Contrato(t *testing.T) {
	testutil.RunKVStoreContract(t, memory.NewKVStore())
}

func TestKVStore_CopiaLosBytes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()
	in := []byte(`[1]`)
	require.NoError(t, s.Set(ctx, "k", in))
	in[1] = '9'

	out, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(out))
	out[1] = '7'

	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, `[1]`, string(again))
}
