package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/pkg/config"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

func TestRunSeedEInspect(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()

	var out bytes.Buffer
	require.NoError(t, runSeed(ctx, store, logger.Nop(), &out))
	assert.Contains(t, out.String(), "admins, users, donations")

	out.Reset()
	require.NoError(t, runSeed(ctx, store, logger.Nop(), &out))
	assert.Contains(t, out.String(), "sin cambios")

	out.Reset()
	require.NoError(t, inspect(ctx, store, &out))
	assert.Regexp(t, `blood_management_donations\s+13`, out.String())
	assert.Regexp(t, `blood_management_stock\s+8`, out.String())
	assert.Regexp(t, `blood_management_auth\s+-`, out.String())
}

func TestRootCmd_DriverFile(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	root := newRootCmd(cfg, logger.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--driver", "file", "--dir", t.TempDir(), "run"})

	require.NoError(t, root.Execute())
	assert.Equal(t, config.StorageFile, cfg.Storage.Driver)
	assert.Contains(t, out.String(), "colecciones pobladas")
}
