package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shelter-pet-tracker/internal/domain/animals"
	"shelter-pet-tracker/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PersistsAcrossRestarts(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.Config{
				Addr:    config.DefaultAddr,
				Storage: config.StorageConfig{Backend: backend, Path: filepath.Join(t.TempDir(), "data")},
			}

			a, err := Open(ctx, cfg, nil)
			require.NoError(t, err)
			created, err := a.Service.Create(ctx, animals.Draft{Name: "Rex", Gender: "M", Kind: "dog", Breed: "Lab"})
			require.NoError(t, err)
			require.NoError(t, a.Close())

			b, err := Open(ctx, cfg, nil)
			require.NoError(t, err)
			defer func() { _ = b.Close() }()

			all := b.Service.ListAll(ctx)
			require.Len(t, all, 1)
			assert.Equal(t, created, all[0])
			assert.NoError(t, b.Store.LoadWarning())
		})
	}
}

func TestOpen_MemoryBackendStartsEmpty(t *testing.T) {
	a, err := Open(context.Background(), config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}, nil)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.Empty(t, a.Service.ListAll(context.Background()))
}

func TestOpen_CorruptDataStartsEmptyWithWarning(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data")
			require.NoError(t, os.WriteFile(path, []byte("garbage, not a valid store at all"), 0o644))

			a, err := Open(context.Background(), config.Config{
				Storage: config.StorageConfig{Backend: backend, Path: path},
			}, nil)
			require.NoError(t, err)
			defer func() { _ = a.Close() }()

			assert.Empty(t, a.Service.ListAll(context.Background()))
			assert.Error(t, a.Store.LoadWarning())
		})
	}
}
