package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monipee-hotel/config"
	"monipee-hotel/services"
)

func TestOpenStorage_SQLiteSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "hotel.db")}

	for boot := 1; boot <= 2; boot++ {
		b, err := config.OpenStorage(cfg)
		require.NoError(t, err)

		store := services.NewStore(b)
		require.NoError(t, store.Init(ctx), "boot %d", boot)

		v, err := store.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, services.SchemaVersion, v)
		require.NoError(t, b.Close())
	}
}
