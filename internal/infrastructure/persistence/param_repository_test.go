package persistence

import (
	"context"
	"testing"

	"github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupParamTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ConfigParam{}))
	return db
}

func TestParamRepository(t *testing.T) {
	repo := NewGormParamRepository(setupParamTestDB(t))
	ctx := context.Background()

	t.Run("unset key reads as empty", func(t *testing.T) {
		value, err := repo.Get(ctx, docsai.ParamAPIKey)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, docsai.ParamAPIKey, "api-key"))

		value, err := repo.Get(ctx, docsai.ParamAPIKey)
		require.NoError(t, err)
		assert.Equal(t, "api-key", value)
	})

	t.Run("set overwrites the previous value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, docsai.ParamFolderID, "folder-1"))
		require.NoError(t, repo.Set(ctx, docsai.ParamFolderID, "folder-2"))

		value, err := repo.Get(ctx, docsai.ParamFolderID)
		require.NoError(t, err)
		assert.Equal(t, "folder-2", value)
	})

	t.Run("delete removes the key, absent keys are fine", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, docsai.ParamScannerLink, "https://web.docs2ai.com/scan/folder-1"))
		require.NoError(t, repo.Delete(ctx, docsai.ParamScannerLink))

		value, err := repo.Get(ctx, docsai.ParamScannerLink)
		require.NoError(t, err)
		assert.Empty(t, value)

		assert.NoError(t, repo.Delete(ctx, docsai.ParamScannerLink))
	})
}
