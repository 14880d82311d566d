package converso

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Run("create new app", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "projects")
		app, err := NewApp(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, app)
		defer app.Close()

		// Verify components are initialized
		assert.NotNil(t, app.Projects())
		assert.NotNil(t, app.pipeline)
		assert.NotNil(t, app.engine)
		assert.NotNil(t, app.guard)
		assert.NotNil(t, app.summarizer)
		assert.NotNil(t, app.pool)
		assert.NotNil(t, app.logger)
	})

	t.Run("error with invalid root", func(t *testing.T) {
		// Try to root the store at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		app, err := NewApp(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, app)
	})
}

func TestApp_Close(t *testing.T) {
	app, err := NewApp(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, app)

	err = app.Close()
	assert.NoError(t, err)
}

func TestApp_NewChat(t *testing.T) {
	app, err := NewApp(t.TempDir())
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Projects().Create("suporte", "equipe"))

	t.Run("chat for indexed project", func(t *testing.T) {
		bot, err := app.NewChat("suporte")
		require.NoError(t, err)
		require.NotNil(t, bot)
	})

	t.Run("unknown project fails", func(t *testing.T) {
		bot, err := app.NewChat("inexistente")
		assert.Error(t, err)
		assert.Nil(t, bot)
	})
}
