package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/config/file"
)

func setupConfigTest(t *testing.T) *file.ConfigStore {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	old := configStore
	configStore = store
	t.Cleanup(func() { configStore = old })

	return store
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	old := configStore
	configStore = nil
	defer func() { configStore = old }()

	_, err := runCommand(t, "config", "show")

	assert.Error(t, err)
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	store := setupConfigTest(t)

	_, err := runCommand(t, "config", "set", file.KeyUserID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", store.GetString(file.KeyUserID))

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "user_id")
	assert.Contains(t, out, "user-1")
}

func TestConfigCmd_SetParsesIntegers(t *testing.T) {
	store := setupConfigTest(t)

	_, err := runCommand(t, "config", "set", file.KeySyncDays, "90")

	require.NoError(t, err)
	assert.Equal(t, 90, store.GetInt(file.KeySyncDays))
}

func TestConfigCmd_MasksSecrets(t *testing.T) {
	setupConfigTest(t)

	out, err := runCommand(t, "config", "set", file.KeyOpenAIKey, "sk-verysecretkey123")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-verysecretkey123")
	assert.Contains(t, out, "sk-v...y123")

	out, err = runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-verysecretkey123")
}

func TestConfigCmd_Path(t *testing.T) {
	store := setupConfigTest(t)

	out, err := runCommand(t, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, store.Path())
}
