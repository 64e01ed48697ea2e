package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, 32000, cfg.Prompt.MaxPromptChars)
	assert.Equal(t, 8, cfg.Prompt.MaxHistoryTurns)
	assert.Equal(t, "## Tool Use Protocol", cfg.Prompt.SystemAnchor)
	assert.Empty(t, cfg.Provider.Bin)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"provider":{"bin":"/opt/kiro/kiro-cli","agent":"ops"},"prompt":{"max_history_turns":4}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/kiro/kiro-cli", cfg.Provider.Bin)
	assert.Equal(t, "ops", cfg.Provider.Agent)
	assert.Equal(t, 4, cfg.Prompt.MaxHistoryTurns)
	// Untouched fields keep defaults.
	assert.Equal(t, 32000, cfg.Prompt.MaxPromptChars)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider":{"agent":"from-file"}}`), 0o600))

	t.Setenv("KIRO_AGENT", "from-env")
	t.Setenv("FEMTOCLAW_MAX_PROMPT_CHARS", "500")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Provider.Agent)
	assert.Equal(t, 500, cfg.Prompt.MaxPromptChars)
}

func TestResolveBinPrefersExplicitPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.Bin = "/usr/local/bin/kiro-cli"

	assert.Equal(t, "/usr/local/bin/kiro-cli", cfg.ResolveBin())
}

func TestResolveBinConsultsEnvWithoutLoadConfig(t *testing.T) {
	// A config built directly, not through LoadConfig, still honors
	// KIRO_CLI_PATH.
	cfg := DefaultConfig()
	t.Setenv("KIRO_CLI_PATH", "/opt/kiro/kiro-cli")

	assert.Equal(t, "/opt/kiro/kiro-cli", cfg.ResolveBin())
}

func TestResolveBinFallsBackToDefaultName(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("KIRO_CLI_PATH", "")
	t.Setenv("PATH", t.TempDir()) // nothing discoverable

	assert.Equal(t, DefaultBin, cfg.ResolveBin())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Provider.Model = "claude-sonnet"

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet", loaded.Provider.Model)
}
