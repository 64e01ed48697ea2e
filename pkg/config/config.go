// Package config holds the explicit configuration for the kiro-cli
// provider. All environment lookups and executable discovery happen
// here, once, so the provider itself stays free of hidden global state.
package config

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultBin is the executable name used when nothing else resolves.
const DefaultBin = "kiro-cli"

// KiroConfig selects and parameterizes the external CLI agent.
type KiroConfig struct {
	// Bin is the executable path. Empty means: resolve via
	// KIRO_CLI_PATH, then PATH discovery, then DefaultBin.
	Bin   string `json:"bin" env:"KIRO_CLI_PATH"`
	Agent string `json:"agent" env:"KIRO_AGENT"`
	Model string `json:"model" env:"KIRO_MODEL"`

	// PromptViaArg passes the prompt as a trailing argument instead of
	// writing it to the subprocess's stdin. Stdin is the default; it
	// avoids OS argv length limits on large prompts.
	PromptViaArg bool `json:"prompt_via_arg" env:"KIRO_PROMPT_VIA_ARG"`
}

// PromptConfig bounds prompt construction from conversation history.
type PromptConfig struct {
	MaxPromptChars  int `json:"max_prompt_chars" env:"FEMTOCLAW_MAX_PROMPT_CHARS"`
	MaxHistoryTurns int `json:"max_history_turns" env:"FEMTOCLAW_MAX_HISTORY_TURNS"`

	// SystemAnchor is the header at which system messages are cut down
	// before being sent to a backend that injects its own system
	// prompt: only the sub-block from the anchor onward is kept, and a
	// system message without the anchor contributes nothing. Empty
	// means system messages are copied in full.
	SystemAnchor string `json:"system_anchor" env:"FEMTOCLAW_SYSTEM_ANCHOR"`
}

type Config struct {
	Provider KiroConfig   `json:"provider"`
	Prompt   PromptConfig `json:"prompt"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: KiroConfig{},
		Prompt: PromptConfig{
			MaxPromptChars:  32000,
			MaxHistoryTurns: 8,
			SystemAnchor:    "## Tool Use Protocol",
		},
	}
}

// LoadConfig builds the effective configuration: defaults, overlaid by
// the JSON file at path (missing file is fine), overlaid by environment
// variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ResolveBin returns the executable to invoke. Resolution order:
// configured path, KIRO_CLI_PATH, then PATH discovery, then the
// hardcoded default name. The env var is consulted here as well as in
// LoadConfig so the chain holds for configs built directly. Call this
// once at composition time and hand the result to the provider.
func (c *Config) ResolveBin() string {
	if c.Provider.Bin != "" {
		return c.Provider.Bin
	}
	if path := os.Getenv("KIRO_CLI_PATH"); path != "" {
		return path
	}
	if found, err := exec.LookPath(DefaultBin); err == nil {
		return found
	}
	return DefaultBin
}
