// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for inlinekit tools.
type Config struct {
	// Model is the LLM model identifier the history pruner sizes its
	// budget for (e.g. "claude-sonnet-4-5-20250929"). Used to look up
	// the context window when Budget.ContextWindow is zero.
	Model string `yaml:"model"`

	// Budget configures the token budget for history pruning.
	Budget BudgetConfig `yaml:"budget"`

	// Crop configures the default cropped-content renderer.
	Crop CropConfig `yaml:"crop"`
}

// BudgetConfig configures the token limits handed to the history
// pruner. Zero values defer to the model registry and the pruner's
// own defaults.
type BudgetConfig struct {
	// ContextWindow overrides the model's context window in tokens.
	// Zero means look the model up in the registry.
	ContextWindow int `yaml:"context_window"`

	// MaxOutputTokens is the output reservation per LLM response.
	// Default: 8192.
	MaxOutputTokens int `yaml:"max_output_tokens"`

	// OverheadTokens estimates the fixed per-request overhead
	// (system prompt, tool definitions, framing). Zero means the
	// pruner's default.
	OverheadTokens int `yaml:"overhead_tokens"`
}

// CropConfig configures the default large-file cropping renderer.
type CropConfig struct {
	// ContextLines is the number of lines kept on each side of the
	// selection. Zero means the renderer's default.
	ContextLines int `yaml:"context_lines"`
}

// defaultMaxOutputTokens is the output reservation used when the
// config file sets none.
const defaultMaxOutputTokens = 8192

// Default returns the default configuration, used as the base before
// loading the config file and as the whole configuration when no file
// is given.
func Default() *Config {
	return &Config{
		Budget: BudgetConfig{
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	}
}

// Load loads configuration from the INLINEKIT_CONFIG environment
// variable. Fails when the variable is unset — there are no fallback
// search paths.
func Load() (*Config, error) {
	configPath := os.Getenv("INLINEKIT_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("config: INLINEKIT_CONFIG environment variable not set; " +
			"set it to the path of your inlinekit.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over [Default]. The config file is the single source
// of truth: environment variables never override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Budget.ContextWindow < 0 {
		return fmt.Errorf("budget.context_window must not be negative (got %d)", c.Budget.ContextWindow)
	}
	if c.Budget.MaxOutputTokens < 0 {
		return fmt.Errorf("budget.max_output_tokens must not be negative (got %d)", c.Budget.MaxOutputTokens)
	}
	if c.Budget.OverheadTokens < 0 {
		return fmt.Errorf("budget.overhead_tokens must not be negative (got %d)", c.Budget.OverheadTokens)
	}
	if c.Crop.ContextLines < 0 {
		return fmt.Errorf("crop.context_lines must not be negative (got %d)", c.Crop.ContextLines)
	}
	return nil
}
