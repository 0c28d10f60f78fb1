// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inlinekit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Budget.MaxOutputTokens != 8192 {
		t.Errorf("default max_output_tokens = %d, want 8192", cfg.Budget.MaxOutputTokens)
	}
	if cfg.Model != "" {
		t.Errorf("default model = %q, want empty", cfg.Model)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
model: claude-sonnet-4-5-20250929
budget:
  context_window: 200000
  overhead_tokens: 3000
crop:
  context_lines: 16
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Budget.ContextWindow != 200000 {
		t.Errorf("context_window = %d, want 200000", cfg.Budget.ContextWindow)
	}
	if cfg.Budget.OverheadTokens != 3000 {
		t.Errorf("overhead_tokens = %d, want 3000", cfg.Budget.OverheadTokens)
	}
	if cfg.Crop.ContextLines != 16 {
		t.Errorf("context_lines = %d, want 16", cfg.Crop.ContextLines)
	}
	// Unset field keeps the default.
	if cfg.Budget.MaxOutputTokens != 8192 {
		t.Errorf("max_output_tokens = %d, want default 8192", cfg.Budget.MaxOutputTokens)
	}
}

func TestLoadFileRejectsNegatives(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
budget:
  context_window: -1
`)

	if _, err := LoadFile(path); err == nil {
		t.Error("negative context_window should be rejected")
	} else if !strings.Contains(err.Error(), "context_window") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "model: [unterminated\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	// Mutates the environment; not parallel.
	t.Setenv("INLINEKIT_CONFIG", "")

	if _, err := Load(); err == nil {
		t.Error("unset INLINEKIT_CONFIG should be an error")
	}
}

func TestLoadFromEnvVar(t *testing.T) {
	path := writeConfig(t, "model: test-model\n")
	t.Setenv("INLINEKIT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "test-model" {
		t.Errorf("model = %q, want %q", cfg.Model, "test-model")
	}
}
