// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for inlinekit tools.
//
// Configuration is loaded from a single YAML file specified by:
//   - INLINEKIT_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides.
// Everything in the file is optional; unset fields keep their
// defaults, so running without a config file at all is also valid.
package config
