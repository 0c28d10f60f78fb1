// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

// contextWindows maps model identifiers to context window sizes in
// tokens, per provider documentation as of early 2026. The table is a
// convenience for sizing a [Budget]; configuration can always override
// it, and must for models not listed here.
var contextWindows = map[string]int{
	// Anthropic Claude.
	"claude-opus-4-1-20250805":   200_000,
	"claude-sonnet-4-5-20250929": 200_000,
	"claude-haiku-4-5-20251001":  200_000,
	"claude-3-5-sonnet-20241022": 200_000,
	"claude-3-5-haiku-20241022":  200_000,
	"claude-3-opus-20240229":     200_000,

	// OpenAI GPT-4 family.
	"gpt-4o":      128_000,
	"gpt-4o-mini": 128_000,
	"gpt-4-turbo": 128_000,
	"gpt-4":       8_192,
	"gpt-4-32k":   32_768,

	// OpenAI reasoning models.
	"o1":      200_000,
	"o1-mini": 128_000,
	"o3":      200_000,
	"o3-mini": 200_000,

	// DeepSeek.
	"deepseek-chat":     64_000,
	"deepseek-reasoner": 64_000,

	// Google Gemini.
	"gemini-2.0-flash": 1_048_576,
	"gemini-2.0-pro":   1_048_576,
	"gemini-1.5-flash": 1_048_576,
	"gemini-1.5-pro":   2_097_152,

	// Mistral.
	"mistral-large-latest": 128_000,
	"mistral-small-latest": 32_000,

	// Meta Llama.
	"llama-3.1-405b": 128_000,
	"llama-3.1-70b":  128_000,
	"llama-3.1-8b":   128_000,
}

// defaultContextWindow is returned for models the table does not
// know. 128k sits between small local models and frontier windows;
// wrong in both directions, but not wildly so.
const defaultContextWindow = 128_000

// ContextWindowForModel returns the context window in tokens for a
// model identifier, or defaultContextWindow for unknown models.
func ContextWindowForModel(model string) int {
	if window, known := contextWindows[model]; known {
		return window
	}
	return defaultContextWindow
}
