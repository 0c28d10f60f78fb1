// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"context"

	"github.com/inlinekit/inlinekit/lib/llm"
)

// Manager owns the message history of one inline-chat session and
// decides which part of it each LLM call sees. A session drives it in
// a fixed rhythm: Append for every new message, Messages before each
// call, RecordUsage when the response arrives.
//
// Implementations need not be safe for concurrent use; a session is
// one goroutine.
type Manager interface {
	// Append adds a message to the history.
	Append(message llm.Message)

	// Messages returns the history to send on the next call. The
	// returned slice must remain a well-formed conversation: it starts
	// with a user message, roles alternate, and every tool result is
	// preceded by its tool use. Implementations may drop old material
	// to meet a token budget.
	//
	// A non-nil error means the history does not fit the budget even
	// after maximum eviction. The slice returned alongside it is the
	// best achievable; the caller chooses whether to send it.
	Messages(ctx context.Context) ([]llm.Message, error)

	// RecordUsage reports the provider's actual token consumption for
	// the last call, so implementations can calibrate their estimates.
	RecordUsage(usage llm.Usage)
}

// TokenEstimator guesses the token count of a message slice without a
// tokenizer. Estimates cover the messages only, not the system prompt
// or tool definitions.
type TokenEstimator interface {
	EstimateTokens(messages []llm.Message) int

	// RecordUsage calibrates the estimator against a provider
	// response: messages is the exact slice that was sent, and
	// actualInputTokens the provider's count for it. The provider
	// count includes request overhead the estimator never sees; see
	// [CharEstimator] for how that is absorbed.
	RecordUsage(messages []llm.Message, actualInputTokens int64)
}

// Budget describes the token limits a Manager works within.
type Budget struct {
	// ContextWindow is the model's context window in tokens.
	ContextWindow int

	// MaxOutputTokens is reserved out of the window for the model's
	// response.
	MaxOutputTokens int

	// OverheadTokens estimates the fixed per-request cost of the
	// system prompt, tool definitions, and protocol framing. Zero
	// means the default of 4096.
	OverheadTokens int
}

const defaultOverheadTokens = 4096

// MessageTokenBudget returns what remains of the context window for
// conversation messages once output reservation and request overhead
// are subtracted. Never negative.
func (budget Budget) MessageTokenBudget() int {
	overhead := budget.OverheadTokens
	if overhead == 0 {
		overhead = defaultOverheadTokens
	}
	remaining := budget.ContextWindow - budget.MaxOutputTokens - overhead
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Unbounded is a Manager that never evicts: Messages always returns
// the full history. Used in tests and wherever the caller bounds
// context on its own.
type Unbounded struct {
	messages []llm.Message
}

// Append adds a message to the history.
func (manager *Unbounded) Append(message llm.Message) {
	manager.messages = append(manager.messages, message)
}

// Messages returns the full history.
func (manager *Unbounded) Messages(_ context.Context) ([]llm.Message, error) {
	return manager.messages, nil
}

// RecordUsage is a no-op.
func (manager *Unbounded) RecordUsage(_ llm.Usage) {}
