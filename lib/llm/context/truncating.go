// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"context"
	"fmt"

	"github.com/inlinekit/inlinekit/lib/llm"
)

// Truncating implements [Manager] by evicting whole turn groups,
// oldest first, when the estimated history exceeds the token budget.
// Two regions are never evicted: the opening turn group, which holds
// the user's instruction and the windowed document view the rest of
// the session builds on, and the newest turn group, which is the
// exchange in flight.
//
// On 200k-window models eviction is rare; replaying long sessions
// against small local models is where it earns its keep.
type Truncating struct {
	messages  []llm.Message
	estimator TokenEstimator
	budget    int

	// protected counts turn groups at the head of the history that are
	// exempt from eviction. NewTruncating sets it to 1.
	protected int

	// lastSent is the slice most recently handed out by Messages, kept
	// so RecordUsage can pair the provider's token count with the
	// characters that produced it.
	lastSent []llm.Message

	lastEvicted int
}

// NewTruncating returns a Truncating manager holding the given message
// token budget, with the opening turn group protected.
func NewTruncating(tokenBudget int, estimator TokenEstimator) *Truncating {
	return &Truncating{
		estimator: estimator,
		budget:    tokenBudget,
		protected: 1,
	}
}

// Append adds a message to the history.
func (manager *Truncating) Append(message llm.Message) {
	manager.messages = append(manager.messages, message)
}

// Messages returns the history, evicting old turn groups as needed to
// fit the budget. When even maximum eviction leaves the estimate over
// budget, the trimmed history is returned together with an error; the
// caller decides whether to send it anyway.
func (manager *Truncating) Messages(_ context.Context) ([]llm.Message, error) {
	manager.lastEvicted = 0

	if len(manager.messages) == 0 {
		manager.lastSent = nil
		return nil, nil
	}

	estimate := manager.estimator.EstimateTokens(manager.messages)
	if estimate <= manager.budget {
		manager.lastSent = manager.messages
		return manager.messages, nil
	}

	groups := splitTurnGroups(manager.messages)
	if len(groups) == 0 {
		// History with no user prompt at all. Nothing is evictable.
		manager.lastSent = manager.messages
		return manager.messages, nil
	}

	protected := manager.protected
	if protected > len(groups) {
		protected = len(groups)
	}
	// The newest group stays regardless.
	evictable := len(groups) - 1 - protected
	if evictable <= 0 {
		manager.lastSent = manager.messages
		return manager.messages, fmt.Errorf(
			"history estimated at %d tokens exceeds budget of %d, and all %d turn groups are protected or current",
			estimate, manager.budget, len(groups))
	}

	overBy := estimate - manager.budget
	freed := 0
	evicted := 0
	for evicted < evictable && freed < overBy {
		freed += manager.estimator.EstimateTokens(groups[protected+evicted])
		evicted++
	}
	manager.lastEvicted = evicted

	kept := make([]llm.Message, 0, len(manager.messages))
	for i, group := range groups {
		if i >= protected && i < protected+evicted {
			continue
		}
		kept = append(kept, group...)
	}
	manager.lastSent = kept

	if remaining := estimate - freed; remaining > manager.budget {
		return kept, fmt.Errorf(
			"history still estimated at %d tokens against budget of %d after evicting %d turn groups",
			remaining, manager.budget, evicted)
	}
	return kept, nil
}

// RecordUsage forwards the provider's token count to the estimator,
// paired with the messages last returned by Messages.
func (manager *Truncating) RecordUsage(usage llm.Usage) {
	if manager.lastSent != nil {
		manager.estimator.RecordUsage(manager.lastSent, usage.InputTokens)
	}
}

// EvictedTurnGroups reports how many turn groups the most recent
// Messages call evicted.
func (manager *Truncating) EvictedTurnGroups() int {
	return manager.lastEvicted
}
